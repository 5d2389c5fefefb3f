package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var messages = map[string]string{
	CodeMissingField:        "A required field is empty.",
	CodeInvalidDate:         "Date must be in YYYY-MM-DD format.",
	CodeInvalidSlot:         "Requested time is not one of the offered slots.",
	CodeSlotInPast:          "Requested slot has already passed.",
	CodeBarberUnavailable:   "Barber is not available at this branch.",
	CodeSlotAlreadyTaken:    "This slot was just booked by someone else. Please pick another time.",
	CodeInvalidStatus:       "Unrecognized appointment status.",
	CodeInvalidFilter:       "Unrecognized status filter.",
	CodeInvalidOrder:        "Order must be asc or desc.",
	CodeAppointmentNotFound: "Appointment not found.",
	CodeServiceNotFound:     "Service not found.",
}

func statusFor(code string) int {
	switch code {
	case CodeSlotAlreadyTaken:
		return http.StatusConflict
	case CodeAppointmentNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// Respond maps an error returned by a use case onto the HTTP error body.
// fallback is the error_code used for unexpected failures.
func Respond(c *gin.Context, err error, fallback string) {
	if be, ok := AsBusiness(err); ok {
		msg, known := messages[be.Code]
		if !known {
			msg = be.Code
		}
		c.JSON(statusFor(be.Code), HTTPError{
			Code:    be.Code,
			Message: msg,
			Field:   be.Field,
		})
		return
	}

	if IsStoreUnavailable(err) {
		Unavailable(c, "store_unavailable", "Booking store is unavailable, try again later.")
		return
	}

	Internal(c, fallback, "Unexpected error.")
}
