package httperr

import "errors"

// Business rejection codes. They are returned as values, never panicked.
const (
	CodeMissingField        = "missing_field"
	CodeInvalidDate         = "invalid_date"
	CodeInvalidSlot         = "invalid_slot"
	CodeSlotInPast          = "slot_in_past"
	CodeBarberUnavailable   = "barber_unavailable"
	CodeSlotAlreadyTaken    = "slot_already_taken"
	CodeInvalidStatus       = "invalid_status"
	CodeInvalidFilter       = "invalid_filter"
	CodeInvalidOrder        = "invalid_order"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeServiceNotFound     = "service_not_found"
)

type BusinessError struct {
	Code  string
	Field string
}

func (e BusinessError) Error() string {
	if e.Field != "" {
		return e.Code + ": " + e.Field
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrMissing reports which required field was empty.
func ErrMissing(field string) error {
	return BusinessError{Code: CodeMissingField, Field: field}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness unwraps err into a BusinessError when it is one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
