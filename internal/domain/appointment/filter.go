package appointment

import (
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Filter is the status category used by the back-office listing.
type Filter string

const (
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterCancelled Filter = "cancelled"
	FilterAll       Filter = "all"
)

// ParseFilter defaults to active, like the admin bookings screen.
func ParseFilter(v string) (Filter, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return FilterActive, nil
	}

	switch f := Filter(v); f {
	case FilterActive, FilterCompleted, FilterCancelled, FilterAll:
		return f, nil
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidFilter)
}

// Order is the (date, time) sort direction of a listing.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder defaults to ascending.
func ParseOrder(v string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(v))); o {
	case "":
		return OrderAsc, nil
	case OrderAsc, OrderDesc:
		return o, nil
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidOrder)
}

// ListQuery carries the filter plus the civil "now" it is evaluated at.
type ListQuery struct {
	Filter Filter
	Order  Order
	Today  string // YYYY-MM-DD
	Now    string // HH:MM
}

// Matches is the in-process form of the predicate the SQL store applies.
// Active means booked and not yet started: date > today, or today at or
// after the current minute.
func (q ListQuery) Matches(ap models.Appointment) bool {
	switch q.Filter {
	case FilterActive:
		if Status(ap.Status) != StatusBooked {
			return false
		}
		return ap.Date > q.Today || (ap.Date == q.Today && ap.Time >= q.Now)
	case FilterCompleted:
		return Status(ap.Status) == StatusCompleted
	case FilterCancelled:
		return Status(ap.Status) == StatusCancelled
	case FilterAll:
		return true
	}
	return false
}
