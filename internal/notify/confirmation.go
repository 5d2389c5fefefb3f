package notify

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Confirmation is the payload handed to the outbound channel once an
// appointment has been admitted.
type Confirmation struct {
	AppointmentID   string  `json:"appointment_id"`
	BranchName      string  `json:"branch_name"`
	ServiceName     string  `json:"service_name"`
	Price           float64 `json:"price"`
	BarberName      string  `json:"barber_name"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	CustomerName    string  `json:"customer_name"`
	CustomerContact string  `json:"customer_contact"`
}

func Build(
	ap *models.Appointment,
	branch *models.Branch,
	barber *models.Barber,
) Confirmation {

	c := Confirmation{
		AppointmentID:   ap.ID,
		ServiceName:     ap.ServiceName,
		Price:           ap.Price,
		Date:            ap.Date,
		Time:            ap.Time,
		CustomerName:    ap.CustomerName,
		CustomerContact: ap.CustomerContact,
	}
	if branch != nil {
		c.BranchName = branch.Name
	}
	if barber != nil {
		c.BarberName = barber.Name
	}
	return c
}

// Text renders the message a customer receives.
func (c Confirmation) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s, your booking is confirmed.\n", c.CustomerName)
	if c.BranchName != "" {
		fmt.Fprintf(&b, "Branch: %s\n", c.BranchName)
	}
	fmt.Fprintf(&b, "Service: %s\n", c.ServiceName)
	if c.BarberName != "" {
		fmt.Fprintf(&b, "Barber: %s\n", c.BarberName)
	}
	fmt.Fprintf(&b, "Date & Time: %s at %s\n", c.Date, c.Time)
	fmt.Fprintf(&b, "Contact: %s", c.CustomerContact)

	return b.String()
}
