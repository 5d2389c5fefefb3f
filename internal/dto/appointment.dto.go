package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// AppointmentDTO is the logical record layout exposed to collaborators.
type AppointmentDTO struct {
	ID              string    `json:"appointment_id"`
	BranchID        uint      `json:"branch_id"`
	BarberID        uint      `json:"barber_id"`
	BarberName      string    `json:"barber_name,omitempty"`
	ServiceName     string    `json:"service_name"`
	Price           float64   `json:"price"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	CustomerName    string    `json:"customer_name"`
	CustomerContact string    `json:"customer_contact"`
	Notes           string    `json:"notes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromAppointment(ap models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:              ap.ID,
		BranchID:        ap.BranchID,
		BarberID:        ap.BarberID,
		ServiceName:     ap.ServiceName,
		Price:           ap.Price,
		Date:            ap.Date,
		Time:            ap.Time,
		CustomerName:    ap.CustomerName,
		CustomerContact: ap.CustomerContact,
		Notes:           ap.Notes,
		Status:          ap.Status,
		CreatedAt:       ap.CreatedAt,
	}
}

// PublicAppointmentDTO is the upcoming-bookings board. Contact and price
// stay private.
type PublicAppointmentDTO struct {
	BarberName   string `json:"barber_name"`
	ServiceName  string `json:"service_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	CustomerName string `json:"customer_name"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
}

func PublicFromAppointment(ap models.Appointment, barberName string) PublicAppointmentDTO {
	return PublicAppointmentDTO{
		BarberName:   barberName,
		ServiceName:  ap.ServiceName,
		Date:         ap.Date,
		Time:         ap.Time,
		CustomerName: ap.CustomerName,
		Notes:        ap.Notes,
		Status:       ap.Status,
	}
}
