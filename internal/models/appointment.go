package models

import "time"

// Appointment is the persisted booking record. Date and Time are civil
// values (YYYY-MM-DD, HH:MM) so they sort lexicographically.
type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BranchID uint `gorm:"index" json:"branch_id"`
	BarberID uint `gorm:"index:idx_appointments_barber_slot,priority:1" json:"barber_id"`

	// Snapshot of the service at booking time.
	ServiceName string  `gorm:"size:100;not null" json:"service_name"`
	Price       float64 `json:"price"`

	Date string `gorm:"column:slot_date;size:10;not null;index:idx_appointments_barber_slot,priority:2" json:"date"`
	Time string `gorm:"column:slot_time;size:5;not null;index:idx_appointments_barber_slot,priority:3" json:"time"`

	CustomerName    string `gorm:"size:100;not null" json:"customer_name"`
	CustomerContact string `gorm:"size:100;not null" json:"customer_contact"`
	Notes           string `gorm:"type:text" json:"notes"`

	Status string `gorm:"size:20;default:'booked';index" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
