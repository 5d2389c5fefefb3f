package models

import "time"

type Branch struct {
	ID        uint      `gorm:"primaryKey" json:"id" yaml:"id"`
	Name      string    `gorm:"size:100;not null" json:"name" yaml:"name"`
	Address   string    `gorm:"size:255" json:"address" yaml:"address"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// Barber belongs to exactly one branch. Inactive barbers keep their
// historical appointments but cannot take new ones.
type Barber struct {
	ID       uint   `gorm:"primaryKey" json:"id" yaml:"id"`
	BranchID uint   `gorm:"index" json:"branch_id" yaml:"branch_id"`
	Branch   Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-" yaml:"-"`

	Name   string `gorm:"size:100;not null" json:"name" yaml:"name"`
	Active bool   `gorm:"default:true" json:"active" yaml:"active"`

	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id" yaml:"id"`
	Name        string  `gorm:"size:100;not null" json:"name" yaml:"name"`
	Price       float64 `json:"price" yaml:"price"`
	DurationMin int     `json:"duration_min" yaml:"duration_min"`

	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}
