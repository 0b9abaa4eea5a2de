package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"not null" json:"appointment_id"`
	Appointment   Appointment `json:"appointment"`

	UserID *uint `json:"user_id"`
	User   *User `json:"user,omitempty"`

	Amount float64 `gorm:"not null" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
