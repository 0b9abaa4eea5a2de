package models

import "time"

// UserID and ServiceID stay nullable at the schema level; the create
// contract still requires both.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint `json:"user_id"`
	User   *User `json:"user,omitempty"`

	ServiceID *uint    `json:"service_id"`
	Service   *Service `json:"service,omitempty"`

	Rating *int   `json:"rating"`
	Text   string `gorm:"size:255" json:"text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
