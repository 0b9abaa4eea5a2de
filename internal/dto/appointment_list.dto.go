package dto

import "time"

// UserAppointmentDTO is the profile listing row: the user's appointment
// joined with the booked service's name.
type UserAppointmentDTO struct {
	ID          uint      `json:"id"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	ServiceID   uint      `json:"service_id"`
	ServiceName string    `json:"service_name"`
}
