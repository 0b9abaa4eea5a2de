package service

import (
	"context"
	"time"

	"github.com/serviplan/booking-api/internal/dto"
	"github.com/serviplan/booking-api/internal/models"
	"github.com/serviplan/booking-api/internal/repository"
)

type AppointmentService struct {
	repo repository.AppointmentRepository
}

func NewAppointmentService(repo repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

type CreateAppointmentInput struct {
	UserID    uint
	ServiceID uint
	Date      time.Time
	Status    string
}

type UpdateAppointmentInput struct {
	UserID    *uint
	ServiceID *uint
	Date      *time.Time
	Status    *string
}

// Create inserts the appointment as-is. Referential integrity of user and
// service ids is left to the storage engine; no availability check is
// performed, so overlapping bookings are possible.
func (s *AppointmentService) Create(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error) {
	status := in.Status
	if status == "" {
		status = string(models.StatusPending)
	}

	ap := &models.Appointment{
		UserID:    in.UserID,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Status:    status,
	}

	if err := s.repo.Create(ctx, ap); err != nil {
		return nil, err
	}
	return ap, nil
}

func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.repo.List(ctx)
}

func (s *AppointmentService) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "appointment_not_found", "Appointment not found")
	}
	return ap, nil
}

func (s *AppointmentService) ListByUser(ctx context.Context, userID uint) ([]dto.UserAppointmentDTO, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *AppointmentService) Update(ctx context.Context, id uint, in UpdateAppointmentInput) (*models.Appointment, error) {
	ap, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "appointment_not_found", "Appointment not found")
	}

	if in.UserID != nil {
		ap.UserID = *in.UserID
	}
	if in.ServiceID != nil {
		ap.ServiceID = *in.ServiceID
	}
	if in.Date != nil {
		ap.Date = *in.Date
	}
	if in.Status != nil {
		ap.Status = *in.Status
	}

	if err := s.repo.Update(ctx, ap); err != nil {
		return nil, err
	}
	return ap, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "appointment_not_found", "Appointment not found")
	}
	return nil
}
