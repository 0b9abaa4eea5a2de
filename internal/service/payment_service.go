package service

import (
	"context"

	"github.com/serviplan/booking-api/internal/models"
	"github.com/serviplan/booking-api/internal/repository"
)

type PaymentService struct {
	repo repository.PaymentRepository
}

func NewPaymentService(repo repository.PaymentRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

type CreatePaymentInput struct {
	AppointmentID uint
	UserID        *uint
	Amount        float64
}

type UpdatePaymentInput struct {
	AppointmentID *uint
	UserID        *uint
	Amount        *float64
}

// Create is a plain insert. Payment and appointment are deliberately not
// created in one transaction; the workflow is two explicit steps.
func (s *PaymentService) Create(ctx context.Context, in CreatePaymentInput) (*models.Payment, error) {
	p := &models.Payment{
		AppointmentID: in.AppointmentID,
		UserID:        in.UserID,
		Amount:        in.Amount,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	return s.repo.List(ctx)
}

func (s *PaymentService) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "payment_not_found", "Payment not found")
	}
	return p, nil
}

func (s *PaymentService) Update(ctx context.Context, id uint, in UpdatePaymentInput) (*models.Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "payment_not_found", "Payment not found")
	}

	if in.AppointmentID != nil {
		p.AppointmentID = *in.AppointmentID
	}
	if in.UserID != nil {
		p.UserID = in.UserID
	}
	if in.Amount != nil {
		p.Amount = *in.Amount
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "payment_not_found", "Payment not found")
	}
	return nil
}
