package repository

import (
	"context"

	"github.com/serviplan/booking-api/internal/dto"
	"github.com/serviplan/booking-api/internal/models"
)

// Repositories perform direct storage reads and writes with no business
// rules. Absence surfaces as gorm.ErrRecordNotFound; the service layer is
// responsible for turning that into a domain-level not-found failure.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	List(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	GetByName(ctx context.Context, name string) (*models.Service, error)
	ListByPrice(ctx context.Context, operator string, price float64) ([]models.Service, error)
	Update(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, id uint) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, ap *models.Appointment) error
	List(ctx context.Context) ([]models.Appointment, error)
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	ListByUser(ctx context.Context, userID uint) ([]dto.UserAppointmentDTO, error)
	Update(ctx context.Context, ap *models.Appointment) error
	Delete(ctx context.Context, id uint) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	List(ctx context.Context) ([]models.Payment, error)
	GetByID(ctx context.Context, id uint) (*models.Payment, error)
	Update(ctx context.Context, p *models.Payment) error
	Delete(ctx context.Context, id uint) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *models.Review) error
	List(ctx context.Context) ([]models.Review, error)
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	Update(ctx context.Context, r *models.Review) error
	Delete(ctx context.Context, id uint) error
}
