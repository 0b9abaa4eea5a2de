package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/serviplan/booking-api/internal/dto"
	"github.com/serviplan/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// ListByUser returns the user's appointments joined with the booked
// service's name for display.
func (r *AppointmentGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]dto.UserAppointmentDTO, error) {

	var rows []dto.UserAppointmentDTO
	if err := r.db.WithContext(ctx).
		Table("appointments").
		Select(
			"appointments.id",
			"appointments.date",
			"appointments.status",
			"appointments.service_id",
			"services.name AS service_name",
		).
		Joins("LEFT JOIN services ON services.id = appointments.service_id").
		Where("appointments.user_id = ?", userID).
		Order("appointments.date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentGormRepository) Update(ctx context.Context, ap *models.Appointment) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id uint) error {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&ap).Error
}

// Compile-time check
var _ AppointmentRepository = (*AppointmentGormRepository)(nil)
