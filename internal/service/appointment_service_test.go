package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/serviplan/booking-api/internal/dto"
	"github.com/serviplan/booking-api/internal/httperr"
	"github.com/serviplan/booking-api/internal/models"
)

type fakeAppointmentRepo struct {
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[uint]*models.Appointment{}, nextID: 1}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, ap *models.Appointment) error {
	ap.ID = r.nextID
	r.nextID++
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) List(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeAppointmentRepo) ListByUser(_ context.Context, userID uint) ([]dto.UserAppointmentDTO, error) {
	var out []dto.UserAppointmentDTO
	for _, ap := range r.appointments {
		if ap.UserID == userID {
			out = append(out, dto.UserAppointmentDTO{
				ID:        ap.ID,
				Date:      ap.Date,
				Status:    ap.Status,
				ServiceID: ap.ServiceID,
			})
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.appointments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.appointments, id)
	return nil
}

func TestCreateAppointmentDefaultsToPending(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo())

	ap, err := svc.Create(context.Background(), CreateAppointmentInput{
		UserID:    3,
		ServiceID: 2,
		Date:      time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusPending), ap.Status)
}

func TestCreateAppointmentKeepsExplicitStatus(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo())

	ap, err := svc.Create(context.Background(), CreateAppointmentInput{
		UserID:    3,
		ServiceID: 2,
		Date:      time.Now(),
		Status:    string(models.StatusConfirmed),
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusConfirmed), ap.Status)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo())
	created, err := svc.Create(context.Background(), CreateAppointmentInput{
		UserID:    3,
		ServiceID: 2,
		Date:      time.Now(),
	})
	require.NoError(t, err)

	status := string(models.StatusRejected)
	updated, err := svc.Update(context.Background(), created.ID, UpdateAppointmentInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusRejected), updated.Status)
	assert.Equal(t, created.UserID, updated.UserID)
}

func TestListByUserFiltersOwner(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo())
	for _, userID := range []uint{1, 2, 1} {
		_, err := svc.Create(context.Background(), CreateAppointmentInput{
			UserID:    userID,
			ServiceID: 4,
			Date:      time.Now(),
		})
		require.NoError(t, err)
	}

	mine, err := svc.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestAppointmentNotFound(t *testing.T) {
	svc := NewAppointmentService(newFakeAppointmentRepo())

	_, err := svc.GetByID(context.Background(), 42)
	assert.True(t, httperr.IsNotFound(err))

	_, err = svc.Update(context.Background(), 42, UpdateAppointmentInput{})
	assert.True(t, httperr.IsNotFound(err))

	err = svc.Delete(context.Background(), 42)
	assert.True(t, httperr.IsNotFound(err))
}
