package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/serviplan/booking-api/internal/audit"
	"github.com/serviplan/booking-api/internal/config"
	"github.com/serviplan/booking-api/internal/dto"
	"github.com/serviplan/booking-api/internal/models"
	"github.com/serviplan/booking-api/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		SessionCookie: "booking_session",
		SessionTTL:    time.Hour,
	}
}

func nopDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopWriter{}, zap.NewNop())
}

type nopWriter struct{}

func (nopWriter) Log(_ *uint, _, _ string, _ *uint, _ any) error { return nil }

// memoryStore is an in-process session.Store for handler tests.
type memoryStore struct {
	sessions map[string]*session.Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: map[string]*session.Session{}}
}

func (s *memoryStore) Get(_ context.Context, id string) (*session.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func (s *memoryStore) Save(_ context.Context, sess *session.Session) error {
	s.sessions[sess.ID] = sess
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

// fakeUserRepo seeds users by id; lookups scan the map.
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByName(_ context.Context, name string) (*models.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

// fakeServiceRepo records which storage calls were made.
type fakeServiceRepo struct {
	services    map[uint]*models.Service
	priceCalled bool
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[uint]*models.Service{}}
}

func (r *fakeServiceRepo) Create(_ context.Context, svc *models.Service) error {
	svc.ID = uint(len(r.services) + 1)
	cp := *svc
	r.services[svc.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) List(_ context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) GetByName(_ context.Context, name string) (*models.Service, error) {
	for _, s := range r.services {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeServiceRepo) ListByPrice(_ context.Context, operator string, price float64) ([]models.Service, error) {
	r.priceCalled = true
	var out []models.Service
	for _, s := range r.services {
		if (operator == "<" && s.Price < price) || (operator == ">" && s.Price > price) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, svc *models.Service) error {
	if _, ok := r.services[svc.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *svc
	r.services[svc.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.services[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.services, id)
	return nil
}

// fakeAppointmentRepo keeps the last created row for assertions.
type fakeAppointmentRepo struct {
	appointments map[uint]*models.Appointment
	lastCreated  *models.Appointment
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
	r.lastCreated = &cp
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

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
