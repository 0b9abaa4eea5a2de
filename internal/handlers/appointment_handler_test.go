package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviplan/booking-api/internal/middleware"
	"github.com/serviplan/booking-api/internal/models"
	"github.com/serviplan/booking-api/internal/service"
	"github.com/serviplan/booking-api/internal/session"
)

// withSession injects a ready-made session the way LoadSession would.
func withSession(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess != nil {
			c.Set(middleware.ContextSession, sess)
		}
		c.Next()
	}
}

func appointmentRouter(t *testing.T, sess *session.Session) (*gin.Engine, *fakeAppointmentRepo) {
	t.Helper()

	repo := newFakeAppointmentRepo()
	h := NewAppointmentHandler(service.NewAppointmentService(repo), nopDispatcher())

	r := gin.New()
	r.Use(withSession(sess))
	r.POST("/appointments", h.Create)
	r.GET("/appointments/me", h.ListMine)
	r.PUT("/appointments/:appointment_id", h.Update)
	return r, repo
}

func TestCreateAppointmentTakesUserFromSession(t *testing.T) {
	sess := session.New(7, "amani", models.RoleUser)
	r, repo := appointmentRouter(t, sess)

	// A user_id smuggled into the body must be ignored.
	w := serve(r, jsonRequest(t, http.MethodPost, "/appointments", gin.H{
		"user_id":    999,
		"service_id": 3,
		"date":       "2026-09-10 14:00",
	}))

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, repo.lastCreated)
	assert.Equal(t, uint(7), repo.lastCreated.UserID)
	assert.Equal(t, uint(3), repo.lastCreated.ServiceID)
	assert.Equal(t, string(models.StatusPending), repo.lastCreated.Status)
	assert.Equal(t, time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC), repo.lastCreated.Date)
}

func TestCreateAppointmentAnonymous(t *testing.T) {
	r, repo := appointmentRouter(t, nil)

	w := serve(r, jsonRequest(t, http.MethodPost, "/appointments", gin.H{
		"service_id": 3,
		"date":       "2026-09-10 14:00",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, repo.lastCreated)
}

func TestCreateAppointmentBadDate(t *testing.T) {
	sess := session.New(7, "amani", models.RoleUser)
	r, repo := appointmentRouter(t, sess)

	w := serve(r, jsonRequest(t, http.MethodPost, "/appointments", gin.H{
		"service_id": 3,
		"date":       "next tuesday",
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"date"`)
	assert.Nil(t, repo.lastCreated)
}

func TestCreateAppointmentRejectsUnknownStatus(t *testing.T) {
	sess := session.New(7, "amani", models.RoleUser)
	r, _ := appointmentRouter(t, sess)

	w := serve(r, jsonRequest(t, http.MethodPost, "/appointments", gin.H{
		"service_id": 3,
		"date":       "2026-09-10 14:00",
		"status":     "maybe",
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"status"`)
}

func TestUpdateAppointmentRejectsUnknownStatus(t *testing.T) {
	sess := session.New(1, "root", models.RoleAdmin)
	r, repo := appointmentRouter(t, sess)

	repo.appointments[1] = &models.Appointment{ID: 1, UserID: 7, ServiceID: 2, Status: string(models.StatusConfirmed)}

	w := serve(r, jsonRequest(t, http.MethodPut, "/appointments/1", gin.H{
		"status": "maybe",
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"status"`)
	assert.Equal(t, string(models.StatusConfirmed), repo.appointments[1].Status,
		"stored status must be unchanged after a rejected update")
}

func TestListMine(t *testing.T) {
	sess := session.New(7, "amani", models.RoleUser)
	r, repo := appointmentRouter(t, sess)

	repo.appointments[1] = &models.Appointment{ID: 1, UserID: 7, ServiceID: 2, Status: "pending"}
	repo.appointments[2] = &models.Appointment{ID: 2, UserID: 8, ServiceID: 2, Status: "pending"}

	w := serve(r, jsonRequest(t, http.MethodGet, "/appointments/me", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}
