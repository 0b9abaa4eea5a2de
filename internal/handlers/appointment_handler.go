package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/serviplan/booking-api/internal/audit"
	"github.com/serviplan/booking-api/internal/httperr"
	"github.com/serviplan/booking-api/internal/httpresp"
	"github.com/serviplan/booking-api/internal/middleware"
	"github.com/serviplan/booking-api/internal/service"
	"github.com/serviplan/booking-api/internal/validators"
)

type AppointmentHandler struct {
	appointments *service.AppointmentService
	audit        *audit.Dispatcher
}

func NewAppointmentHandler(appointments *service.AppointmentService, dispatcher *audit.Dispatcher) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, audit: dispatcher}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ServiceID uint   `json:"service_id" binding:"required,gt=0"`
	Date      string `json:"date" binding:"required"`
	Status    string `json:"status" binding:"omitempty,oneof=pending confirmed rejected cancelled"`
}

type UpdateAppointmentRequest struct {
	UserID    *uint   `json:"user_id,omitempty" binding:"omitempty,gt=0"`
	ServiceID *uint   `json:"service_id,omitempty" binding:"omitempty,gt=0"`
	Date      *string `json:"date,omitempty"`
	Status    *string `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed rejected cancelled"`
}

func dateFieldError(c *gin.Context) {
	c.JSON(http.StatusUnprocessableEntity, validators.ValidationResponse{
		Errors: []validators.FieldError{
			{Field: "date", Message: "date must be a valid ISO-8601 date"},
		},
	})
}

// --------- Handlers ---------

// Create books an appointment for the logged-in user. The owning user id
// always comes from the session, never from the request body.
func (h *AppointmentHandler) Create(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		httperr.Unauthorized(c, "authentication_required", "Please log in to book an appointment.")
		return
	}

	var req CreateAppointmentRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	date, ok := validators.ParseDate(req.Date)
	if !ok {
		dateFieldError(c)
		return
	}

	ap, err := h.appointments.Create(c.Request.Context(), service.CreateAppointmentInput{
		UserID:    sess.UserID,
		ServiceID: req.ServiceID,
		Date:      date,
		Status:    req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.appointments.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, aps)
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "appointment_id")
	if !ok {
		return
	}

	ap, err := h.appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// ListMine lists the session user's appointments with service names.
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		httperr.Unauthorized(c, "authentication_required", "Please log in to continue.")
		return
	}

	rows, err := h.appointments.ListByUser(c.Request.Context(), sess.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, rows)
}

// ListByUser is the management variant of ListMine.
func (h *AppointmentHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	rows, err := h.appointments.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, rows)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "appointment_id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	var date *time.Time
	if req.Date != nil {
		parsed, ok := validators.ParseDate(*req.Date)
		if !ok {
			dateFieldError(c)
			return
		}
		date = &parsed
	}

	ap, err := h.appointments.Update(c.Request.Context(), id, service.UpdateAppointmentInput{
		UserID:    req.UserID,
		ServiceID: req.ServiceID,
		Date:      date,
		Status:    req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "appointment_id")
	if !ok {
		return
	}

	if err := h.appointments.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	httpresp.Message(c, "Appointment deleted successfully")
}
