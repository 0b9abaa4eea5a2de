package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/serviplan/booking-api/internal/audit"
	"github.com/serviplan/booking-api/internal/httperr"
	"github.com/serviplan/booking-api/internal/httpresp"
	"github.com/serviplan/booking-api/internal/service"
	"github.com/serviplan/booking-api/internal/validators"
)

type PaymentHandler struct {
	payments *service.PaymentService
	audit    *audit.Dispatcher
}

func NewPaymentHandler(payments *service.PaymentService, dispatcher *audit.Dispatcher) *PaymentHandler {
	return &PaymentHandler{payments: payments, audit: dispatcher}
}

// --------- Requests ---------

type CreatePaymentRequest struct {
	AppointmentID uint    `json:"appointment_id" binding:"required,gt=0"`
	UserID        *uint   `json:"user_id,omitempty" binding:"omitempty,gt=0"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
}

type UpdatePaymentRequest struct {
	AppointmentID *uint    `json:"appointment_id,omitempty" binding:"omitempty,gt=0"`
	UserID        *uint    `json:"user_id,omitempty" binding:"omitempty,gt=0"`
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
}

// --------- Handlers ---------

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	p, err := h.payments.Create(c.Request.Context(), service.CreatePaymentInput{
		AppointmentID: req.AppointmentID,
		UserID:        req.UserID,
		Amount:        req.Amount,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "payment_created",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	httpresp.Created(c, p)
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.payments.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, payments)
}

func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "payment_id")
	if !ok {
		return
	}

	p, err := h.payments.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "payment_id")
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	p, err := h.payments.Update(c.Request.Context(), id, service.UpdatePaymentInput{
		AppointmentID: req.AppointmentID,
		UserID:        req.UserID,
		Amount:        req.Amount,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "payment_updated",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	httpresp.OK(c, p)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "payment_id")
	if !ok {
		return
	}

	if err := h.payments.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "payment_deleted",
		Entity:   "payment",
		EntityID: &id,
	})

	httpresp.Message(c, "Payment deleted successfully")
}
