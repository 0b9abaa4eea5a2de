package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/serviplan/booking-api/internal/audit"
	"github.com/serviplan/booking-api/internal/httperr"
	"github.com/serviplan/booking-api/internal/httpresp"
	"github.com/serviplan/booking-api/internal/service"
	"github.com/serviplan/booking-api/internal/validators"
)

type ReviewHandler struct {
	reviews *service.ReviewService
	audit   *audit.Dispatcher
}

func NewReviewHandler(reviews *service.ReviewService, dispatcher *audit.Dispatcher) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, audit: dispatcher}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	UserID    uint   `json:"user_id" binding:"required,gt=0"`
	ServiceID uint   `json:"service_id" binding:"required,gt=0"`
	Rating    *int   `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Text      string `json:"text,omitempty"`
}

type UpdateReviewRequest struct {
	UserID    *uint   `json:"user_id,omitempty" binding:"omitempty,gt=0"`
	ServiceID *uint   `json:"service_id,omitempty" binding:"omitempty,gt=0"`
	Rating    *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Text      *string `json:"text,omitempty"`
}

// --------- Handlers ---------

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	review, err := h.reviews.Create(c.Request.Context(), service.CreateReviewInput{
		UserID:    req.UserID,
		ServiceID: req.ServiceID,
		Rating:    req.Rating,
		Text:      req.Text,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "review_created",
		Entity:   "review",
		EntityID: &review.ID,
	})

	httpresp.Created(c, review)
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviews.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, reviews)
}

func (h *ReviewHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "review_id")
	if !ok {
		return
	}

	review, err := h.reviews.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "review_id")
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	review, err := h.reviews.Update(c.Request.Context(), id, service.UpdateReviewInput{
		UserID:    req.UserID,
		ServiceID: req.ServiceID,
		Rating:    req.Rating,
		Text:      req.Text,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "review_updated",
		Entity:   "review",
		EntityID: &review.ID,
	})

	httpresp.OK(c, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "review_id")
	if !ok {
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: &id,
	})

	httpresp.Message(c, "Review deleted successfully")
}
