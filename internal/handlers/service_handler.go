package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/serviplan/booking-api/internal/audit"
	"github.com/serviplan/booking-api/internal/httperr"
	"github.com/serviplan/booking-api/internal/httpresp"
	"github.com/serviplan/booking-api/internal/service"
	"github.com/serviplan/booking-api/internal/validators"
)

type ServiceHandler struct {
	services *service.ServiceService
	audit    *audit.Dispatcher
}

func NewServiceHandler(services *service.ServiceService, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{services: services, audit: dispatcher}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1"`
	DurationMin *int     `json:"duration_min,omitempty" binding:"omitempty,gt=0"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	svc, err := h.services.Create(c.Request.Context(), service.CreateServiceInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.services.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "service_id")
	if !ok {
		return
	}

	svc, err := h.services.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) GetByName(c *gin.Context) {
	svc, err := h.services.GetByName(c.Request.Context(), c.Param("service_name"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, svc)
}

// ListByPrice filters the catalog with a strict comparison. Both the
// price and the operator are validated before any query runs.
func (h *ServiceHandler) ListByPrice(c *gin.Context) {
	price, err := strconv.ParseFloat(c.Param("price"), 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_price", `A valid "price" number is required.`)
		return
	}

	operator := c.Param("operator")
	if operator != "<" && operator != ">" {
		httperr.BadRequest(c, "invalid_operator", `Operator must be ">" or "<".`)
		return
	}

	services, err := h.services.ListByPrice(c.Request.Context(), operator, price)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "service_id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	svc, err := h.services.Update(c.Request.Context(), id, service.UpdateServiceInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "service_id")
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	httpresp.Message(c, "Service deleted successfully")
}
