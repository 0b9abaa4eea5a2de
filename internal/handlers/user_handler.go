package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/serviplan/booking-api/internal/audit"
	"github.com/serviplan/booking-api/internal/httperr"
	"github.com/serviplan/booking-api/internal/httpresp"
	"github.com/serviplan/booking-api/internal/service"
	"github.com/serviplan/booking-api/internal/validators"
)

type UserHandler struct {
	users *service.UserService
	audit *audit.Dispatcher
}

func NewUserHandler(users *service.UserService, dispatcher *audit.Dispatcher) *UserHandler {
	return &UserHandler{users: users, audit: dispatcher}
}

// --------- Requests ---------

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,min=1"`
	Address  *string `json:"address,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, user)
}

func (h *UserHandler) GetByName(c *gin.Context) {
	user, err := h.users.GetByName(c.Request.Context(), c.Param("user_name"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, user)
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.users.GetByEmail(c.Request.Context(), c.Param("user_email"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, service.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &id,
	})

	httpresp.Message(c, "User deleted successfully")
}
