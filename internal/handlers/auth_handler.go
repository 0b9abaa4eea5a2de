package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/serviplan/booking-api/internal/config"
	"github.com/serviplan/booking-api/internal/httperr"
	"github.com/serviplan/booking-api/internal/service"
	"github.com/serviplan/booking-api/internal/session"
	"github.com/serviplan/booking-api/internal/validators"
)

type AuthHandler struct {
	users    *service.UserService
	sessions session.Store
	config   *config.Config
}

func NewAuthHandler(users *service.UserService, sessions session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Phone    string  `json:"phone" binding:"required"`
	Address  *string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.RegisterUserInput{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !validators.BindJSON(c, &req) {
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	sess := session.New(user.ID, user.Name, user.Role)
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		httperr.Internal(c, "session_error", "Failed to create session.")
		return
	}

	// Secure stays off for plain-HTTP deployments; flip it when serving
	// over HTTPS.
	c.SetCookie(
		h.config.SessionCookie,
		sess.ID,
		int(h.config.SessionTTL.Seconds()),
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(h.config.SessionCookie); err == nil && id != "" {
		_ = h.sessions.Delete(c.Request.Context(), id)
	}

	c.SetCookie(h.config.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
