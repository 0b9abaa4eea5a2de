package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/serviplan/booking-api/internal/middleware"
	"github.com/serviplan/booking-api/internal/models"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// Dashboard summarizes row counts per entity for the management screens.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	counts := gin.H{}
	for entity, model := range map[string]any{
		"users":        &models.User{},
		"services":     &models.Service{},
		"appointments": &models.Appointment{},
		"payments":     &models.Payment{},
		"reviews":      &models.Review{},
	} {
		var n int64
		if err := h.db.WithContext(c.Request.Context()).
			Model(model).
			Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error_code": "dashboard_error",
				"message":    "Failed to load dashboard counts.",
			})
			return
		}
		counts[entity] = n
	}

	c.JSON(http.StatusOK, gin.H{
		"admin":  gin.H{"id": sess.UserID, "name": sess.UserName},
		"counts": counts,
	})
}
