package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/serviplan/booking-api/internal/httperr"
	"github.com/serviplan/booking-api/internal/middleware"
)

// parseIDParam reads a positive integer path parameter or writes a 400.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "A valid numeric id is required.")
		return 0, false
	}
	return uint(id), true
}

// actorID returns the session user id for audit entries, nil when the
// request is anonymous.
func actorID(c *gin.Context) *uint {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return nil
	}
	id := sess.UserID
	return &id
}
