package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/serviplan/booking-api/internal/httperr"
	"github.com/serviplan/booking-api/internal/imaging"
	"github.com/serviplan/booking-api/internal/middleware"
	"github.com/serviplan/booking-api/internal/service"
	"github.com/serviplan/booking-api/internal/storage"
)

type ProfileHandler struct {
	users        *service.UserService
	appointments *service.AppointmentService
	images       storage.ImageStore
}

func NewProfileHandler(
	users *service.UserService,
	appointments *service.AppointmentService,
	images storage.ImageStore,
) *ProfileHandler {
	return &ProfileHandler{
		users:        users,
		appointments: appointments,
		images:       images,
	}
}

// Show returns the session user together with their appointments and the
// booked service names.
func (h *ProfileHandler) Show(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		httperr.Unauthorized(c, "authentication_required", "Please log in to continue.")
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), sess.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	appointments, err := h.appointments.ListByUser(c.Request.Context(), sess.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"appointments": appointments,
	})
}

// UploadImage accepts a profile image up to 5 MB. The extension allow-list
// and the decoded format must both pass before anything is written; a webp
// thumbnail is stored alongside the original.
func (h *ProfileHandler) UploadImage(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		httperr.Unauthorized(c, "authentication_required", "Please log in to continue.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}

	if fileHeader.Size > imaging.MaxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image must be 5 MB or smaller.")
		return
	}

	if !imaging.AllowedExtension(fileHeader.Filename) {
		httperr.BadRequest(c, "invalid_image_type", "Only jpeg, jpg, png and gif images are allowed.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to read the uploaded file.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, imaging.MaxUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to read the uploaded file.")
		return
	}
	if len(data) > imaging.MaxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image must be 5 MB or smaller.")
		return
	}

	format, err := imaging.Validate(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image_type", "Only jpeg, jpg, png and gif images are allowed.")
		return
	}

	ts := time.Now().Unix()
	name := fmt.Sprintf("%d_%d.%s", sess.UserID, ts, format)

	path, err := h.images.Save(c.Request.Context(), name, data, "image/"+format)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to store the image.")
		return
	}

	var thumbPath string
	if thumb, err := imaging.Thumbnail(data); err == nil {
		thumbName := fmt.Sprintf("%d_%d_thumb.webp", sess.UserID, ts)
		thumbPath, _ = h.images.Save(c.Request.Context(), thumbName, thumb, "image/webp")
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Image uploaded successfully",
		"path":      path,
		"thumbnail": thumbPath,
	})
}
