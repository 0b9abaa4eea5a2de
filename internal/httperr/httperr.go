package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond maps a DomainError to its transport response. Anything that is
// not a DomainError becomes a 500 with the error message passed through.
func Respond(c *gin.Context, err error) {
	var de DomainError
	if !errors.As(err, &de) {
		Internal(c, "internal_error", err.Error())
		return
	}

	switch de.Kind {
	case KindValidation:
		Write(c, http.StatusUnprocessableEntity, de.Code, de.Message)
	case KindNotFound:
		NotFound(c, de.Code, de.Message)
	case KindConflict:
		Conflict(c, de.Code, de.Message)
	case KindAuth:
		Unauthorized(c, de.Code, de.Message)
	case KindForbidden:
		Forbidden(c, de.Code, de.Message)
	default:
		Internal(c, de.Code, de.Message)
	}
}
