package handlers

import (
	"net/http"

	"javaterra/internal/domain"
	"javaterra/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status and a machine-readable code.
func statusFor(err error) (int, string) {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, "validation_error"
	case domain.IsNotFound(err):
		return http.StatusNotFound, "not_found"
	case domain.IsConflict(err):
		return http.StatusConflict, "conflict"
	case domain.IsUnauthorized(err):
		return http.StatusUnauthorized, "unauthorized"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// RespondDomainError maps domain errors to HTTP responses. Internal errors
// are logged and replaced by a generic message.
func RespondDomainError(c *gin.Context, err error) {
	status, code := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		RespondError(c, status, "Internal server error", err)
		return
	}
	c.JSON(status, gin.H{
		"success":    false,
		"error":      msg,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}
