package handlers

import (
	"net/http"

	"javaterra/internal/http/middleware"
	"javaterra/internal/services"
	"javaterra/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondError sends the {"success": false, "error": ...} payload the
// frontend reads, with request_id included. err is logged, never sent.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	if err != nil {
		utils.LogEvent(reqID, "http", "error", message+": "+err.Error())
	}
	c.JSON(status, gin.H{
		"success":    false,
		"error":      message,
		"request_id": reqID,
	})
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "Request body is required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{RequestID: middleware.GetRequestID(c)}
}
