package handlers

import (
	"net/http"
	"strconv"
	"time"

	"javaterra/internal/domain/models"
	"javaterra/internal/http/middleware"
	"javaterra/internal/services"
	"javaterra/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin panel API.
type AdminHandler struct {
	Auth services.AuthService
	// SecureCookie marks the session cookie Secure (HTTPS deployments).
	SecureCookie bool
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /admin/login
func (h AdminHandler) Login(c *gin.Context) {
	var req adminLoginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	token, exp, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "admin", "login", "failed")
		RespondDomainError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookie, token, int(time.Until(exp).Seconds()), "/", "", h.SecureCookie, true)
	utils.LogEvent(middleware.GetRequestID(c), "admin", "login", "ok")
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      token,
		"expires_at": exp.UTC().Format(time.RFC3339),
	})
}

// GET /admin/logout
func (h AdminHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookie, "", -1, "/", "", h.SecureCookie, true)
	c.Redirect(http.StatusFound, "/admin/login")
}

// GET /admin/api/bookings?status=&payment=
func (h AdminHandler) ListBookings(c *gin.Context) {
	out, err := bookingService(c).List(models.BookingFilter{
		BookingStatus: c.DefaultQuery("status", "all"),
		PaymentStatus: c.DefaultQuery("payment", "all"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(out), "bookings": out})
}

// PUT /admin/api/booking/:id/status
func (h AdminHandler) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.StatusUpdate
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := bookingService(c).UpdateStatus(id, req); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated successfully"})
}

// DELETE /admin/api/booking/:id
func (h AdminHandler) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := bookingService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted successfully"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "Invalid booking id", nil)
		return 0, false
	}
	return id, true
}
