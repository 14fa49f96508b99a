package api

import (
	"log"
	stdhttp "net/http"
	"strings"

	intconfig "javaterra/internal/config"
	h "javaterra/internal/http/handlers"
	"javaterra/internal/http/middleware"
	"javaterra/internal/services"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, auth services.AuthService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"error":   "route tidak ditemukan",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		api.POST("/create-booking", h.CreateBooking)
		api.POST("/search-bookings", h.SearchBookings)
		api.GET("/booking/:booking_id", h.GetBooking)
		api.GET("/booking/:booking_id/e-ticket", h.GetBookingETicket)
	}

	admin := h.AdminHandler{Auth: auth, SecureCookie: env.GinMode == gin.ReleaseMode}
	adminGroup := r.Group("/admin")
	{
		adminGroup.POST("/login", admin.Login)
		adminGroup.GET("/logout", admin.Logout)

		adminAPI := adminGroup.Group("/api", middleware.AdminAuth(auth))
		adminAPI.GET("/bookings", admin.ListBookings)
		adminAPI.PUT("/booking/:id/status", admin.UpdateBookingStatus)
		adminAPI.DELETE("/booking/:id", admin.DeleteBooking)
	}

	if dir := strings.TrimSpace(env.StaticDir); dir != "" {
		mountPages(r, h.Pages{Dir: dir, Admin: auth})
	}

	h.SetRouter(r)
	return r
}

func mountPages(r *gin.Engine, p h.Pages) {
	r.Static("/static", p.Dir)
	r.GET("/", p.Page("index.html"))
	r.GET("/booking", p.Page("booking.html"))
	r.GET("/history", p.Page("history.html"))
	r.GET("/admin/login", p.Page("admin_login.html"))
	r.GET("/admin/dashboard", p.Dashboard)
}
