package handlers

import (
	"net/http"

	"javaterra/internal/domain/models"
	"javaterra/internal/http/middleware"
	"javaterra/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/create-booking
func CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id, err := bookingService(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.CreateBookingResponse{
		Success:   true,
		BookingID: id,
		Message:   "Booking created successfully",
	})
}

// POST /api/search-bookings
func SearchBookings(c *gin.Context) {
	var req models.SearchBookingsRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	out, err := bookingService(c).Search(req.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SearchBookingsResponse{
		Success:  true,
		Count:    len(out),
		Bookings: out,
	})
}

// GET /api/booking/:booking_id
func GetBooking(c *gin.Context) {
	b, err := bookingService(c).Get(c.Param("booking_id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// GET /api/booking/:booking_id/e-ticket
func GetBookingETicket(c *gin.Context) {
	rid := middleware.GetRequestID(c)
	svc := services.DocsService{
		Bookings:  services.BookingService{RequestID: rid},
		RequestID: rid,
	}
	pdfBytes, filename, err := svc.GenerateETicket(c.Param("booking_id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
