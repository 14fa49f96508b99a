package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Payment and booking status values stored by the backend.
const (
	PaymentNotPaid = "not_paid"
	PaymentPaid    = "paid"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// FlexInt accepts a JSON number or a numeric string ("2"), since the
// booking form posts the quantity input value as text.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := strings.Trim(string(b), `"`)
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("quantity tidak valid: %q", s)
	}
	*n = FlexInt(v)
	return nil
}

func (n FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(n))
}

// TripSelection is the step-1 draft (key bookingData).
type TripSelection struct {
	Departure   string  `json:"departure"`
	Destination string  `json:"destination"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	BusType     string  `json:"busType"`
	Quantity    FlexInt `json:"quantity"`
	TotalPrice  string  `json:"totalPrice"`
}

// Biodata is the step-2 draft (key biodataData).
type Biodata struct {
	FullName  string `json:"username"`
	BirthDate string `json:"birth"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// BookingRequest is the create-booking body: trip fields and biodata flattened.
type BookingRequest struct {
	Departure   string  `json:"departure"`
	Destination string  `json:"destination"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	BusType     string  `json:"busType"`
	Quantity    FlexInt `json:"quantity"`
	TotalPrice  string  `json:"totalPrice"`
	FullName    string  `json:"username"`
	BirthDate   string  `json:"birth"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
}

// NewBookingRequest merges both drafts into one submission payload.
func NewBookingRequest(trip TripSelection, bio Biodata) BookingRequest {
	return BookingRequest{
		Departure:   trip.Departure,
		Destination: trip.Destination,
		Date:        trip.Date,
		Time:        trip.Time,
		BusType:     trip.BusType,
		Quantity:    trip.Quantity,
		TotalPrice:  trip.TotalPrice,
		FullName:    bio.FullName,
		BirthDate:   bio.BirthDate,
		Email:       bio.Email,
		Address:     bio.Address,
		Phone:       bio.Phone,
	}
}

// BookingRecord is a stored booking as returned by search, detail and admin endpoints.
type BookingRecord struct {
	ID            int64  `json:"id"`
	BookingID     string `json:"booking_id"`
	Departure     string `json:"departure"`
	Destination   string `json:"destination"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	BusType       string `json:"bus_type"`
	Quantity      int    `json:"quantity"`
	TotalPrice    string `json:"total_price"`
	FullName      string `json:"username"`
	BirthDate     string `json:"birth_date,omitempty"`
	Email         string `json:"email"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone"`
	PaymentStatus string `json:"payment_status"`
	BookingStatus string `json:"booking_status"`
	CreatedAt     string `json:"created_at"`
}

// BookingFilter narrows admin listings; "all" or "" means no filter.
type BookingFilter struct {
	BookingStatus string
	PaymentStatus string
}

// StatusUpdate supports PATCH-style updates via pointer presence.
type StatusUpdate struct {
	BookingStatus *string `json:"booking_status"`
	PaymentStatus *string `json:"payment_status"`
}

// CreateBookingResponse mirrors POST /api/create-booking.
type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SearchBookingsRequest is the POST /api/search-bookings body.
type SearchBookingsRequest struct {
	Name string `json:"name"`
}

// SearchBookingsResponse mirrors POST /api/search-bookings.
type SearchBookingsResponse struct {
	Success  bool            `json:"success"`
	Count    int             `json:"count"`
	Bookings []BookingRecord `json:"bookings"`
	Error    string          `json:"error,omitempty"`
}
