package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"javaterra/internal/domain/models"
)

func TestCreateBookingSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != createBookingPath || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("missing request id header")
		}
		var body models.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.FullName != "Budi" || body.Quantity != 2 {
			t.Errorf("unexpected body: %+v", body)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"booking_id":"JVT12345678","message":"Booking created successfully"}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL + "/"})
	id, err := c.CreateBooking(context.Background(), models.BookingRequest{FullName: "Budi", Quantity: 2})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if id != "JVT12345678" {
		t.Fatalf("id = %q", id)
	}
}

func TestCreateBookingRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":"UNIQUE constraint failed"}`))
	}))
	defer srv.Close()

	_, err := New(Options{BaseURL: srv.URL}).CreateBooking(context.Background(), models.BookingRequest{})
	if !IsRejected(err) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
	if err.Error() != "UNIQUE constraint failed" {
		t.Fatalf("message should be verbatim, got %q", err.Error())
	}
}

func TestCreateBookingTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	_, err := New(Options{BaseURL: srv.URL}).CreateBooking(context.Background(), models.BookingRequest{})
	if err == nil || IsRejected(err) {
		t.Fatalf("non-JSON response should be a transport error, got %v", err)
	}

	srv.Close()
	_, err = New(Options{BaseURL: srv.URL}).CreateBooking(context.Background(), models.BookingRequest{})
	if err == nil || IsRejected(err) {
		t.Fatalf("closed server should be a transport error, got %v", err)
	}
}

func TestSearchBookings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body models.SearchBookingsRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success":false,"error":"Name is required"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"count":1,"bookings":[{"id":1,"booking_id":"JVT1","username":"Budi","payment_status":"paid","booking_status":"pending"}]}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	res, err := c.SearchBookings(context.Background(), "budi")
	if err != nil {
		t.Fatalf("SearchBookings: %v", err)
	}
	if res.Count != 1 || len(res.Bookings) != 1 || res.Bookings[0].BookingID != "JVT1" {
		t.Fatalf("unexpected result: %+v", res)
	}

	if _, err := c.SearchBookings(context.Background(), ""); !IsRejected(err) {
		t.Fatalf("expected rejection for empty name, got %v", err)
	}
}
