// Package client talks to the booking backend over its JSON API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"javaterra/internal/domain/models"

	"github.com/google/uuid"
)

const (
	createBookingPath  = "/api/create-booking"
	searchBookingsPath = "/api/search-bookings"
)

// RejectedError is an application-level refusal ("success": false). Message
// is the backend's error string, meant to be shown to the user as is.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected request (status %d)", e.StatusCode)
	}
	return e.Message
}

// IsRejected reports whether err is a backend refusal rather than a transport failure.
func IsRejected(err error) bool {
	var target *RejectedError
	return errors.As(err, &target)
}

// Options configures New. Timeout is applied only when HTTPClient is nil.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    hc,
	}
}

// CreateBooking submits both drafts and returns the server-assigned booking id.
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (string, error) {
	var resp models.CreateBookingResponse
	status, err := c.postJSON(ctx, createBookingPath, req, &resp)
	if err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}
	if !resp.Success {
		return "", &RejectedError{StatusCode: status, Message: resp.Error}
	}
	if strings.TrimSpace(resp.BookingID) == "" {
		return "", fmt.Errorf("create booking: response tanpa booking_id (status %d)", status)
	}
	return resp.BookingID, nil
}

// SearchBookings looks bookings up by passenger name.
func (c *Client) SearchBookings(ctx context.Context, name string) (models.SearchBookingsResponse, error) {
	var resp models.SearchBookingsResponse
	status, err := c.postJSON(ctx, searchBookingsPath, models.SearchBookingsRequest{Name: name}, &resp)
	if err != nil {
		return resp, fmt.Errorf("search bookings: %w", err)
	}
	if !resp.Success {
		return resp, &RejectedError{StatusCode: status, Message: resp.Error}
	}
	return resp, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, dst any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return res.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return res.StatusCode, fmt.Errorf("decode response (status %d): %w", res.StatusCode, err)
	}
	return res.StatusCode, nil
}
