package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"javaterra/internal/domain"
	"javaterra/internal/domain/models"
	"javaterra/internal/repositories"
	"javaterra/internal/utils"

	"github.com/go-sql-driver/mysql"
)

const mysqlErrDuplicateEntry = 1062

type BookingService struct {
	BookingRepo repositories.BookingRepository
	Now         func() time.Time
	RequestID   string
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// NewBookingID is "JVT" followed by the last 8 digits of the unix timestamp.
func NewBookingID(now time.Time) string {
	ts := strconv.FormatInt(now.Unix(), 10)
	if len(ts) > 8 {
		ts = ts[len(ts)-8:]
	}
	return "JVT" + ts
}

// Create stores the booking as not paid / pending and returns its booking id.
// Fields are stored as sent.
func (s BookingService) Create(req models.BookingRequest) (string, error) {
	bookingID := NewBookingID(s.now())
	if _, err := s.BookingRepo.Insert(bookingID, req, models.PaymentNotPaid, models.StatusPending); err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlErrDuplicateEntry {
			return "", domain.ConflictError{Msg: "Booking ID already exists, please try again", Err: err}
		}
		utils.LogEvent(s.RequestID, "booking", "create", "insert failed: "+err.Error())
		return "", domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "create", "booking_id="+bookingID)
	return bookingID, nil
}

func (s BookingService) Search(name string) ([]models.BookingRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ValidationError{Msg: "Name is required"}
	}
	out, err := s.BookingRepo.SearchByName(name)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "search", "query failed: "+err.Error())
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s BookingService) Get(bookingID string) (models.BookingRecord, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return models.BookingRecord{}, domain.NotFoundError{Resource: "Booking"}
	}
	b, err := s.BookingRepo.GetByBookingID(bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BookingRecord{}, domain.NotFoundError{Resource: "Booking", Err: err}
	}
	if err != nil {
		return models.BookingRecord{}, domain.InternalError{Err: err}
	}
	return b, nil
}

func (s BookingService) List(f models.BookingFilter) ([]models.BookingRecord, error) {
	out, err := s.BookingRepo.List(f)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

var (
	validBookingStatus = map[string]bool{models.StatusPending: true, models.StatusConfirmed: true, models.StatusCancelled: true}
	validPaymentStatus = map[string]bool{models.PaymentNotPaid: true, models.PaymentPaid: true}
)

// UpdateStatus changes booking and/or payment status. Empty values are ignored.
func (s BookingService) UpdateStatus(id int64, upd models.StatusUpdate) error {
	if id <= 0 {
		return domain.ValidationError{Msg: "invalid booking id"}
	}
	clean := models.StatusUpdate{}
	if upd.BookingStatus != nil && strings.TrimSpace(*upd.BookingStatus) != "" {
		v := strings.ToLower(strings.TrimSpace(*upd.BookingStatus))
		if !validBookingStatus[v] {
			return domain.ValidationError{Msg: fmt.Sprintf("invalid booking_status %q", v)}
		}
		clean.BookingStatus = &v
	}
	if upd.PaymentStatus != nil && strings.TrimSpace(*upd.PaymentStatus) != "" {
		v := strings.ToLower(strings.TrimSpace(*upd.PaymentStatus))
		if !validPaymentStatus[v] {
			return domain.ValidationError{Msg: fmt.Sprintf("invalid payment_status %q", v)}
		}
		clean.PaymentStatus = &v
	}
	if clean.BookingStatus == nil && clean.PaymentStatus == nil {
		return domain.ValidationError{Msg: "booking_status or payment_status is required"}
	}

	n, err := s.BookingRepo.UpdateStatus(id, clean)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "Booking"}
	}
	utils.LogEvent(s.RequestID, "admin", "update_status", fmt.Sprintf("id=%d", id))
	return nil
}

func (s BookingService) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Msg: "invalid booking id"}
	}
	n, err := s.BookingRepo.Delete(id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "Booking"}
	}
	utils.LogEvent(s.RequestID, "admin", "delete", fmt.Sprintf("id=%d", id))
	return nil
}
