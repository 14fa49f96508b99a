package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	intconfig "javaterra/internal/config"
	"javaterra/internal/domain/models"
	"javaterra/internal/utils"
)

const bookingColumns = "id, booking_id, departure, destination, `date`, `time`, bus_type, quantity, total_price, " +
	"username, birth_date, email, address, phone, payment_status, booking_status, created_at"

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(s rowScanner) (models.BookingRecord, error) {
	var (
		b       models.BookingRecord
		created time.Time
	)
	if err := s.Scan(
		&b.ID,
		&b.BookingID,
		&b.Departure,
		&b.Destination,
		&b.Date,
		&b.Time,
		&b.BusType,
		&b.Quantity,
		&b.TotalPrice,
		&b.FullName,
		&b.BirthDate,
		&b.Email,
		&b.Address,
		&b.Phone,
		&b.PaymentStatus,
		&b.BookingStatus,
		&created,
	); err != nil {
		return models.BookingRecord{}, err
	}
	b.CreatedAt = utils.FormatDateTime(created)
	return b, nil
}

func (r BookingRepository) queryList(query string, args ...any) ([]models.BookingRecord, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingRecord{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Insert stores a new booking with the given id and initial statuses.
func (r BookingRepository) Insert(bookingID string, req models.BookingRequest, paymentStatus, bookingStatus string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings (
			booking_id, departure, destination, `+"`date`, `time`"+`,
			bus_type, quantity, total_price, username, birth_date,
			email, address, phone, payment_status, booking_status
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		bookingID,
		req.Departure,
		req.Destination,
		req.Date,
		req.Time,
		req.BusType,
		int(req.Quantity),
		req.TotalPrice,
		req.FullName,
		req.BirthDate,
		req.Email,
		req.Address,
		req.Phone,
		paymentStatus,
		bookingStatus,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// SearchByName matches a case-insensitive substring of the passenger name, newest first.
func (r BookingRepository) SearchByName(name string) ([]models.BookingRecord, error) {
	pattern := "%" + escapeLike(strings.ToLower(name)) + "%"
	return r.queryList(`SELECT `+bookingColumns+` FROM bookings
		WHERE LOWER(username) LIKE ?
		ORDER BY created_at DESC, id DESC`, pattern)
}

func (r BookingRepository) GetByBookingID(bookingID string) (models.BookingRecord, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE booking_id = ? LIMIT 1`, bookingID)
	return scanBooking(row)
}

// List returns all bookings for the admin view. "all" or "" disables a filter.
func (r BookingRepository) List(f models.BookingFilter) ([]models.BookingRecord, error) {
	var (
		where []string
		args  []any
	)
	if s := strings.TrimSpace(f.BookingStatus); s != "" && s != "all" {
		where = append(where, "booking_status = ?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.PaymentStatus); s != "" && s != "all" {
		where = append(where, "payment_status = ?")
		args = append(args, s)
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	return r.queryList(query, args...)
}

// UpdateStatus sets whichever statuses are non-nil. It returns the number of
// matched rows (the DSN enables clientFoundRows).
func (r BookingRepository) UpdateStatus(id int64, upd models.StatusUpdate) (int64, error) {
	var (
		sets []string
		args []any
	)
	if upd.BookingStatus != nil {
		sets = append(sets, "booking_status = ?")
		args = append(args, *upd.BookingStatus)
	}
	if upd.PaymentStatus != nil {
		sets = append(sets, "payment_status = ?")
		args = append(args, *upd.PaymentStatus)
	}
	if len(sets) == 0 {
		return 0, fmt.Errorf("tidak ada status yang diubah")
	}
	args = append(args, id)

	res, err := r.db().Exec(`UPDATE bookings SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r BookingRepository) Delete(id int64) (int64, error) {
	res, err := r.db().Exec(`DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
