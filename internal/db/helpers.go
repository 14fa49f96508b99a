package db

import (
	"database/sql"
	"fmt"
)

// QueryRower is the subset of *sql.DB / *sql.Tx used by the lookups below.
type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// Execer runs DDL.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

const BookingsTable = "bookings"

const bookingsDDL = "CREATE TABLE IF NOT EXISTS bookings (" +
	"id BIGINT AUTO_INCREMENT PRIMARY KEY," +
	"booking_id VARCHAR(32) NOT NULL UNIQUE," +
	"departure VARCHAR(100) NOT NULL," +
	"destination VARCHAR(100) NOT NULL," +
	"`date` VARCHAR(20) NOT NULL," +
	"`time` VARCHAR(10) NOT NULL," +
	"bus_type VARCHAR(50) NOT NULL," +
	"quantity INT NOT NULL," +
	"total_price VARCHAR(32) NOT NULL," +
	"username VARCHAR(150) NOT NULL," +
	"birth_date VARCHAR(20) NOT NULL," +
	"email VARCHAR(150) NOT NULL," +
	"address TEXT NOT NULL," +
	"phone VARCHAR(20) NOT NULL," +
	"payment_status VARCHAR(20) NOT NULL DEFAULT 'not_paid'," +
	"booking_status VARCHAR(20) NOT NULL DEFAULT 'pending'," +
	"created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP," +
	"INDEX idx_bookings_created_at (created_at)" +
	") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"

// EnsureSchema creates the bookings table when missing.
func EnsureSchema(db Execer) error {
	if _, err := db.Exec(bookingsDDL); err != nil {
		return fmt.Errorf("create table %s: %w", BookingsTable, err)
	}
	return nil
}

func HasTable(q QueryRower, table string) bool {
	var name string
	err := q.QueryRow(
		`SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ? LIMIT 1`,
		table,
	).Scan(&name)
	return err == nil && name != ""
}
