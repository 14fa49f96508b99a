// Package search is the booking history lookup: query by passenger name,
// map the backend answer to a found/not-found/failed result with display labels.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"javaterra/internal/client"
	"javaterra/internal/domain/models"
	"javaterra/internal/utils"
)

// Searcher is the backend call the flow depends on.
type Searcher interface {
	SearchBookings(ctx context.Context, name string) (models.SearchBookingsResponse, error)
}

type Kind int

const (
	KindRejected Kind = iota // query not sent
	KindNotFound
	KindFound
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindRejected:
		return "rejected"
	case KindNotFound:
		return "not_found"
	case KindFound:
		return "found"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	MsgEmptyQuery = "Masukkan nama untuk mencari booking"
	MsgNotFound   = "Booking tidak ditemukan"
	MsgFailed     = "Gagal mencari booking. Silakan coba lagi."
	MsgContactCS  = "Salah memasukan nama pemesan? hubungin kami di +62 881-1313-737"

	LabelPaid    = "LUNAS"
	LabelNotPaid = "BELUM LUNAS"
)

// Entry is one booking with its rendered status labels.
type Entry struct {
	models.BookingRecord
	PaymentLabel string
	StatusLabel  string
}

// Route is "Jakarta → Yogyakarta".
func (e Entry) Route() string { return e.Departure + " → " + e.Destination }

// Schedule is "2026-10-15 - 08:00".
func (e Entry) Schedule() string { return e.Date + " - " + e.Time }

type Result struct {
	Kind    Kind
	Message string
	Count   int
	Entries []Entry
}

type Flow struct {
	searcher Searcher
}

func NewFlow(s Searcher) *Flow {
	return &Flow{searcher: s}
}

// Search trims name and queries the backend. An empty name never reaches it.
func (f *Flow) Search(ctx context.Context, name string) Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{Kind: KindRejected, Message: MsgEmptyQuery}
	}

	resp, err := f.searcher.SearchBookings(ctx, name)
	if err != nil {
		var rejected *client.RejectedError
		if errors.As(err, &rejected) {
			return Result{Kind: KindFailed, Message: "Error: " + rejected.Message}
		}
		utils.LogEvent("", "search", "search", "request failed: "+err.Error())
		return Result{Kind: KindFailed, Message: MsgFailed}
	}

	if resp.Count == 0 || len(resp.Bookings) == 0 {
		return Result{Kind: KindNotFound, Message: MsgNotFound}
	}

	entries := make([]Entry, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		entries = append(entries, Entry{
			BookingRecord: b,
			PaymentLabel:  PaymentLabel(b.PaymentStatus),
			StatusLabel:   StatusLabel(b.BookingStatus),
		})
	}
	return Result{
		Kind:    KindFound,
		Message: fmt.Sprintf("%d booking ditemukan", len(entries)),
		Count:   len(entries),
		Entries: entries,
	}
}

// PaymentLabel is LUNAS only for "paid"; anything else displays as unpaid.
func PaymentLabel(status string) string {
	if strings.EqualFold(strings.TrimSpace(status), models.PaymentPaid) {
		return LabelPaid
	}
	return LabelNotPaid
}

func StatusLabel(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}
