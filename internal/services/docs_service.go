package services

import (
	"bytes"
	"fmt"
	"strings"

	"javaterra/internal/domain/models"
	"javaterra/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService menghasilkan PDF e-ticket per booking.
type DocsService struct {
	Bookings  BookingService
	RequestID string
	Loader    func(bookingID string) (models.BookingRecord, error)
}

func (s DocsService) load(bookingID string) (models.BookingRecord, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.Bookings.Get(bookingID)
}

// GenerateETicket returns the PDF bytes and a download filename.
func (s DocsService) GenerateETicket(bookingID string) ([]byte, string, error) {
	b, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "booking_id="+b.BookingID)
	return buildETicketPDF(b)
}

func paymentText(status string) string {
	if status == models.PaymentPaid {
		return "LUNAS"
	}
	return "BELUM LUNAS"
}

func buildETicketPDF(b models.BookingRecord) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket "+b.BookingID, false)
	pdf.SetAuthor("Javaterra", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "JAVATERRA E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Kode Booking: "+safe(b.BookingID, "-"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Nama Pemesan   : %s", safe(b.FullName, "-")),
		fmt.Sprintf("No HP          : %s", safe(b.Phone, "-")),
		fmt.Sprintf("Email          : %s", safe(b.Email, "-")),
		// gofpdf core fonts are cp1252, so no unicode arrow here
		fmt.Sprintf("Rute           : %s -> %s", safe(b.Departure, "-"), safe(b.Destination, "-")),
		fmt.Sprintf("Tanggal/Jam    : %s %s", safe(dateOnly(b.Date), "-"), safe(timeHM(b.Time), "-")),
		fmt.Sprintf("Tipe Bus       : %s", safe(b.BusType, "-")),
		fmt.Sprintf("Jumlah Tiket   : %d tiket", b.Quantity),
		fmt.Sprintf("Total          : %s", safe(b.TotalPrice, "-")),
		fmt.Sprintf("Status Booking : %s", strings.ToUpper(safe(b.BookingStatus, "-"))),
		fmt.Sprintf("Pembayaran     : %s", paymentText(b.PaymentStatus)),
		fmt.Sprintf("Dipesan        : %s", safe(b.CreatedAt, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Catatan: Harap tunjukkan e-ticket ini beserta kartu identitas saat keberangkatan.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s_%s.pdf", safeFilenamePart(b.BookingID), safeFilenamePart(b.FullName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func dateOnly(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return v
}

func timeHM(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 5 {
		return v[:5]
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
