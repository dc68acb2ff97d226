package invoices

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tripbook/internal/bookings"

	"github.com/phpdave11/gofpdf"
)

// buildReceiptPDF renders a printable receipt for a stored booking
func buildReceiptPDF(b *bookings.Booking, issuedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Booking  : "+b.ID)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued   : "+issuedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Email    : "+safe(b.Email, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Contact  : "+safe(b.Contact, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Trip:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("%s -> %s (%s)", safe(b.From, "-"), safe(b.To, "-"), tripDates(b)), "", "", false)
	pdf.Ln(2)
	pdf.Cell(0, 6, "Passengers: "+strconv.Itoa(b.PassengerCount))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Amount: "+strconv.FormatFloat(b.PaymentAmount, 'f', 2, 64))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Payment status: "+strings.ToUpper(b.PaymentStatus.String()))
	pdf.Ln(12)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(b.ID))
	return buf.Bytes(), filename, nil
}

func tripDates(b *bookings.Booking) string {
	if b.TripType == bookings.TripTypeRoundTrip {
		return fmt.Sprintf("round trip %s to %s", deref(b.StartDate), deref(b.EndDate))
	}
	return "one way " + deref(b.Date)
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return safe(*s, "-")
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
