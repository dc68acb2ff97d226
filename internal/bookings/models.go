package bookings

import (
	"time"
)

// Booking is a customer's trip reservation
type Booking struct {
	ID             string        `gorm:"type:varchar(36);primaryKey" json:"_id"`
	Email          string        `gorm:"not null" json:"email"`
	Contact        string        `gorm:"not null" json:"contact"`
	From           string        `gorm:"column:origin;not null" json:"from"`
	To             string        `gorm:"column:destination;not null" json:"to"`
	TripType       TripType      `gorm:"type:varchar(16);not null" json:"tripType"`
	Date           *string       `json:"date"`
	StartDate      *string       `json:"startDate"`
	EndDate        *string       `json:"endDate"`
	PassengerCount int           `gorm:"column:passenger_count;not null" json:"passenger"`
	PaymentAmount  float64       `gorm:"not null" json:"paymentAmount"`
	PaymentStatus  PaymentStatus `gorm:"type:varchar(16);not null" json:"paymentStatus"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// normalizeDates keeps only the date shape belonging to the trip type
func (b *Booking) normalizeDates() {
	switch b.TripType {
	case TripTypeOneWay:
		b.StartDate = nil
		b.EndDate = nil
	case TripTypeRoundTrip:
		b.Date = nil
	}
}

// applyPatch copies every provided field verbatim. Dates are not re-normalized.
func (b *Booking) applyPatch(req UpdateBookingRequest) []string {
	var changed []string
	if req.Email != nil {
		b.Email = *req.Email
		changed = append(changed, "email")
	}
	if req.Contact != nil {
		b.Contact = *req.Contact
		changed = append(changed, "contact")
	}
	if req.From != nil {
		b.From = *req.From
		changed = append(changed, "from")
	}
	if req.To != nil {
		b.To = *req.To
		changed = append(changed, "to")
	}
	if req.TripType != nil {
		b.TripType = TripType(*req.TripType)
		changed = append(changed, "tripType")
	}
	if req.Date != nil {
		b.Date = stringPtr(*req.Date)
		changed = append(changed, "date")
	}
	if req.StartDate != nil {
		b.StartDate = stringPtr(*req.StartDate)
		changed = append(changed, "startDate")
	}
	if req.EndDate != nil {
		b.EndDate = stringPtr(*req.EndDate)
		changed = append(changed, "endDate")
	}
	if req.PassengerCount != nil {
		b.PassengerCount = *req.PassengerCount
		changed = append(changed, "passenger")
	}
	if req.PaymentAmount != nil {
		b.PaymentAmount = *req.PaymentAmount
		changed = append(changed, "paymentAmount")
	}
	if req.PaymentStatus != nil {
		b.PaymentStatus = PaymentStatus(*req.PaymentStatus)
		changed = append(changed, "paymentStatus")
	}
	return changed
}

func stringPtr(s string) *string {
	return &s
}
