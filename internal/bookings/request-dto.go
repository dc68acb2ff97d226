package bookings

import "strings"

type CreateBookingRequest struct {
	Email          string  `json:"email" validate:"required"`
	Contact        string  `json:"contact" validate:"required"`
	From           string  `json:"from" validate:"required"`
	To             string  `json:"to" validate:"required"`
	TripType       string  `json:"tripType" validate:"required,oneof=oneway roundtrip"`
	Date           *string `json:"date"`
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
	PassengerCount int     `json:"passenger" validate:"required,min=1"`
}

// trim strips surrounding whitespace so blank values count as missing
func (r *CreateBookingRequest) trim() {
	r.Email = strings.TrimSpace(r.Email)
	r.Contact = strings.TrimSpace(r.Contact)
	r.From = strings.TrimSpace(r.From)
	r.To = strings.TrimSpace(r.To)
	r.TripType = strings.TrimSpace(r.TripType)
}

// UpdateBookingRequest is a partial patch; nil fields are left untouched
type UpdateBookingRequest struct {
	Email          *string  `json:"email"`
	Contact        *string  `json:"contact"`
	From           *string  `json:"from"`
	To             *string  `json:"to"`
	TripType       *string  `json:"tripType"`
	Date           *string  `json:"date"`
	StartDate      *string  `json:"startDate"`
	EndDate        *string  `json:"endDate"`
	PassengerCount *int     `json:"passenger"`
	PaymentAmount  *float64 `json:"paymentAmount"`
	PaymentStatus  *string  `json:"paymentStatus"`
}

type UpdatePaymentRequest struct {
	PaymentAmount *float64 `json:"paymentAmount" validate:"required,min=0"`
	PaymentStatus string   `json:"paymentStatus" validate:"required,oneof=pending paid failed"`
}
