package bookings

// BookingResponse wraps a booking with a human readable message
type BookingResponse struct {
	Message string   `json:"message"`
	Booking *Booking `json:"booking"`
}

// InvoiceBookingResponse is returned when fetching a booking for invoicing
type InvoiceBookingResponse struct {
	Booking *Booking `json:"booking"`
}
