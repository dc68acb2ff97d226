package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeBookingCreated        EventType = "booking.created"
	EventTypeBookingUpdated        EventType = "booking.updated"
	EventTypeBookingDeleted        EventType = "booking.deleted"
	EventTypeBookingPaymentUpdated EventType = "booking.payment_updated"
	EventTypeInvoiceRendered       EventType = "invoice.rendered"
)

// BookingEvent is a lifecycle fact emitted after a successful mutation.
type BookingEvent struct {
	ID         uuid.UUID   `json:"id"`
	Type       EventType   `json:"type"`
	BookingID  string      `json:"booking_id,omitempty"`
	Payload    interface{} `json:"payload,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func NewBookingEvent(eventType EventType, bookingID string, payload interface{}) *BookingEvent {
	return &BookingEvent{
		ID:         uuid.New(),
		Type:       eventType,
		BookingID:  bookingID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

// GetPartitionKey keeps all events of one booking on one partition.
func (e *BookingEvent) GetPartitionKey() string {
	if e.BookingID != "" {
		return e.BookingID
	}
	return e.ID.String()
}

func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
