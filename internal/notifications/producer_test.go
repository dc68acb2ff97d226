package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"tripbook/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func TestKafkaPublisherSendsKeyedJSON(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got BookingEvent
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.Type != EventTypeBookingCreated || got.BookingID != "b-42" {
			return errors.New("unexpected event body")
		}
		return nil
	})

	pub := NewKafkaPublisherWithProducer(producer, "booking-events", logger.NewWithWriter(io.Discard, "error"))
	if err := pub.Publish(context.Background(), NewBookingEvent(EventTypeBookingCreated, "b-42", map[string]int{"passenger": 2})); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := pub.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestKafkaPublisherSurfacesSendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := NewKafkaPublisherWithProducer(producer, "booking-events", logger.NewWithWriter(io.Discard, "error"))
	err := pub.Publish(context.Background(), NewBookingEvent(EventTypeBookingDeleted, "b-1", nil))
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("expected wrapped broker error, got %v", err)
	}
	pub.Close()
}

func TestPartitionKeyFallsBackToEventID(t *testing.T) {
	e := NewBookingEvent(EventTypeInvoiceRendered, "", nil)
	if e.GetPartitionKey() != e.ID.String() {
		t.Fatalf("expected event id as key, got %s", e.GetPartitionKey())
	}
}
