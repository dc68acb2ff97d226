package notifications

import (
	"context"
	"fmt"
	"time"

	"tripbook/pkg/logger"

	"github.com/IBM/sarama"
)

// Publisher emits booking lifecycle events
type Publisher interface {
	Publish(ctx context.Context, event *BookingEvent) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka booking event producer
type KafkaProducerConfig struct {
	Brokers          []string
	BookingTopic     string
	RetryMax         int
	Timeout          time.Duration
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		BookingTopic:     "booking-events",
		RetryMax:         3,
		Timeout:          10 * time.Second,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000, // 1MB
	}
}

// KafkaPublisher publishes booking events to Kafka
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

// NewKafkaPublisher dials the brokers and returns a synchronous publisher
func NewKafkaPublisher(config *KafkaProducerConfig, log *logger.Logger) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps a booking's events ordered
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Info("Kafka booking event producer created", "brokers", config.Brokers, "topic", config.BookingTopic)
	return NewKafkaPublisherWithProducer(producer, config.BookingTopic, log), nil
}

// NewKafkaPublisherWithProducer wraps an existing sarama producer
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, log: log}
}

// Publish sends a single event, keyed by booking id
func (p *KafkaPublisher) Publish(ctx context.Context, event *BookingEvent) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   createHeaders(event),
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send booking event to Kafka: %w", err)
	}

	p.log.DebugContext(ctx, "Booking event published",
		"topic", p.topic, "partition", partition, "offset", offset,
		"type", string(event.Type), "booking_id", event.BookingID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	return nil
}

func createHeaders(event *BookingEvent) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("event_id"), Value: []byte(event.ID.String())},
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("content_type"), Value: []byte("application/json")},
	}
}

// NoopPublisher drops events; used when Kafka is disabled
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *BookingEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
