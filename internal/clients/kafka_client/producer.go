package kafka_client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/spacesedan/positivizer/internal/metrics"
	"github.com/spacesedan/positivizer/internal/models"
)

// messageProducer is the part of *kafka.Producer the event producer uses.
type messageProducer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Events() chan kafka.Event
	Flush(timeoutMs int) int
	Close()
}

// EventProducer publishes completed analyses. Delivery is asynchronous:
// Publish only fails when the message cannot be queued.
type EventProducer struct {
	producer messageProducer
	topic    string
	metrics  *metrics.Metrics

	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewEventProducer(cfg KafkaConfig, m *metrics.Metrics) (*EventProducer, error) {
	slog.Info("[KafkaClient] Initializing Kafka Producer...")
	cfg = cfg.withDefaults()

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":   cfg.Broker,
		"client.id":           PRODUCER_CLIENT_ID,
		"api.version.request": "true",
		"enable.idempotence":  true,
		"acks":                "all",
		"linger.ms":           5,
	})
	if err != nil {
		return nil, fmt.Errorf("[KafkaClient] Failed to create producer: %w", err)
	}

	slog.Info("[KafkaClient] Kafka Producer initialized successfully",
		slog.String("topic", cfg.Topic))
	return newEventProducer(p, cfg.Topic, m), nil
}

func newEventProducer(p messageProducer, topic string, m *metrics.Metrics) *EventProducer {
	ep := &EventProducer{producer: p, topic: topic, metrics: m}
	ep.wg.Add(1)
	go ep.handleDeliveries()
	return ep
}

// Publish queues event on the topic keyed by its analysis ID.
func (p *EventProducer) Publish(ctx context.Context, event models.AnalysisEvent) error {
	jsonData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("[KafkaClient] failed to marshal analysis event: %w", err)
	}

	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.ID),
		Value:          jsonData,
		Headers: []kafka.Header{
			{Key: "label", Value: []byte(event.Label)},
		},
	}

	for i := 0; i < MAX_RETRIES; i++ {
		err = p.producer.Produce(msg, nil)
		if err == nil {
			return nil
		}
		slog.Warn("[KafkaClient] Failed to produce message, retrying...",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			p.count("failed")
			return ctx.Err()
		case <-time.After(RETRY_DELAY * time.Duration(i+1)):
		}
	}

	p.count("failed")
	return fmt.Errorf("[KafkaClient] failed to produce message after %d retries: %w", MAX_RETRIES, err)
}

func (p *EventProducer) handleDeliveries() {
	defer p.wg.Done()
	for e := range p.producer.Events() {
		switch ev := e.(type) {
		case *kafka.Message:
			if ev.TopicPartition.Error != nil {
				slog.Warn("[KafkaClient] Delivery failed",
					slog.String("key", string(ev.Key)),
					slog.String("error", ev.TopicPartition.Error.Error()))
				p.count("failed")
				continue
			}
			slog.Debug("[KafkaClient] Published analysis event",
				slog.String("key", string(ev.Key)),
				slog.Int("partition", int(ev.TopicPartition.Partition)))
			p.count("published")
		case kafka.Error:
			slog.Error("[KafkaClient] Producer error",
				slog.String("error", ev.Error()))
		}
	}
}

func (p *EventProducer) count(status string) {
	if p.metrics != nil {
		p.metrics.EventsTotal.WithLabelValues(status).Inc()
	}
}

// Close flushes pending messages and shuts the producer down.
func (p *EventProducer) Close() {
	p.closeOnce.Do(func() {
		slog.Info("[KafkaClient] Flushing Kafka producer before shutdown...")
		if remaining := p.producer.Flush(int(FLUSH_TIMEOUT / time.Millisecond)); remaining > 0 {
			slog.Warn("[KafkaClient] Not all messages were delivered before shutdown",
				slog.Int("remaining", remaining))
		}
		p.producer.Close()
		p.wg.Wait()
		slog.Info("[KafkaClient] Kafka producer shut down")
	})
}
