// Package eventlog publishes allocation events over kafka-go, the
// alternate transport to cmd/memkitdemo/broadcaster's sarama producer.
// A real application picks one transport; memkitdemo keeps both paths
// buildable to exercise both client libraries.
package eventlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// AllocationEvent is published once per successful Allocate call by the
// demo's instrumented pool.
type AllocationEvent struct {
	Pool string `json:"pool"`
	Size int64  `json:"size"`
	At   int64  `json:"at_unix_nano"`
}

// Producer publishes AllocationEvents to a single Kafka topic.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer builds a Producer writing to topic on brokers.
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// Publish encodes and sends one AllocationEvent.
func (p *Producer) Publish(ctx context.Context, ev AllocationEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Pool),
		Value: value,
	})
}

// Close releases the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
