// Package broadcaster publishes allocation events over sarama, the
// primary transport memkitdemo exercises (kafka-go, in
// cmd/memkitdemo/eventlog, is the alternate one).
package broadcaster

import (
	"encoding/json"
	"log"

	"github.com/IBM/sarama"
)

// Event mirrors eventlog.AllocationEvent; kept as its own type since a
// sarama-backed producer and a kafka-go-backed one are independent
// integration points in this demo, not sharing an import.
type Event struct {
	Pool string `json:"pool"`
	Size int64  `json:"size"`
	At   int64  `json:"at_unix_nano"`
}

// Broadcaster publishes Events to a single Kafka topic via a
// synchronous sarama producer.
type Broadcaster struct {
	producer sarama.SyncProducer
	topic    string
}

// New builds a Broadcaster, requiring every message to be acked by all
// in-sync replicas before SendMessage returns.
func New(brokers []string, topic string) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{producer: producer, topic: topic}, nil
}

// Publish sends ev and logs the outcome rather than propagating every
// transient publish error up to the allocation hot path.
func (b *Broadcaster) Publish(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[broadcaster] encode failed: %v", err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: b.topic,
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err := b.producer.SendMessage(msg); err != nil {
		log.Printf("[broadcaster] publish failed: %v", err)
	}
}

// Close releases the underlying producer.
func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
