package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// NewReader returns a configured kafka.Reader. An empty groupID reads
// partition 0 from the latest offset, which is what live viewers want.
func NewReader(broker, topic, groupID string) *kafka.Reader {
	cfg := kafka.ReaderConfig{
		Brokers:         []string{broker},
		Topic:           topic,
		MinBytes:        1,
		MaxBytes:        10e6,
		MaxWait:         500 * time.Millisecond,
		ReadLagInterval: -1,
	}
	if groupID != "" {
		cfg.GroupID = groupID
		cfg.StartOffset = kafka.FirstOffset
	} else {
		cfg.StartOffset = kafka.LastOffset
	}
	return kafka.NewReader(cfg)
}
