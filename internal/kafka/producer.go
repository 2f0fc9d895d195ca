package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"
	"github.com/yeonjoon13/flight-collision-sim/internal/model"
)

// Publisher writes frames to a topic, one message per frame.
type Publisher struct {
	w *kafka.Writer
}

func NewPublisher(broker, topic string) *Publisher {
	return &Publisher{w: &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}}
}

// Publish implements sim.Sink.
func (p *Publisher) Publish(ctx context.Context, f model.Frame) error {
	msg, err := EncodeFrame(f)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, msg)
}

// PublishAlerts implements collision.AlertPublisher.
func (p *Publisher) PublishAlerts(ctx context.Context, f model.Frame) error {
	return p.Publish(ctx, f)
}

func (p *Publisher) Close() error {
	return p.w.Close()
}

// EncodeFrame marshals f and keys the message by its tick. Ordering relies on
// the single-partition topics from DefaultTopics, not on the key.
func EncodeFrame(f model.Frame) (kafka.Message, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{Key: []byte(strconv.FormatInt(f.Tick, 10)), Value: b}, nil
}

func DecodeFrame(m kafka.Message) (model.Frame, error) {
	var f model.Frame
	err := model.UnmarshalFrame(m.Value, &f)
	return f, err
}
