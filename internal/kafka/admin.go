package kafka

import (
	"fmt"
	"net"

	"github.com/segmentio/kafka-go"
)

type TopicConfig struct {
	Topic             string
	NumPartitions     int
	ReplicationFactor int
}

// DefaultTopics returns single-partition topics for frames and alerts.
// Frames must stay ordered, so one partition is enough.
func DefaultTopics(frameTopic, alertTopic string) []TopicConfig {
	return []TopicConfig{
		{Topic: frameTopic, NumPartitions: 1, ReplicationFactor: 1},
		{Topic: alertTopic, NumPartitions: 1, ReplicationFactor: 1},
	}
}

// CreateTopics ensures each topic exists with given config
func CreateTopics(broker string, configs []TopicConfig) error {
	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return fmt.Errorf("dial %s: %w", broker, err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("find controller: %w", err)
	}
	hostPort := net.JoinHostPort(controller.Host, fmt.Sprint(controller.Port))
	ctrlConn, err := kafka.Dial("tcp", hostPort)
	if err != nil {
		return fmt.Errorf("dial controller %s: %w", hostPort, err)
	}
	defer ctrlConn.Close()

	topics := make([]kafka.TopicConfig, 0, len(configs))
	for _, cfg := range configs {
		topics = append(topics, kafka.TopicConfig{
			Topic:             cfg.Topic,
			NumPartitions:     cfg.NumPartitions,
			ReplicationFactor: cfg.ReplicationFactor,
		})
	}
	if err := ctrlConn.CreateTopics(topics...); err != nil {
		return fmt.Errorf("create topics: %w", err)
	}
	return nil
}
