package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/yeonjoon13/flight-collision-sim/internal/collision"
	"github.com/yeonjoon13/flight-collision-sim/internal/config"
	"github.com/yeonjoon13/flight-collision-sim/internal/kafka"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ensure both topics exist
	if err := kafka.CreateTopics(cfg.Kafka.Broker, kafka.DefaultTopics(cfg.Kafka.Topic, cfg.Kafka.AlertTopic)); err != nil {
		log.Printf("create topics: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reader := kafka.NewReader(cfg.Kafka.Broker, cfg.Kafka.Topic, cfg.Kafka.Group)
	defer reader.Close()
	alerts := kafka.NewPublisher(cfg.Kafka.Broker, cfg.Kafka.AlertTopic)
	defer alerts.Close()

	th := collision.Thresholds{HorizNm: cfg.Sim.HorizNm, VertFt: cfg.Sim.VertFt}
	log.Printf("Starting collision detector on %s (topic %s -> %s)", cfg.Kafka.Broker, cfg.Kafka.Topic, cfg.Kafka.AlertTopic)
	if err := collision.RunDetector(ctx, reader, alerts, th); err != nil && ctx.Err() == nil {
		log.Fatalf("detector: %v", err)
	}
	log.Println("Shutting down")
}
