package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/yeonjoon13/flight-collision-sim/internal/config"
	"github.com/yeonjoon13/flight-collision-sim/internal/kafka"
	"github.com/yeonjoon13/flight-collision-sim/internal/opensky"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "YAML config file")
		url      = flag.String("url", "", "OpenSky API URL (optional)")
		interval = flag.Duration("interval", 0, "Poll interval (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *url != "" {
		cfg.OpenSky.URL = *url
	}
	if *interval > 0 {
		cfg.OpenSky.Interval = *interval
	}
	if cfg.OpenSky.Interval <= 0 {
		cfg.OpenSky.Interval = 2 * time.Minute
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// wsserver reads partition 0 only, so the topic must not be auto-created
	// with the broker's default partition count.
	if err := kafka.CreateTopics(cfg.Kafka.Broker, kafka.DefaultTopics(cfg.Kafka.Topic, cfg.Kafka.AlertTopic)); err != nil {
		log.Printf("create topics: %v", err)
	}

	pub := kafka.NewPublisher(cfg.Kafka.Broker, cfg.Kafka.Topic)
	defer pub.Close()

	ticker := time.NewTicker(cfg.OpenSky.Interval)
	defer ticker.Stop()

	log.Println("Starting ingestor...")
	var tick int64
	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down ingestor")
			return
		case <-ticker.C:
			frame, err := opensky.FetchAircraft(ctx, cfg.OpenSky.URL)
			if err != nil {
				log.Printf("fetch error: %v", err)
				continue
			}
			tick++
			frame.Tick = tick
			log.Printf("Fetched %d aircraft from OpenSky", len(frame.Aircraft))
			if err := pub.Publish(ctx, frame); err != nil {
				log.Printf("publish error: %v", err)
				continue
			}
			log.Printf("Published frame %d to Kafka", frame.Tick)
		}
	}
}
