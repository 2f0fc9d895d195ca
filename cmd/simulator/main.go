package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/yeonjoon13/flight-collision-sim/internal/collision"
	"github.com/yeonjoon13/flight-collision-sim/internal/config"
	"github.com/yeonjoon13/flight-collision-sim/internal/flights"
	"github.com/yeonjoon13/flight-collision-sim/internal/kafka"
	"github.com/yeonjoon13/flight-collision-sim/internal/rand"
	"github.com/yeonjoon13/flight-collision-sim/internal/scene"
	"github.com/yeonjoon13/flight-collision-sim/internal/sim"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file")
	count := flag.Int("count", 0, "number of aircraft (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config)")
	dryRun := flag.Bool("dry-run", false, "keep frames in memory instead of publishing to Kafka; alerts are still logged")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *count != 0 {
		cfg.Sim.Count = *count
	}
	if *seed != 0 {
		cfg.Sim.Seed = *seed
	}

	rng := rand.New()
	if cfg.Sim.Seed != 0 {
		rng = rand.NewSeeded(cfg.Sim.Seed)
	}
	gen := scene.Generator{RefLat: cfg.Sim.RefLat, RefLon: cfg.Sim.RefLon, RadiusKm: cfg.Sim.RadiusKm}
	planes, err := gen.Generate(rng, cfg.Sim.Count)
	if err != nil {
		log.Fatalf("generate scene: %v", err)
	}
	log.Printf("Generated %d aircraft around %.4f,%.4f", len(planes), cfg.Sim.RefLat, cfg.Sim.RefLon)

	s, err := sim.New(sim.Config{Tick: cfg.Sim.Tick, Speedup: cfg.Sim.Speedup, MaxTicks: cfg.Sim.MaxTicks},
		planes, collision.Thresholds{HorizNm: cfg.Sim.HorizNm, VertFt: cfg.Sim.VertFt})
	if err != nil {
		log.Fatalf("sim: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var sink sim.Sink
	if *dryRun {
		sink = flights.NewStore()
	} else {
		if err := kafka.CreateTopics(cfg.Kafka.Broker, kafka.DefaultTopics(cfg.Kafka.Topic, cfg.Kafka.AlertTopic)); err != nil {
			log.Printf("create topics: %v", err)
		}
		pub := kafka.NewPublisher(cfg.Kafka.Broker, cfg.Kafka.Topic)
		defer pub.Close()
		sink = pub
		log.Printf("Publishing frames to %s, topic %s", cfg.Kafka.Broker, cfg.Kafka.Topic)
	}

	if err := s.Run(ctx, sink); err != nil && ctx.Err() == nil {
		log.Fatalf("run: %v", err)
	}
	log.Println("Shutting down simulator")
}
