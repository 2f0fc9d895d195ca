package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/yeonjoon13/flight-collision-sim/internal/collision"
	"github.com/yeonjoon13/flight-collision-sim/internal/config"
	"github.com/yeonjoon13/flight-collision-sim/internal/flights"
	"github.com/yeonjoon13/flight-collision-sim/internal/kafka"
	"github.com/yeonjoon13/flight-collision-sim/internal/rand"
	"github.com/yeonjoon13/flight-collision-sim/internal/scene"
	"github.com/yeonjoon13/flight-collision-sim/internal/sim"
	"github.com/yeonjoon13/flight-collision-sim/internal/stream"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file")
	local := flag.Bool("local", false, "run the simulator in-process instead of reading Kafka")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	th := collision.Thresholds{HorizNm: cfg.Sim.HorizNm, VertFt: cfg.Sim.VertFt}
	store := flights.NewStore()
	if *local {
		go runLocal(ctx, cfg, th, store)
	} else {
		go consumeFrames(ctx, cfg, th, store)
	}

	hub := stream.NewHub()
	go hub.Run(ctx, store, cfg.WS.Interval)

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: cfg.WS.Addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("WebSocket server starting on %s", cfg.WS.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("Shutting down")
}

func runLocal(ctx context.Context, cfg config.Config, th collision.Thresholds, store *flights.Store) {
	rng := rand.New()
	if cfg.Sim.Seed != 0 {
		rng = rand.NewSeeded(cfg.Sim.Seed)
	}
	gen := scene.Generator{RefLat: cfg.Sim.RefLat, RefLon: cfg.Sim.RefLon, RadiusKm: cfg.Sim.RadiusKm}
	planes, err := gen.Generate(rng, cfg.Sim.Count)
	if err != nil {
		log.Fatalf("generate scene: %v", err)
	}
	s, err := sim.New(sim.Config{Tick: cfg.Sim.Tick, Speedup: cfg.Sim.Speedup, MaxTicks: cfg.Sim.MaxTicks}, planes, th)
	if err != nil {
		log.Fatalf("sim: %v", err)
	}
	log.Printf("Running local simulator with %d aircraft", len(planes))
	if err := s.Run(ctx, store); err != nil && ctx.Err() == nil {
		log.Printf("simulator stopped: %v", err)
	}
}

// consumeFrames fills the store from Kafka. Frames from the ingestor carry no
// alerts, so they are scanned here.
func consumeFrames(ctx context.Context, cfg config.Config, th collision.Thresholds, store *flights.Store) {
	r := kafka.NewReader(cfg.Kafka.Broker, cfg.Kafka.Topic, "")
	defer r.Close()

	log.Printf("Reading frames from %s, topic %s", cfg.Kafka.Broker, cfg.Kafka.Topic)
	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("read error: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(1 * time.Second):
			}
			continue
		}
		f, err := kafka.DecodeFrame(m)
		if err != nil {
			log.Printf("Unmarshal error: %v", err)
			continue
		}
		if f.Alerts == nil {
			f.Alerts = th.Scan(f.Aircraft)
		}
		_ = store.Publish(ctx, f)
	}
}
