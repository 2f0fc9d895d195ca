// Package sim drives the tick loop: propagate the population, scan it for
// conflicts, and hand each snapshot to a Sink.
package sim

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/yeonjoon13/flight-collision-sim/internal/collision"
	"github.com/yeonjoon13/flight-collision-sim/internal/model"
	"github.com/yeonjoon13/flight-collision-sim/internal/motion"
)

// Sink receives every frame the simulator produces.
type Sink interface {
	Publish(ctx context.Context, f model.Frame) error
}

type Config struct {
	Tick     time.Duration // wall-clock time between frames
	Speedup  float64       // simulated seconds per wall-clock second
	MaxTicks int64         // 0 runs until ctx is done
}

// Sim holds the current snapshot. It is owned by the goroutine calling Run.
type Sim struct {
	cfg      Config
	th       collision.Thresholds
	aircraft []model.Aircraft
	tick     int64
	now      func() time.Time
}

func New(cfg Config, initial []model.Aircraft, th collision.Thresholds) (*Sim, error) {
	if cfg.Tick <= 0 {
		return nil, fmt.Errorf("sim: tick must be positive, got %v", cfg.Tick)
	}
	if cfg.Speedup <= 0 {
		cfg.Speedup = 1
	}
	if !model.Unique(initial) {
		return nil, fmt.Errorf("sim: initial population has duplicate callsigns")
	}
	return &Sim{cfg: cfg, th: th, aircraft: initial, now: time.Now}, nil
}

// Step advances the population by elapsedSeconds and returns the new frame.
func (s *Sim) Step(elapsedSeconds float64) model.Frame {
	s.aircraft = motion.Advance(s.aircraft, elapsedSeconds)
	s.tick++
	return s.frame()
}

func (s *Sim) frame() model.Frame {
	return model.Frame{
		Tick:      s.tick,
		Timestamp: s.now().Unix(),
		Aircraft:  s.aircraft,
		Alerts:    s.th.Scan(s.aircraft),
	}
}

// Run publishes the initial snapshot, then one frame per tick until ctx is
// done or MaxTicks is reached. Sink errors are logged and the loop goes on.
func (s *Sim) Run(ctx context.Context, sink Sink) error {
	s.publish(ctx, sink, s.frame())

	ticker := time.NewTicker(s.cfg.Tick)
	defer ticker.Stop()

	dt := s.cfg.Tick.Seconds() * s.cfg.Speedup
	for s.cfg.MaxTicks == 0 || s.tick < s.cfg.MaxTicks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.publish(ctx, sink, s.Step(dt))
		}
	}
	return nil
}

func (s *Sim) publish(ctx context.Context, sink Sink, f model.Frame) {
	for _, a := range f.Alerts {
		log.Printf("tick %d: %s and %s - Distance: %.1f NM, Vertical: %.0f ft",
			f.Tick, a.Plane1Callsign, a.Plane2Callsign, a.DistanceNm, a.AltitudeDiffFt)
	}
	if err := sink.Publish(ctx, f); err != nil {
		log.Printf("publish error: %v", err)
	}
}
