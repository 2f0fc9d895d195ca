package flights

import (
	"context"
	"sync"
	"testing"

	"github.com/yeonjoon13/flight-collision-sim/internal/model"
)

func TestStore_LastPublishedWins(t *testing.T) {
	s := NewStore()
	if _, ok := s.Latest(); ok {
		t.Fatalf("empty store reported a frame")
	}

	ctx := context.Background()
	_ = s.Publish(ctx, model.Frame{Tick: 1, Aircraft: []model.Aircraft{{Callsign: "AAA111"}}})
	_ = s.Publish(ctx, model.Frame{Tick: 2, Aircraft: []model.Aircraft{{Callsign: "BBB222"}}, Alerts: []model.Alert{{Plane1Callsign: "X", Plane2Callsign: "Y"}}})

	f, ok := s.Latest()
	if !ok || f.Tick != 2 {
		t.Fatalf("latest = %+v, %v", f, ok)
	}
	if got := s.Aircraft(); len(got) != 1 || got[0].Callsign != "BBB222" {
		t.Fatalf("aircraft = %+v", got)
	}
	if got := s.Alerts(); len(got) != 1 {
		t.Fatalf("alerts = %+v", got)
	}
}

func TestStore_ProducerRestart(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_ = s.Publish(ctx, model.Frame{Tick: 500, Aircraft: []model.Aircraft{{Callsign: "OLD001"}}})

	for tick := int64(0); tick < 100; tick++ {
		_ = s.Publish(ctx, model.Frame{Tick: tick, Aircraft: []model.Aircraft{{Callsign: "NEW001"}}})
		f, _ := s.Latest()
		if f.Tick != tick || f.Aircraft[0].Callsign != "NEW001" {
			t.Fatalf("after restart frame %d: tick=%d callsign=%s", tick, f.Tick, f.Aircraft[0].Callsign)
		}
	}
}

func TestStore_Concurrent(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Publish(context.Background(), model.Frame{Tick: int64(j)})
				s.Latest()
			}
		}()
	}
	wg.Wait()
	if _, ok := s.Latest(); !ok {
		t.Fatalf("expected a frame after concurrent publishes")
	}
}
