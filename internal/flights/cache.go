package flights

import (
	"context"
	"sync"

	"github.com/yeonjoon13/flight-collision-sim/internal/model"
)

// Store keeps the most recent frame. Frames are replaced wholesale, never
// patched.
type Store struct {
	mu     sync.RWMutex
	latest model.Frame
	ok     bool
}

func NewStore() *Store {
	return &Store{}
}

// Publish replaces the stored frame. The last frame delivered wins, whatever
// its tick: producers restart their counters.
func (s *Store) Publish(_ context.Context, f model.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = f
	s.ok = true
	return nil
}

// Latest returns the newest frame and whether one has been stored yet.
func (s *Store) Latest() (model.Frame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.ok
}

func (s *Store) Aircraft() []model.Aircraft {
	f, _ := s.Latest()
	return f.Aircraft
}

func (s *Store) Alerts() []model.Alert {
	f, _ := s.Latest()
	return f.Alerts
}
