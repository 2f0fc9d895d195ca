package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Aircraft is one simulated aircraft at a single instant. Values are never
// mutated in place; each tick produces a new slice.
type Aircraft struct {
	Callsign     string  `json:"callsign"`
	AircraftType string  `json:"aircraftType"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	AltitudeFt   float64 `json:"altitudeFt"`
	SpeedKn      float64 `json:"speedKn"`
	HeadingDeg   float64 `json:"headingDeg"`
}

// Alert represents a potential collision between two aircraft
type Alert struct {
	Plane1Callsign string  `json:"plane1Callsign"`
	Plane2Callsign string  `json:"plane2Callsign"`
	DistanceNm     float64 `json:"distanceNm"`
	AltitudeDiffFt float64 `json:"altitudeDiffFt"`
}

// Frame is a population snapshot as it travels between processes.
type Frame struct {
	Tick      int64      `json:"tick"`
	Timestamp int64      `json:"timestamp"`
	Aircraft  []Aircraft `json:"aircraft"`
	Alerts    []Alert    `json:"alerts,omitempty"`
}

// UnmarshalFrame parses a JSON frame
func UnmarshalFrame(data []byte, f *Frame) error {
	if err := json.Unmarshal(data, f); err != nil {
		return err
	}

	// If timestamp is missing, set it to current time
	if f.Timestamp == 0 {
		f.Timestamp = time.Now().Unix()
	}

	for i := range f.Aircraft {
		f.Aircraft[i].Callsign = cleanCallsign(f.Aircraft[i].Callsign)
	}
	for i := range f.Alerts {
		f.Alerts[i].Plane1Callsign = cleanCallsign(f.Alerts[i].Plane1Callsign)
		f.Alerts[i].Plane2Callsign = cleanCallsign(f.Alerts[i].Plane2Callsign)
	}
	return nil
}

// Callsigns returns the callsigns of the population in order.
func Callsigns(population []Aircraft) []string {
	out := make([]string, len(population))
	for i, ac := range population {
		out[i] = ac.Callsign
	}
	return out
}

// Unique reports whether no callsign appears twice in the population.
func Unique(population []Aircraft) bool {
	seen := make(map[string]struct{}, len(population))
	for _, ac := range population {
		if _, ok := seen[ac.Callsign]; ok {
			return false
		}
		seen[ac.Callsign] = struct{}{}
	}
	return true
}

// Feeds such as OpenSky pad callsigns with spaces and the odd NUL byte.
func cleanCallsign(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
}
