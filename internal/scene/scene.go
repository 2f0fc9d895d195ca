// Package scene seeds an initial aircraft population around an airport
// reference point: two fixed test aircraft followed by random traffic.
package scene

import (
	"fmt"
	"math"

	"github.com/yeonjoon13/flight-collision-sim/internal/model"
)

// FixedPrefix starts the callsign of each fixed test aircraft. Random
// callsigns are three letters and three digits, so they never share it.
const FixedPrefix = "TEST"

const (
	// Linz airport (LNZ).
	DefaultRefLat = 48.2332
	DefaultRefLon = 14.1875

	DefaultRadiusKm = 100.0

	kmPerDegree = 111.32

	minAltitudeFt = 15000
	maxAltitudeFt = 35000
	minSpeedKn    = 80
	maxSpeedKn    = 450

	maxCallsignAttempts = 1000
)

var aircraftTypes = []string{
	"A320", "A321", "A332", "A359", "B738", "B739", "B77W", "B789",
	"E190", "E195", "CRJ9", "DH8D", "AT76", "C172", "PC12",
}

// Source provides the randomness used by Generate. *rand.Rand from this
// module and math/rand's *Rand both satisfy it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

type Generator struct {
	RefLat   float64
	RefLon   float64
	RadiusKm float64
}

var Default = Generator{RefLat: DefaultRefLat, RefLon: DefaultRefLon, RadiusKm: DefaultRadiusKm}

// Generate builds a population of count aircraft around the default
// reference point.
func Generate(src Source, count int) ([]model.Aircraft, error) {
	return Default.Generate(src, count)
}

func (g Generator) Generate(src Source, count int) ([]model.Aircraft, error) {
	if count < 2 {
		return nil, fmt.Errorf("scene: count must be at least 2, got %d", count)
	}

	planes := make([]model.Aircraft, 0, count)
	planes = append(planes, g.Fixed()...)

	used := make(map[string]struct{}, count)
	for _, ac := range planes {
		used[ac.Callsign] = struct{}{}
	}

	radiusKm := g.RadiusKm
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	for len(planes) < count {
		cs, err := uniqueCallsign(src, used)
		if err != nil {
			return nil, err
		}

		dist := src.Float64() * radiusKm
		theta := src.Float64() * 2 * math.Pi
		lat := g.RefLat + dist*math.Cos(theta)/kmPerDegree
		lon := g.RefLon + dist*math.Sin(theta)/(kmPerDegree*math.Cos(g.RefLat*math.Pi/180))

		planes = append(planes, model.Aircraft{
			Callsign:     cs,
			AircraftType: aircraftTypes[src.Intn(len(aircraftTypes))],
			Latitude:     lat,
			Longitude:    lon,
			AltitudeFt:   minAltitudeFt + src.Float64()*(maxAltitudeFt-minAltitudeFt),
			SpeedKn:      minSpeedKn + src.Float64()*(maxSpeedKn-minSpeedKn),
			HeadingDeg:   src.Float64() * 360,
		})
	}
	return planes, nil
}

// Fixed returns the two deterministic test aircraft. They sit 0.05° south
// and north of the reference point (≈6 nm apart), fly towards each other and
// are 500 ft apart vertically, so they start clear and converge into an
// alert.
func (g Generator) Fixed() []model.Aircraft {
	return []model.Aircraft{
		{
			Callsign:     FixedPrefix + "01",
			AircraftType: "A320",
			Latitude:     g.RefLat - 0.05,
			Longitude:    g.RefLon,
			AltitudeFt:   30000,
			SpeedKn:      250,
			HeadingDeg:   0,
		},
		{
			Callsign:     FixedPrefix + "02",
			AircraftType: "B738",
			Latitude:     g.RefLat + 0.05,
			Longitude:    g.RefLon,
			AltitudeFt:   30500,
			SpeedKn:      250,
			HeadingDeg:   180,
		},
	}
}

func uniqueCallsign(src Source, used map[string]struct{}) (string, error) {
	for i := 0; i < maxCallsignAttempts; i++ {
		cs := randomCallsign(src)
		if _, ok := used[cs]; ok {
			continue
		}
		used[cs] = struct{}{}
		return cs, nil
	}
	return "", fmt.Errorf("scene: no unique callsign after %d attempts", maxCallsignAttempts)
}

func randomCallsign(src Source) string {
	var b [6]byte
	for i := 0; i < 3; i++ {
		b[i] = byte('A' + src.Intn(26))
	}
	for i := 3; i < 6; i++ {
		b[i] = byte('0' + src.Intn(10))
	}
	return string(b[:])
}
