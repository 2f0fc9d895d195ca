// Package motion moves aircraft along their heading using a local flat-earth
// approximation: 60 nm per degree of latitude, longitude degrees scaled by
// the cosine of the current latitude.
//
// The approximation is only good for short hops away from the poles. At
// latitude ±90° the longitude step divides by zero and yields Inf/NaN; that
// is left as is. Longitude is not wrapped into [-180,180].
package motion

import (
	"math"

	"github.com/yeonjoon13/flight-collision-sim/internal/model"
)

const nmPerDegree = 60.0

// Advance returns a new population with each aircraft moved by
// elapsedSeconds of flight. Order and length match the input; only
// latitude and longitude change.
func Advance(population []model.Aircraft, elapsedSeconds float64) []model.Aircraft {
	out := make([]model.Aircraft, len(population))
	for i, ac := range population {
		out[i] = Step(ac, elapsedSeconds)
	}
	return out
}

// Step moves a single aircraft.
func Step(ac model.Aircraft, elapsedSeconds float64) model.Aircraft {
	if elapsedSeconds == 0 {
		return ac
	}
	distNm := ac.SpeedKn * elapsedSeconds / 3600
	hdg := degreesToRadians(ac.HeadingDeg)

	dLat := (distNm / nmPerDegree) * math.Cos(hdg)
	dLng := (distNm / nmPerDegree) * math.Sin(hdg) / math.Cos(degreesToRadians(ac.Latitude))

	ac.Latitude += dLat
	ac.Longitude += dLng
	return ac
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
