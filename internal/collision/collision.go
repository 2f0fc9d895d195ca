package collision

import (
	"math"

	"github.com/yeonjoon13/flight-collision-sim/internal/model"
)

// Proximity thresholds
const (
	HorizThreshold = 5.0    // nautical miles, inclusive
	VertThreshold  = 1000.0 // feet, exclusive

	earthRadiusNm = 3440.065
)

// Thresholds configures when a pair of aircraft is reported.
type Thresholds struct {
	HorizNm float64
	VertFt  float64
}

var DefaultThresholds = Thresholds{HorizNm: HorizThreshold, VertFt: VertThreshold}

// DistanceNm returns the great-circle distance between two points using the
// haversine formula.
func DistanceNm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusNm * c
}

// CheckPair reports an alert when a and b are within 5 nm and less than
// 1000 ft apart vertically.
func CheckPair(a, b model.Aircraft) (model.Alert, bool) {
	return DefaultThresholds.CheckPair(a, b)
}

// Scan checks every unordered pair once, in input order.
func Scan(population []model.Aircraft) []model.Alert {
	return DefaultThresholds.Scan(population)
}

func (t Thresholds) CheckPair(a, b model.Aircraft) (model.Alert, bool) {
	horiz := DistanceNm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
	vert := math.Abs(a.AltitudeFt - b.AltitudeFt)
	if horiz <= t.HorizNm && vert < t.VertFt {
		return model.Alert{
			Plane1Callsign: a.Callsign,
			Plane2Callsign: b.Callsign,
			DistanceNm:     horiz,
			AltitudeDiffFt: vert,
		}, true
	}
	return model.Alert{}, false
}

// Scan is O(n²); fine for populations in the tens to low hundreds.
func (t Thresholds) Scan(population []model.Aircraft) []model.Alert {
	alerts := []model.Alert{}
	for i := 0; i < len(population); i++ {
		for j := i + 1; j < len(population); j++ {
			if alert, ok := t.CheckPair(population[i], population[j]); ok {
				alerts = append(alerts, alert)
			}
		}
	}
	return alerts
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
