package motion

import (
	"math"
	"testing"

	"github.com/yeonjoon13/flight-collision-sim/internal/model"
)

func testPopulation() []model.Aircraft {
	return []model.Aircraft{
		{Callsign: "TEST01", AircraftType: "A320", Latitude: 48.2, Longitude: 14.19, AltitudeFt: 30000, SpeedKn: 250, HeadingDeg: 0},
		{Callsign: "TEST02", AircraftType: "B738", Latitude: 48.3, Longitude: 14.19, AltitudeFt: 30500, SpeedKn: 250, HeadingDeg: 180},
		{Callsign: "ABC123", AircraftType: "E190", Latitude: 60.0, Longitude: 10.0, AltitudeFt: 22000, SpeedKn: 360, HeadingDeg: 90},
	}
}

func TestAdvance_ZeroElapsedIsIdentity(t *testing.T) {
	in := testPopulation()
	out := Advance(in, 0)
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("aircraft %d changed: %+v -> %+v", i, in[i], out[i])
		}
	}
}

func TestAdvance_PreservesEverythingButPosition(t *testing.T) {
	in := testPopulation()
	out := Advance(in, 60)
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		a, b := in[i], out[i]
		if a.Callsign != b.Callsign || a.AircraftType != b.AircraftType ||
			a.AltitudeFt != b.AltitudeFt || a.SpeedKn != b.SpeedKn || a.HeadingDeg != b.HeadingDeg {
			t.Fatalf("aircraft %d: non-position field changed: %+v -> %+v", i, a, b)
		}
		if a.Latitude == b.Latitude && a.Longitude == b.Longitude {
			t.Fatalf("aircraft %d did not move", i)
		}
	}
}

func TestAdvance_DoesNotMutateInput(t *testing.T) {
	in := testPopulation()
	orig := append([]model.Aircraft(nil), in...)
	_ = Advance(in, 3600)
	for i := range in {
		if in[i] != orig[i] {
			t.Fatalf("input %d was mutated", i)
		}
	}
}

func TestStep_NorthOneHour(t *testing.T) {
	ac := model.Aircraft{Latitude: 10, Longitude: 20, SpeedKn: 60, HeadingDeg: 0}
	got := Step(ac, 3600)
	if math.Abs(got.Latitude-11) > 1e-9 {
		t.Fatalf("lat = %v, want 11", got.Latitude)
	}
	if math.Abs(got.Longitude-20) > 1e-9 {
		t.Fatalf("lon = %v, want 20", got.Longitude)
	}
}

func TestStep_EastScalesWithLatitude(t *testing.T) {
	ac := model.Aircraft{Latitude: 60, Longitude: 0, SpeedKn: 60, HeadingDeg: 90}
	got := Step(ac, 3600)
	// cos(60°) = 0.5, so 1 nm-degree of travel becomes 2° of longitude.
	if math.Abs(got.Longitude-2) > 1e-9 {
		t.Fatalf("lon = %v, want 2", got.Longitude)
	}
	if math.Abs(got.Latitude-60) > 1e-9 {
		t.Fatalf("lat = %v, want 60", got.Latitude)
	}
}

func TestStep_NegativeElapsedMovesBackwards(t *testing.T) {
	ac := model.Aircraft{Latitude: 10, Longitude: 20, SpeedKn: 60, HeadingDeg: 0}
	got := Step(ac, -3600)
	if math.Abs(got.Latitude-9) > 1e-9 {
		t.Fatalf("lat = %v, want 9", got.Latitude)
	}
}

func TestStep_NoLongitudeWrap(t *testing.T) {
	ac := model.Aircraft{Latitude: 0, Longitude: 179.9, SpeedKn: 60, HeadingDeg: 90}
	got := Step(ac, 3600)
	if got.Longitude <= 180 {
		t.Fatalf("lon = %v, expected > 180 (no wraparound)", got.Longitude)
	}
}

func TestAdvance_Empty(t *testing.T) {
	if out := Advance(nil, 10); len(out) != 0 {
		t.Fatalf("expected empty, got %d", len(out))
	}
}

// cos(±90°) is ~6e-17 in floating point, so the longitude step explodes
// rather than raising; it is left unguarded.
func TestAdvance_PolarLatitudeBlowsUpLongitude(t *testing.T) {
	for _, lat := range []float64{90, -90} {
		in := []model.Aircraft{{Callsign: "POLE01", Latitude: lat, Longitude: 0, SpeedKn: 300, HeadingDeg: 90}}
		got := Advance(in, 60)[0]
		lng := got.Longitude
		if !(math.IsNaN(lng) || math.IsInf(lng, 0) || math.Abs(lng) > 1e6) {
			t.Fatalf("lat %v: longitude = %v, expected a degenerate value", lat, lng)
		}
		if got.Callsign != "POLE01" || got.SpeedKn != 300 || got.HeadingDeg != 90 {
			t.Fatalf("lat %v: non-position fields changed: %+v", lat, got)
		}
	}
}

func TestAdvance_NaNPropagates(t *testing.T) {
	in := []model.Aircraft{
		{Callsign: "NAN001", Latitude: math.NaN(), Longitude: 14.19, SpeedKn: 250, HeadingDeg: 45},
		{Callsign: "NAN002", Latitude: 48.25, Longitude: 14.19, SpeedKn: math.NaN(), HeadingDeg: 45},
		{Callsign: "OK0001", Latitude: 48.25, Longitude: 14.19, SpeedKn: 250, HeadingDeg: 45},
	}
	out := Advance(in, 60)
	for _, ac := range out[:2] {
		if !math.IsNaN(ac.Latitude) || !math.IsNaN(ac.Longitude) {
			t.Fatalf("%s: expected NaN position, got %v,%v", ac.Callsign, ac.Latitude, ac.Longitude)
		}
	}
	if math.IsNaN(out[2].Latitude) || math.IsNaN(out[2].Longitude) {
		t.Fatalf("NaN leaked into an unrelated aircraft: %+v", out[2])
	}
}
