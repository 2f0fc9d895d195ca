package opensky

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yeonjoon13/flight-collision-sim/internal/model"
)

const statesPayload = `{"time":1700000000,"states":[
 ["440123","AUA123  ","Austria",1700000000,1700000000,14.19,48.25,9144.0,false,128.6,90.0,0.0,null,9200,"1000",false,0],
 ["440124","AUA123  ","Austria",1700000000,1700000000,14.20,48.26,9144.0,false,128.6,90.0,0.0,null,9200,"1000",false,0],
 ["3c6543","","Germany",1700000000,1700000000,null,null,null,true,0,null,null,null,null,null,false,0],
 ["3c6544","","Germany",1700000000,1700000000,13.5,47.9,3000.0,false,100.0,270.0,0.0,null,null,null,false,0]
]}`

func TestFetchAircraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(statesPayload))
	}))
	defer srv.Close()

	f, err := FetchAircraft(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchAircraft: %v", err)
	}
	if f.Timestamp != 1700000000 {
		t.Fatalf("timestamp = %d", f.Timestamp)
	}
	if len(f.Aircraft) != 2 {
		t.Fatalf("got %d aircraft, want 2: %+v", len(f.Aircraft), f.Aircraft)
	}
	if !model.Unique(f.Aircraft) {
		t.Fatalf("duplicate callsigns: %v", model.Callsigns(f.Aircraft))
	}

	a := f.Aircraft[0]
	if a.Callsign != "AUA123" || a.Latitude != 48.25 || a.Longitude != 14.19 {
		t.Fatalf("unexpected first aircraft: %+v", a)
	}
	if math.Abs(a.AltitudeFt-30000) > 1 {
		t.Fatalf("altitude = %v ft, want ≈30000", a.AltitudeFt)
	}
	if math.Abs(a.SpeedKn-250) > 0.5 {
		t.Fatalf("speed = %v kn, want ≈250", a.SpeedKn)
	}
	if f.Aircraft[1].Callsign != "3C6544" {
		t.Fatalf("expected icao24 fallback callsign, got %q", f.Aircraft[1].Callsign)
	}
}

func TestFetchAircraft_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := FetchAircraft(context.Background(), srv.URL); err == nil {
		t.Fatalf("expected error")
	}
}
