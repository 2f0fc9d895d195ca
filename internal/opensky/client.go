package opensky

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/yeonjoon13/flight-collision-sim/internal/model"
)

// Bounding box around Linz airport, matching the simulator's default scene.
const DefaultURL = "https://opensky-network.org/api/states/all?lamin=47.3&lamax=49.2&lomin=12.8&lomax=15.6"

const (
	// The states endpoint carries no aircraft type.
	unknownType = "UNKN"

	metersToFeet = 3.28084
	mpsToKnots   = 1.943844
)

// OpenSkyResponse matches the API payload
type OpenSkyResponse struct {
	Time   int64           `json:"time"`
	States [][]interface{} `json:"states"`
}

// FetchAircraft polls OpenSky and returns a population snapshot. Rows without
// a position are skipped, and later rows repeating a callsign are dropped.
func FetchAircraft(ctx context.Context, url string) (model.Frame, error) {
	if url == "" {
		url = DefaultURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Frame{}, err
	}
	client := http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return model.Frame{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Frame{}, fmt.Errorf("opensky: unexpected status %s", resp.Status)
	}

	var osResp OpenSkyResponse
	if err := json.NewDecoder(resp.Body).Decode(&osResp); err != nil {
		return model.Frame{}, fmt.Errorf("opensky: decode: %w", err)
	}

	return model.Frame{Timestamp: osResp.Time, Aircraft: toAircraft(osResp.States)}, nil
}

func toAircraft(states [][]interface{}) []model.Aircraft {
	getFloat := func(v interface{}) (float64, bool) {
		f, ok := v.(float64)
		return f, ok
	}
	getString := func(v interface{}) string {
		s, _ := v.(string)
		return strings.TrimSpace(s)
	}

	seen := make(map[string]struct{}, len(states))
	out := make([]model.Aircraft, 0, len(states))
	for _, s := range states {
		if len(s) < 12 {
			continue
		}
		lon, okLon := getFloat(s[5])
		lat, okLat := getFloat(s[6])
		if !okLon || !okLat {
			continue
		}

		callsign := getString(s[1])
		if callsign == "" {
			callsign = strings.ToUpper(getString(s[0]))
		}
		if _, dup := seen[callsign]; dup || callsign == "" {
			continue
		}
		seen[callsign] = struct{}{}

		alt, _ := getFloat(s[7])
		vel, _ := getFloat(s[9])
		hdg, _ := getFloat(s[10])
		out = append(out, model.Aircraft{
			Callsign:     callsign,
			AircraftType: unknownType,
			Latitude:     lat,
			Longitude:    lon,
			AltitudeFt:   alt * metersToFeet,
			SpeedKn:      vel * mpsToKnots,
			HeadingDeg:   hdg,
		})
	}
	return out
}
