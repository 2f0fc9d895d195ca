package collision

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/yeonjoon13/flight-collision-sim/internal/model"
)

const readRetryDelay = 1 * time.Second

// FrameReader is satisfied by *kafka.Reader.
type FrameReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// AlertPublisher receives one frame per scanned snapshot, carrying only alerts.
type AlertPublisher interface {
	PublishAlerts(ctx context.Context, f model.Frame) error
}

// RunDetector consumes population frames, scans each one for conflicts and
// forwards the alerts. It returns when ctx is done.
func RunDetector(ctx context.Context, reader FrameReader, out AlertPublisher, th Thresholds) error {
	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("read error: %v", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(readRetryDelay):
			}
			continue
		}
		var f model.Frame
		if err := model.UnmarshalFrame(m.Value, &f); err != nil {
			log.Printf("unmarshal error: %v", err)
			continue
		}

		alerts := th.Scan(f.Aircraft)
		for _, a := range alerts {
			log.Printf("⚠️  Potential collision: %s and %s - Distance: %.1f NM, Vertical: %.0f ft",
				a.Plane1Callsign, a.Plane2Callsign, a.DistanceNm, a.AltitudeDiffFt)
		}
		if out == nil {
			continue
		}
		if err := out.PublishAlerts(ctx, model.Frame{Tick: f.Tick, Timestamp: f.Timestamp, Alerts: alerts}); err != nil {
			log.Printf("publish error: %v", err)
		}
	}
}
