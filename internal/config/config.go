package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Kafka   KafkaConfig   `yaml:"kafka"`
	Sim     SimConfig     `yaml:"sim"`
	WS      WSConfig      `yaml:"ws"`
	OpenSky OpenSkyConfig `yaml:"opensky"`
}

type KafkaConfig struct {
	Broker     string `yaml:"broker"`
	Topic      string `yaml:"topic"`
	AlertTopic string `yaml:"alert_topic"`
	Group      string `yaml:"group"`
}

type SimConfig struct {
	Count    int           `yaml:"count"`
	Tick     time.Duration `yaml:"tick"`
	Speedup  float64       `yaml:"speedup"`
	MaxTicks int64         `yaml:"max_ticks"`
	Seed     int64         `yaml:"seed"` // 0 seeds from the clock
	RefLat   float64       `yaml:"ref_lat"`
	RefLon   float64       `yaml:"ref_lon"`
	RadiusKm float64       `yaml:"radius_km"`
	HorizNm  float64       `yaml:"horiz_nm"`
	VertFt   float64       `yaml:"vert_ft"`
}

type WSConfig struct {
	Addr     string        `yaml:"addr"`
	Interval time.Duration `yaml:"interval"`
}

type OpenSkyConfig struct {
	URL      string        `yaml:"url"`
	Interval time.Duration `yaml:"interval"`
}

func Default() Config {
	return Config{
		Kafka: KafkaConfig{
			Broker:     "localhost:9092",
			Topic:      "flight_updates",
			AlertTopic: "collision_alerts",
			Group:      "collision-group",
		},
		Sim: SimConfig{
			Count:    20,
			Tick:     1 * time.Second,
			Speedup:  1,
			RefLat:   48.2332,
			RefLon:   14.1875,
			RadiusKm: 100,
			HorizNm:  5.0,
			VertFt:   1000,
		},
		WS: WSConfig{
			Addr:     ":8080",
			Interval: 1 * time.Second,
		},
		OpenSky: OpenSkyConfig{
			Interval: 2 * time.Minute,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path yields the
// defaults. Environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("KAFKA_BROKER"); v != "" {
		cfg.Kafka.Broker = v
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		cfg.Kafka.Topic = v
	}
	if v := os.Getenv("KAFKA_ALERT_TOPIC"); v != "" {
		cfg.Kafka.AlertTopic = v
	}
}

func (c Config) Validate() error {
	if c.Sim.Count < 2 {
		return fmt.Errorf("sim.count must be at least 2")
	}
	if c.Sim.Tick <= 0 {
		return fmt.Errorf("sim.tick must be positive")
	}
	if c.Sim.Speedup <= 0 {
		return fmt.Errorf("sim.speedup must be positive")
	}
	if c.Sim.HorizNm <= 0 {
		return fmt.Errorf("sim.horiz_nm must be positive")
	}
	if c.Sim.VertFt <= 0 {
		return fmt.Errorf("sim.vert_ft must be positive")
	}
	if c.Sim.RefLat <= -90 || c.Sim.RefLat >= 90 {
		return fmt.Errorf("sim.ref_lat must be strictly between -90 and 90")
	}
	if c.WS.Interval <= 0 {
		return fmt.Errorf("ws.interval must be positive")
	}
	if c.Kafka.Topic == "" || c.Kafka.AlertTopic == "" {
		return fmt.Errorf("kafka.topic and kafka.alert_topic are required")
	}
	return nil
}
