// Package config handles loading, defaulting, and validation of the orbitviz
// TOML configuration file. Every section maps to a typed struct so the rest
// of the codebase gets strong typing without manual key lookups.
package config

import (
	"errors"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level configuration, mirroring the TOML sections.
type Config struct {
	Server  ServerConfig  `toml:"server"  json:"server"`
	Logging LoggingConfig `toml:"logging" json:"logging"`
	Orbit   OrbitConfig   `toml:"orbit"   json:"orbit"`
	Display DisplayConfig `toml:"display" json:"display"`
	TLE     TLEConfig     `toml:"tle"     json:"tle"`
	Demo    DemoConfig    `toml:"demo"    json:"demo"`
}

type ServerConfig struct {
	Bind string `toml:"bind" json:"bind"`
}

type LoggingConfig struct {
	Level string `toml:"level" json:"level"`
}

// OrbitConfig sets the orbit shown at startup, before any client changes it.
type OrbitConfig struct {
	Body          string  `toml:"body"            json:"body"`
	SemiMajorAxis float64 `toml:"semi_major_axis" json:"semi_major_axis"`
	Eccentricity  float64 `toml:"eccentricity"    json:"eccentricity"`
	Inclination   float64 `toml:"inclination"     json:"inclination"`
	RAAN          float64 `toml:"raan"            json:"raan"`
	ArgPerigee    float64 `toml:"arg_perigee"     json:"arg_perigee"`
	TrueAnomaly   float64 `toml:"true_anomaly"    json:"true_anomaly"`
	SampleCount   int     `toml:"sample_count"    json:"sample_count"`
}

type DisplayConfig struct {
	BodySize        int `toml:"body_size"         json:"body_size"`
	SatelliteSize   int `toml:"satellite_size"    json:"satellite_size"`
	FrameIntervalMS int `toml:"frame_interval_ms" json:"frame_interval_ms"`
}

type TLEConfig struct {
	URL          string `toml:"url"           json:"url"`
	CacheDir     string `toml:"cache_dir"     json:"cache_dir"`
	RefreshHours int    `toml:"refresh_hours" json:"refresh_hours"`
}

type DemoConfig struct {
	Enabled         bool `toml:"enabled"          json:"enabled"`
	IntervalSeconds int  `toml:"interval_seconds" json:"interval_seconds"`
}

// Default returns a Config populated with sane defaults. Values here are
// used whenever the TOML file omits a field. The orbit defaults reproduce the
// 700 km perigee-altitude ellipse the visualization opens with.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind: "0.0.0.0:8080",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Orbit: OrbitConfig{
			Body:          "Earth",
			SemiMajorAxis: 7078,
			Eccentricity:  0.1,
			Inclination:   45,
			RAAN:          0,
			ArgPerigee:    0,
			TrueAnomaly:   0,
			SampleCount:   100,
		},
		Display: DisplayConfig{
			BodySize:        15,
			SatelliteSize:   6,
			FrameIntervalMS: 50,
		},
		TLE: TLEConfig{
			URL:          "https://celestrak.org/NORAD/elements/gp.php?GROUP=stations&FORMAT=tle",
			CacheDir:     "/var/lib/orbitviz",
			RefreshHours: 24,
		},
		Demo: DemoConfig{
			Enabled:         false,
			IntervalSeconds: 30,
		},
	}
}

// Load reads the TOML file at path, layers it on top of the defaults, and
// validates the result. An error is returned if the file can't be read,
// parsed, or if any constraint is violated.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}

	if err := validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Orbit.Body == "" {
		return errors.New("orbit.body must not be empty")
	}
	if cfg.Orbit.SemiMajorAxis <= 0 {
		return errors.New("orbit.semi_major_axis must be > 0")
	}
	if cfg.Orbit.Eccentricity < 0 || cfg.Orbit.Eccentricity >= 1 {
		return errors.New("orbit.eccentricity must be in [0, 1)")
	}
	if cfg.Orbit.SampleCount < 2 {
		return errors.New("orbit.sample_count must be >= 2")
	}
	if cfg.Display.BodySize <= 0 || cfg.Display.SatelliteSize <= 0 {
		return errors.New("display marker sizes must be > 0")
	}
	if cfg.Display.FrameIntervalMS <= 0 {
		return errors.New("display.frame_interval_ms must be > 0")
	}
	if cfg.TLE.CacheDir == "" {
		return errors.New("tle.cache_dir must not be empty")
	}
	if cfg.TLE.RefreshHours < 1 {
		return errors.New("tle.refresh_hours must be >= 1")
	}
	if cfg.Demo.IntervalSeconds < 0 {
		return errors.New("demo.interval_seconds must be >= 0")
	}
	return nil
}
