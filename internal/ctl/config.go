package ctl

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Config fetches and displays the daemon's running configuration.
func Config(baseURL string, jsonOutput bool) error {
	// Decode into a generic map to preserve all fields for both display modes.
	var raw json.RawMessage
	if err := getJSON(baseURL, "/api/config", &raw); err != nil {
		return err
	}

	if jsonOutput {
		var v any
		_ = json.Unmarshal(raw, &v)
		return printJSON(v)
	}

	// Decode into ordered sections for human-readable output.
	var cfg struct {
		Server struct {
			Bind string `json:"bind"`
		} `json:"server"`
		Logging struct {
			Level string `json:"level"`
		} `json:"logging"`
		Orbit struct {
			Body          string  `json:"body"`
			SemiMajorAxis float64 `json:"semi_major_axis"`
			Eccentricity  float64 `json:"eccentricity"`
			Inclination   float64 `json:"inclination"`
			RAAN          float64 `json:"raan"`
			ArgPerigee    float64 `json:"arg_perigee"`
			TrueAnomaly   float64 `json:"true_anomaly"`
			SampleCount   int     `json:"sample_count"`
		} `json:"orbit"`
		Display struct {
			BodySize        int `json:"body_size"`
			SatelliteSize   int `json:"satellite_size"`
			FrameIntervalMS int `json:"frame_interval_ms"`
		} `json:"display"`
		TLE struct {
			URL          string `json:"url"`
			CacheDir     string `json:"cache_dir"`
			RefreshHours int    `json:"refresh_hours"`
		} `json:"tle"`
		Demo struct {
			Enabled         bool `json:"enabled"`
			IntervalSeconds int  `json:"interval_seconds"`
		} `json:"demo"`
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(header("  DAEMON CONFIGURATION"))
	fmt.Println(colorize(dim, "  "+strings.Repeat("─", 50)))

	section := func(name string) {
		fmt.Printf("\n  %s\n", colorize(bold, "["+name+"]"))
	}
	field := func(key string, val any) {
		fmt.Printf("    %-20s %v\n", colorize(dim, key+":"), val)
	}

	section("server")
	field("bind", cfg.Server.Bind)

	section("logging")
	field("level", cfg.Logging.Level)

	section("orbit")
	field("body", cfg.Orbit.Body)
	field("semi_major_axis", cfg.Orbit.SemiMajorAxis)
	field("eccentricity", cfg.Orbit.Eccentricity)
	field("inclination", cfg.Orbit.Inclination)
	field("raan", cfg.Orbit.RAAN)
	field("arg_perigee", cfg.Orbit.ArgPerigee)
	field("true_anomaly", cfg.Orbit.TrueAnomaly)
	field("sample_count", cfg.Orbit.SampleCount)

	section("display")
	field("body_size", cfg.Display.BodySize)
	field("satellite_size", cfg.Display.SatelliteSize)
	field("frame_interval_ms", cfg.Display.FrameIntervalMS)

	section("tle")
	field("url", cfg.TLE.URL)
	field("cache_dir", cfg.TLE.CacheDir)
	field("refresh_hours", cfg.TLE.RefreshHours)

	section("demo")
	field("enabled", cfg.Demo.Enabled)
	field("interval_seconds", cfg.Demo.IntervalSeconds)

	fmt.Println()

	return nil
}
