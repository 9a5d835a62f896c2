package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orbitviz.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	if err := validate(Default()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := writeTempConfig(t, `
[orbit]
eccentricity = 0.3
sample_count = 50

[display]
satellite_size = 4
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Orbit.Eccentricity != 0.3 || cfg.Orbit.SampleCount != 50 {
		t.Errorf("orbit section not applied: %+v", cfg.Orbit)
	}
	if cfg.Display.SatelliteSize != 4 {
		t.Errorf("display section not applied: %+v", cfg.Display)
	}
	// Untouched fields keep their defaults.
	if cfg.Orbit.SemiMajorAxis != 7078 {
		t.Errorf("default semi-major axis lost: %f", cfg.Orbit.SemiMajorAxis)
	}
	if cfg.Server.Bind != "0.0.0.0:8080" {
		t.Errorf("default bind lost: %s", cfg.Server.Bind)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		toml string
	}{
		{"eccentricity too large", "[orbit]\neccentricity = 1.5\n"},
		{"sample count too small", "[orbit]\nsample_count = 1\n"},
		{"zero frame interval", "[display]\nframe_interval_ms = 0\n"},
		{"negative demo interval", "[demo]\ninterval_seconds = -1\n"},
	}
	for _, tc := range cases {
		path := writeTempConfig(t, tc.toml)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
