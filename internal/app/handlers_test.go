package app

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/large-farva/orbitviz/internal/animator"
	"github.com/large-farva/orbitviz/internal/config"
)

// newTestApp builds an App with the default orbit applied, without starting
// the HTTP server or the animator loop.
func newTestApp(t *testing.T, configPath string) *App {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	cfg := config.Default()

	a := New(Options{Logger: logger, Cfg: cfg, ConfigPath: configPath})
	a.anim = animator.New(a.wsHub, logger, 50*time.Millisecond)
	if err := a.applyOrbitConfig(cfg.Orbit); err != nil {
		t.Fatalf("startup orbit rejected: %v", err)
	}
	return a
}

func TestTrajectoryCountOverride(t *testing.T) {
	a := newTestApp(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/trajectory?count=250", nil)
	rec := httptest.NewRecorder()
	a.handleTrajectory(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("count=250 returned HTTP %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Samples []json.RawMessage `json:"samples"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Samples) != 250 {
		t.Errorf("got %d samples, want 250", len(resp.Samples))
	}
}

func TestTrajectoryCountBounds(t *testing.T) {
	a := newTestApp(t, "")

	for _, countParam := range []string{"1000000000", "10001", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/trajectory?count="+countParam, nil)
		rec := httptest.NewRecorder()
		a.handleTrajectory(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("count=%s returned HTTP %d, want 400", countParam, rec.Code)
		}
	}
}

func TestHealthDetailedWithoutConfigFile(t *testing.T) {
	// Running on defaults means no config path at all; that must not count
	// against health.
	a := newTestApp(t, "")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	a.handleHealthz(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("default-config daemon unhealthy: HTTP %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Healthy bool `json:"healthy"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Healthy {
		t.Error("healthy=false with a loaded trajectory and no config path")
	}
}

func TestHealthDetailedMissingConfigFile(t *testing.T) {
	// A configured path that has gone missing is a real failure.
	a := newTestApp(t, filepath.Join(t.TempDir(), "gone.toml"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	a.handleHealthz(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("missing config file: HTTP %d, want 503", rec.Code)
	}
}
