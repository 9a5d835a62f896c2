package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/akhenakh/sgp4"

	"github.com/large-farva/orbitviz/internal/animator"
	"github.com/large-farva/orbitviz/internal/bodies"
	"github.com/large-farva/orbitviz/internal/config"
	"github.com/large-farva/orbitviz/internal/orbit"
	"github.com/large-farva/orbitviz/internal/scene"
	"github.com/large-farva/orbitviz/internal/tle"
)

// ---------------------------------------------------------------------------
// Core handlers
// ---------------------------------------------------------------------------

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	// If the client asks for JSON, return component-level health checks.
	if r.Header.Get("Accept") == "application/json" {
		a.handleHealthDetailed(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (a *App) handleStatus(w http.ResponseWriter, _ *http.Request) {
	a.orbitMu.RLock()
	body := a.body
	el := a.elements
	count := a.sampleCount
	traj := a.trajectory
	display := a.display
	a.orbitMu.RUnlock()

	resp := map[string]any{
		"name":           "orbitviz",
		"state":          a.state.Load().(string),
		"uptime_seconds": int64(time.Since(a.startedAt).Seconds()),
		"body":           body.Name,
		"elements":       el,
		"sample_count":   count,
		"display":        display,
		"demo_enabled":   a.getConfig().Demo.Enabled,
	}
	if traj != nil {
		resp["period_s"] = traj.Period
		resp["perigee_km"] = el.Perigee()
		resp["apogee_km"] = el.Apogee()
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (a *App) handleVersion(w http.ResponseWriter, _ *http.Request) {
	resp := map[string]any{
		"version":    Version,
		"go_version": GoVersion,
		"built_at":   BuiltAt,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (a *App) handleConfig(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a.getConfig())
}

func (a *App) handleBodies(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"bodies": bodies.Catalog})
}

// ---------------------------------------------------------------------------
// Orbit state
// ---------------------------------------------------------------------------

// maxTrajectoryCount bounds client-requested resampling via ?count=.
const maxTrajectoryCount = 10000

// elementsRequest is the POST /api/elements body. Omitted fields keep their
// current values, so a client can nudge one slider without resending all six
// elements.
type elementsRequest struct {
	Body          *string  `json:"body"`
	SemiMajorAxis *float64 `json:"semi_major_axis_km"`
	Eccentricity  *float64 `json:"eccentricity"`
	Inclination   *float64 `json:"inclination_deg"`
	RAAN          *float64 `json:"raan_deg"`
	ArgPerigee    *float64 `json:"arg_perigee_deg"`
	TrueAnomaly   *float64 `json:"true_anomaly_deg"`
	SampleCount   *int     `json:"sample_count"`
}

func (a *App) handleElements(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.orbitMu.RLock()
		resp := map[string]any{
			"body":         a.body.Name,
			"elements":     a.elements,
			"sample_count": a.sampleCount,
		}
		a.orbitMu.RUnlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)

	case http.MethodPost:
		var req elementsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		a.orbitMu.RLock()
		bodyName := a.body.Name
		el := a.elements
		count := a.sampleCount
		a.orbitMu.RUnlock()

		if req.Body != nil {
			bodyName = *req.Body
		}
		if req.SemiMajorAxis != nil {
			el.SemiMajorAxis = *req.SemiMajorAxis
		}
		if req.Eccentricity != nil {
			el.Eccentricity = *req.Eccentricity
		}
		if req.Inclination != nil {
			el.Inclination = *req.Inclination
		}
		if req.RAAN != nil {
			el.RAAN = *req.RAAN
		}
		if req.ArgPerigee != nil {
			el.ArgPerigee = *req.ArgPerigee
		}
		if req.TrueAnomaly != nil {
			el.TrueAnomaly = *req.TrueAnomaly
		}
		if req.SampleCount != nil {
			count = *req.SampleCount
		}

		if err := a.applyElements(bodyName, el, count); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, orbit.ErrInvalidElements) {
				status = http.StatusBadRequest
			}
			jsonError(w, err.Error(), status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":       true,
			"body":     bodyName,
			"elements": el,
		})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *App) handleTrajectory(w http.ResponseWriter, r *http.Request) {
	a.orbitMu.RLock()
	body := a.body
	el := a.elements
	count := a.sampleCount
	a.orbitMu.RUnlock()

	// ?count= resamples on the fly without touching the stored state; the
	// sampler is pure so this is just a recomputation. The upper bound keeps
	// a single request from allocating an absurd sample slice.
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		n, err := strconv.Atoi(countStr)
		if err != nil {
			jsonError(w, "bad count: "+err.Error(), http.StatusBadRequest)
			return
		}
		if n > maxTrajectoryCount {
			jsonError(w, fmt.Sprintf("count %d exceeds maximum %d", n, maxTrajectoryCount),
				http.StatusBadRequest)
			return
		}
		count = n
	}

	traj, err := orbit.SampleTrajectory(body, el, count)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, orbit.ErrInvalidElements) {
			status = http.StatusBadRequest
		}
		jsonError(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"body":       body.Name,
		"elements":   el,
		"period_s":   traj.Period,
		"perigee_km": el.Perigee(),
		"apogee_km":  el.Apogee(),
		"samples":    traj.Samples,
	})
}

func (a *App) handleFigure(w http.ResponseWriter, _ *http.Request) {
	a.orbitMu.RLock()
	body := a.body
	el := a.elements
	traj := a.trajectory
	display := a.display
	a.orbitMu.RUnlock()

	if traj == nil {
		jsonError(w, "no trajectory loaded", http.StatusConflict)
		return
	}

	fig := scene.Build(body, el, traj, display)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(fig)
}

// displayRequest is the POST /api/display body. Like elements, omitted
// fields keep their current values.
type displayRequest struct {
	BodySize      *int `json:"body_size"`
	SatelliteSize *int `json:"satellite_size"`
}

func (a *App) handleDisplay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req displayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.BodySize != nil && *req.BodySize <= 0 {
		jsonError(w, "body_size must be > 0", http.StatusBadRequest)
		return
	}
	if req.SatelliteSize != nil && *req.SatelliteSize <= 0 {
		jsonError(w, "satellite_size must be > 0", http.StatusBadRequest)
		return
	}

	a.orbitMu.Lock()
	if req.BodySize != nil {
		a.display.BodySize = *req.BodySize
	}
	if req.SatelliteSize != nil {
		a.display.SatelliteSize = *req.SatelliteSize
	}
	display := a.display
	a.orbitMu.Unlock()

	a.emitLog("orbitvizd", "info",
		fmt.Sprintf("display sizes: body %d, satellite %d", display.BodySize, display.SatelliteSize))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "display": display})
}

// ---------------------------------------------------------------------------
// Animation control
// ---------------------------------------------------------------------------

// handleAnimation returns a handler that forwards one animation command
// (play, pause, seek, rate) to the animator and relays its reply.
func (a *App) handleAnimation(cmdType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Seek and rate carry a JSON body; play and pause do not.
		payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<12))
		if err != nil {
			jsonError(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		result := a.sendAnimatorCommand(cmdType, payload)
		writeCommandResult(w, result)
	}
}

func (a *App) handleTLE(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name string `json:"name"`
		Raw  string `json:"raw"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	cfg := a.getConfig()
	var (
		parsed *sgp4.TLE
		err    error
	)
	switch {
	case req.Raw != "":
		parsed, err = tle.Parse(req.Raw)
		if err != nil {
			jsonError(w, "TLE parse failed: "+err.Error(), http.StatusBadRequest)
			return
		}
	case req.Name != "":
		store := tle.NewStore(cfg.TLE.URL, cfg.TLE.CacheDir, cfg.TLE.RefreshHours)
		parsed, err = store.ByName(req.Name)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadGateway)
			return
		}
	default:
		jsonError(w, "either name or raw is required", http.StatusBadRequest)
		return
	}

	// TLEs are Earth orbits by definition.
	el := tle.Elements(parsed, bodies.Earth)
	if err := a.applyElements("Earth", el, a.currentSampleCount()); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, orbit.ErrInvalidElements) {
			status = http.StatusBadRequest
		}
		jsonError(w, err.Error(), status)
		return
	}

	a.emitLog("orbitvizd", "info",
		fmt.Sprintf("orbit loaded from TLE: %s (NORAD %d)", parsed.Name, parsed.SatelliteNumber))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok":        true,
		"satellite": parsed.Name,
		"norad_id":  parsed.SatelliteNumber,
		"elements":  el,
	})
}

func (a *App) handleSystem(w http.ResponseWriter, _ *http.Request) {
	cfg := a.getConfig()

	store := tle.NewStore(cfg.TLE.URL, cfg.TLE.CacheDir, cfg.TLE.RefreshHours)
	resp := map[string]any{
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"tle_cache":  store.CacheInfo(),
	}

	// Disk usage for the TLE cache directory.
	if du := diskUsage(cfg.TLE.CacheDir); du != nil {
		resp["disk"] = du
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (a *App) handleHealthDetailed(w http.ResponseWriter, _ *http.Request) {
	checks := map[string]any{}
	allOK := true

	// A trajectory must be loaded for the scene to render.
	a.orbitMu.RLock()
	hasTraj := a.trajectory != nil
	a.orbitMu.RUnlock()
	checks["trajectory"] = map[string]any{"ok": hasTraj}
	if !hasTraj {
		allOK = false
	}

	// Config file readable.
	if a.configPath != "" {
		if _, err := os.Stat(a.configPath); err != nil {
			checks["config_file"] = map[string]any{"ok": false, "error": err.Error()}
			allOK = false
		} else {
			checks["config_file"] = map[string]any{"ok": true, "path": a.configPath}
		}
	}

	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"healthy": allOK,
		"checks":  checks,
	})
}

func (a *App) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if a.configPath == "" {
		jsonError(w, "no config file path set", http.StatusInternalServerError)
		return
	}

	newCfg, err := config.Load(a.configPath)
	if err != nil {
		jsonError(w, "config reload failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	a.cfgMu.Lock()
	a.cfg = newCfg
	a.cfgMu.Unlock()

	// Re-apply the configured startup orbit so the reload is visible.
	if err := a.applyOrbitConfig(newCfg.Orbit); err != nil {
		jsonError(w, "reloaded config has invalid orbit: "+err.Error(), http.StatusBadRequest)
		return
	}

	a.emitLog("orbitvizd", "info", "config reloaded from "+a.configPath)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok":      true,
		"message": "configuration reloaded from " + a.configPath,
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// sendAnimatorCommand sends a command to the animator and waits for the reply.
func (a *App) sendAnimatorCommand(cmdType string, payload json.RawMessage) animator.CommandResult {
	reply := make(chan animator.CommandResult, 1)
	a.anim.Commands <- animator.Command{
		Type:    cmdType,
		Payload: payload,
		Reply:   reply,
	}
	return <-reply
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok":    false,
		"error": msg,
	})
}

// writeCommandResult writes an animator.CommandResult as JSON.
func writeCommandResult(w http.ResponseWriter, result animator.CommandResult) {
	w.Header().Set("Content-Type", "application/json")
	if !result.OK {
		w.WriteHeader(http.StatusBadRequest)
	}
	_ = json.NewEncoder(w).Encode(result)
}
