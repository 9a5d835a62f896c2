// Package app wires together the HTTP server, WebSocket hub, the frame
// animator, and optionally the demo tour. It owns the daemon's lifecycle,
// the current orbit, and is the single source of truth for display state.
package app

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/large-farva/orbitviz/internal/animator"
	"github.com/large-farva/orbitviz/internal/bodies"
	"github.com/large-farva/orbitviz/internal/config"
	"github.com/large-farva/orbitviz/internal/demo"
	"github.com/large-farva/orbitviz/internal/orbit"
	"github.com/large-farva/orbitviz/internal/scene"
	"github.com/large-farva/orbitviz/internal/telemetry"
	"github.com/large-farva/orbitviz/internal/ws"
)

// Options holds everything the App needs from the caller.
type Options struct {
	Logger     *log.Logger
	Cfg        config.Config
	ConfigPath string
	Bind       string
}

// App is the top-level daemon process. It manages the HTTP server, the
// WebSocket event hub, the animator, and the current orbit state.
type App struct {
	log        *log.Logger
	bind       string
	configPath string
	server     *http.Server

	cfgMu sync.RWMutex
	cfg   config.Config

	startedAt time.Time
	state     atomic.Value // current state string (BOOTING, IDLE, etc.)

	wsHub *ws.Hub
	anim  *animator.Runner

	// The current orbit and everything derived from it. Element updates are
	// serialized behind this mutex; the newest update wins.
	orbitMu     sync.RWMutex
	body        bodies.CelestialBody
	elements    orbit.Elements
	sampleCount int
	display     scene.DisplayState
	trajectory  *orbit.Trajectory
}

// New creates an App in the BOOTING state. Call Run to start serving.
func New(opts Options) *App {
	cfg := opts.Cfg
	a := &App{
		log:         opts.Logger,
		cfg:         cfg,
		configPath:  opts.ConfigPath,
		bind:        opts.Bind,
		startedAt:   time.Now(),
		wsHub:       ws.NewHub(),
		body:        bodies.Earth,
		sampleCount: cfg.Orbit.SampleCount,
		display: scene.DisplayState{
			BodySize:      cfg.Display.BodySize,
			SatelliteSize: cfg.Display.SatelliteSize,
		},
	}
	a.state.Store("BOOTING")
	return a
}

// Run starts the HTTP server, WebSocket hub, heartbeat ticker, the animator,
// and optionally the demo tour. It blocks until the context is cancelled or
// the server returns an error.
func (a *App) Run(ctx context.Context) error {
	cfg := a.getConfig()

	bind := a.bind
	if bind == "" && cfg.Server.Bind != "" {
		bind = cfg.Server.Bind
	}
	if bind == "" {
		bind = "0.0.0.0:8080"
	}

	a.anim = animator.New(a.wsHub, a.log,
		time.Duration(cfg.Display.FrameIntervalMS)*time.Millisecond)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/api/status", a.handleStatus)
	mux.HandleFunc("/api/version", a.handleVersion)
	mux.HandleFunc("/api/config", a.handleConfig)
	mux.HandleFunc("/api/bodies", a.handleBodies)
	mux.HandleFunc("/api/elements", a.handleElements)
	mux.HandleFunc("/api/trajectory", a.handleTrajectory)
	mux.HandleFunc("/api/figure", a.handleFigure)
	mux.HandleFunc("/api/display", a.handleDisplay)
	mux.HandleFunc("/api/animation/play", a.handleAnimation("play"))
	mux.HandleFunc("/api/animation/pause", a.handleAnimation("pause"))
	mux.HandleFunc("/api/animation/seek", a.handleAnimation("seek"))
	mux.HandleFunc("/api/animation/rate", a.handleAnimation("rate"))
	mux.HandleFunc("/api/tle", a.handleTLE)
	mux.HandleFunc("/api/system", a.handleSystem)
	mux.HandleFunc("/api/reload", a.handleReload)
	mux.Handle("/ws", a.wsHub.Handler())

	a.server = &http.Server{
		Addr:              bind,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", bind)
	if err != nil {
		return err
	}

	a.log.Printf("listening on http://%s", bind)

	go a.wsHub.Run(ctx)
	go a.anim.Run(ctx, a.transition)
	a.transition("IDLE")
	go a.heartbeatLoop(ctx)

	// Load the configured startup orbit so the scene is never empty.
	if err := a.applyOrbitConfig(cfg.Orbit); err != nil {
		a.log.Printf("startup orbit rejected: %v", err)
	}

	if cfg.Demo.Enabled {
		r := demo.New(a.wsHub)
		if cfg.Demo.IntervalSeconds > 0 {
			r.Interval = time.Duration(cfg.Demo.IntervalSeconds) * time.Second
		}
		go r.Run(ctx, func(body string, el orbit.Elements) error {
			return a.applyElements(body, el, a.currentSampleCount())
		})
	}

	go func() {
		<-ctx.Done()
		a.log.Printf("shutdown requested")
		_ = a.server.Shutdown(context.Background())
	}()

	return a.server.Serve(ln)
}

// applyOrbitConfig installs the startup orbit from the config file.
func (a *App) applyOrbitConfig(oc config.OrbitConfig) error {
	el := orbit.Elements{
		SemiMajorAxis: oc.SemiMajorAxis,
		Eccentricity:  oc.Eccentricity,
		Inclination:   oc.Inclination,
		RAAN:          oc.RAAN,
		ArgPerigee:    oc.ArgPerigee,
		TrueAnomaly:   oc.TrueAnomaly,
	}
	return a.applyElements(oc.Body, el, oc.SampleCount)
}

// applyElements is the single path every orbit change goes through: demo
// tour switches, element POSTs, and TLE imports. It validates, resamples the
// full trajectory, swaps the stored state, and hands the animator the new
// trajectory. On error nothing changes.
func (a *App) applyElements(bodyName string, el orbit.Elements, count int) error {
	body := bodies.ByName(bodyName)
	if body == nil {
		return fmt.Errorf("%w: unknown central body %q", orbit.ErrInvalidElements, bodyName)
	}

	traj, err := orbit.SampleTrajectory(*body, el, count)
	if err != nil {
		return err
	}

	a.orbitMu.Lock()
	a.body = *body
	a.elements = el
	a.sampleCount = count
	a.trajectory = traj
	a.orbitMu.Unlock()

	a.anim.Loads <- animator.Load{
		Body:       body.Name,
		Trajectory: traj,
		Perigee:    el.Perigee(),
		Apogee:     el.Apogee(),
	}

	a.log.Printf("orbit set: %s around %s, period %.1fs, %d samples",
		el, body.Name, traj.Period, count)
	return nil
}

// currentSampleCount returns the sample count of the active trajectory.
func (a *App) currentSampleCount() int {
	a.orbitMu.RLock()
	defer a.orbitMu.RUnlock()
	return a.sampleCount
}

// transition atomically updates the daemon state and broadcasts the change
// to all connected WebSocket clients.
func (a *App) transition(newState string) {
	old := a.state.Load().(string)
	if old == newState {
		return
	}
	a.state.Store(newState)

	a.wsHub.BroadcastJSON(telemetry.StateTransition{
		Event: telemetry.Envelope(telemetry.EventState, "orbitvizd"),
		From:  old,
		To:    newState,
	})
}

// heartbeatLoop sends a periodic heartbeat event so clients can detect
// connectivity and track uptime without polling.
func (a *App) heartbeatLoop(ctx context.Context) {
	t := time.NewTicker(10 * time.Second)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			a.wsHub.BroadcastJSON(telemetry.Heartbeat{
				Event:         telemetry.Envelope(telemetry.EventHeartbeat, "orbitvizd"),
				State:         a.state.Load().(string),
				UptimeSeconds: int64(time.Since(a.startedAt).Seconds()),
			})
		}
	}
}

// emitLog pushes a log line to every connected WebSocket client.
func (a *App) emitLog(component, level, message string) {
	a.wsHub.BroadcastJSON(telemetry.LogLine{
		Event:   telemetry.Envelope(telemetry.EventLog, component),
		Level:   level,
		Message: message,
	})
}

func (a *App) getConfig() config.Config {
	a.cfgMu.RLock()
	defer a.cfgMu.RUnlock()
	return a.cfg
}
