// Package demo cycles the display through a tour of preset orbits so the
// dashboard animates unattended — useful for kiosk setups and for testing
// the full element-update path end-to-end without a client.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/large-farva/orbitviz/internal/orbit"
	"github.com/large-farva/orbitviz/internal/telemetry"
	"github.com/large-farva/orbitviz/internal/ws"
)

// Scenario is one stop on the tour: a named orbit around a named body.
type Scenario struct {
	Name     string
	Body     string
	Elements orbit.Elements
}

// Scenarios is the tour catalog. Each entry is a recognizable orbit regime.
var Scenarios = []Scenario{
	{
		Name: "LEO sun-sync style",
		Body: "Earth",
		Elements: orbit.Elements{
			SemiMajorAxis: 7078, Eccentricity: 0.1, Inclination: 45,
		},
	},
	{
		Name: "Molniya",
		Body: "Earth",
		Elements: orbit.Elements{
			SemiMajorAxis: 26600, Eccentricity: 0.74, Inclination: 63.4, ArgPerigee: 270,
		},
	},
	{
		Name: "GTO",
		Body: "Earth",
		Elements: orbit.Elements{
			SemiMajorAxis: 24396, Eccentricity: 0.7306, Inclination: 7,
		},
	},
	{
		Name: "Low lunar orbit",
		Body: "Moon",
		Elements: orbit.Elements{
			SemiMajorAxis: 1838, Eccentricity: 0.01, Inclination: 90,
		},
	},
}

// Runner advances the tour on a fixed interval.
type Runner struct {
	Hub      *ws.Hub
	Interval time.Duration // time between scenario switches

	scenarioIndex int
}

// New creates a tour runner with a sensible default interval.
func New(hub *ws.Hub) *Runner {
	return &Runner{
		Hub:      hub,
		Interval: 30 * time.Second,
	}
}

// Run starts the tour. The apply callback is the same path a client POST to
// /api/elements takes, so every switch resamples the trajectory and reloads
// the animator. Runs until ctx is cancelled.
func (r *Runner) Run(ctx context.Context, apply func(body string, el orbit.Elements) error) {
	r.logEvent("info", "demo tour active, cycling preset orbits")

	r.applyNext(apply)

	t := time.NewTicker(r.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.applyNext(apply)
		}
	}
}

// applyNext switches to the next scenario in the catalog.
func (r *Runner) applyNext(apply func(body string, el orbit.Elements) error) {
	sc := Scenarios[r.scenarioIndex%len(Scenarios)]
	r.scenarioIndex++

	r.logEvent("info", fmt.Sprintf("tour: %s around %s (%s)", sc.Name, sc.Body, sc.Elements))

	if err := apply(sc.Body, sc.Elements); err != nil {
		r.logEvent("error", fmt.Sprintf("tour: %s rejected: %v", sc.Name, err))
	}
}

func (r *Runner) logEvent(level, message string) {
	r.Hub.BroadcastJSON(telemetry.LogLine{
		Event:   telemetry.Envelope(telemetry.EventLog, "demo"),
		Level:   level,
		Message: message,
	})
}
