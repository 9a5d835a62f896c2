// Package scene turns a sampled trajectory into renderable 3D geometry: a
// static orbit path, a fixed central-body marker, a satellite marker, and one
// animation frame per sample. The output mirrors what a plotly-style client
// consumes, so the web dashboard can feed the figure straight into its
// renderer.
package scene

import (
	"fmt"

	"github.com/large-farva/orbitviz/internal/bodies"
	"github.com/large-farva/orbitviz/internal/orbit"
)

// Trace indices within a figure and within every frame. The order is fixed:
// clients patch markers by position.
const (
	TracePath = iota
	TraceBody
	TraceSatellite
)

// DisplayState holds the rendering knobs that are independent of the orbital
// elements: marker sizes for the two bodies and the current frame index.
// Changing it never touches the trajectory.
type DisplayState struct {
	BodySize      int `json:"body_size"`
	SatelliteSize int `json:"satellite_size"`
	FrameIndex    int `json:"frame_index"`
}

// DefaultDisplay matches the original visualization's initial sizes.
func DefaultDisplay() DisplayState {
	return DisplayState{BodySize: 15, SatelliteSize: 6}
}

// Marker styles a point trace.
type Marker struct {
	Size  int    `json:"size"`
	Color string `json:"color"`
}

// Line styles a path trace.
type Line struct {
	Width int    `json:"width"`
	Color string `json:"color"`
}

// Trace is one plottable series in the 3D scene.
type Trace struct {
	Name   string    `json:"name"`
	Mode   string    `json:"mode"` // "lines" or "markers"
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	Z      []float64 `json:"z"`
	Marker *Marker   `json:"marker,omitempty"`
	Line   *Line     `json:"line,omitempty"`
}

// Frame is one animation step: the full trace triple with the satellite
// marker pinned to that step's sampled position.
type Frame struct {
	Name string  `json:"name"`
	Data []Trace `json:"data"`
}

// Figure is the complete renderable scene.
type Figure struct {
	Title  string    `json:"title"`
	Axis   [3]string `json:"axis_labels"`
	Traces []Trace   `json:"traces"`
	Frames []Frame   `json:"frames"`
}

// Build assembles the figure for a sampled trajectory: the static orbit path,
// the central body at the origin, the satellite at sample zero, and one frame
// per sample. Everything is derived; Build never mutates its inputs.
func Build(body bodies.CelestialBody, el orbit.Elements, traj *orbit.Trajectory, display DisplayState) Figure {
	n := len(traj.Samples)
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for k, s := range traj.Samples {
		xs[k] = s.Position.X
		ys[k] = s.Position.Y
		zs[k] = s.Position.Z
	}

	path := Trace{
		Name: "Orbit Path",
		Mode: "lines",
		X:    xs, Y: ys, Z: zs,
		Line: &Line{Width: 2, Color: "red"},
	}
	bodyTrace := Trace{
		Name: body.Name,
		Mode: "markers",
		X:    []float64{0}, Y: []float64{0}, Z: []float64{0},
		Marker: &Marker{Size: display.BodySize, Color: body.Color},
	}

	satAt := func(k int) Trace {
		return Trace{
			Name: "Satellite",
			Mode: "markers",
			X:    []float64{xs[k]}, Y: []float64{ys[k]}, Z: []float64{zs[k]},
			Marker: &Marker{Size: display.SatelliteSize, Color: "green"},
		}
	}

	frames := make([]Frame, n)
	for k := 0; k < n; k++ {
		frames[k] = Frame{
			Name: fmt.Sprintf("Frame %d", k),
			Data: []Trace{path, bodyTrace, satAt(k)},
		}
	}

	return Figure{
		Title: fmt.Sprintf("Elliptical Orbit Simulation (e=%.2f, i=%.1f°)",
			el.Eccentricity, el.Inclination),
		Axis:   [3]string{"X (km)", "Y (km)", "Z (km)"},
		Traces: []Trace{path, bodyTrace, satAt(0)},
		Frames: frames,
	}
}
