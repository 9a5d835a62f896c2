// Package telemetry defines the typed events that flow over the WebSocket
// connection between orbitvizd and its clients. Every event carries the
// envelope fields (type, timestamp, originating component) so clients can
// route and display them uniformly.
package telemetry

import "time"

// EventType identifies the kind of WebSocket event.
type EventType string

const (
	EventHeartbeat  EventType = "heartbeat"
	EventState      EventType = "state"
	EventFrame      EventType = "frame"
	EventTrajectory EventType = "trajectory"
	EventLog        EventType = "log"
)

// Event is the base envelope shared by every event type.
type Event struct {
	Type      EventType `json:"type"`
	TS        string    `json:"ts"`
	Component string    `json:"component,omitempty"`
}

// Envelope stamps a new event envelope with the current time.
func Envelope(t EventType, component string) Event {
	return Event{Type: t, TS: NowTS(), Component: component}
}

// NowTS returns the current UTC time as an RFC 3339 nano string, matching the
// timestamp format used across all events.
func NowTS() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Heartbeat is sent periodically so clients can detect connectivity and
// monitor daemon uptime.
type Heartbeat struct {
	Event
	State         string `json:"state"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// StateTransition is emitted whenever the daemon moves between operating
// states (e.g. IDLE -> ANIMATING).
type StateTransition struct {
	Event
	From string `json:"from"`
	To   string `json:"to"`
}

// FrameEvent carries one animation step: which sample the satellite marker
// is pinned to and where that puts it.
type FrameEvent struct {
	Event
	Index    int        `json:"index"`
	OffsetS  float64    `json:"t_s"`
	Position [3]float64 `json:"position_km"`
}

// TrajectoryEvent announces that a new trajectory was sampled, with its
// headline numbers so clients can update labels without refetching.
type TrajectoryEvent struct {
	Event
	Body      string  `json:"body"`
	PeriodS   float64 `json:"period_s"`
	Samples   int     `json:"samples"`
	PerigeeKM float64 `json:"perigee_km"`
	ApogeeKM  float64 `json:"apogee_km"`
}

// LogLine carries a human-readable log message at a severity level.
type LogLine struct {
	Event
	Level   string `json:"level"`
	Message string `json:"message"`
}
