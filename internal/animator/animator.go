// Package animator replays a sampled trajectory as a stream of frame events.
// It owns the playback state machine (IDLE, ANIMATING, PAUSED) and advances
// the satellite marker one sample per tick, broadcasting each step over the
// WebSocket hub so every connected viewer stays in sync.
package animator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/large-farva/orbitviz/internal/orbit"
	"github.com/large-farva/orbitviz/internal/telemetry"
	"github.com/large-farva/orbitviz/internal/ws"
)

// Command represents an external command sent to the animator via its
// Commands channel. The Reply channel receives exactly one result.
type Command struct {
	Type    string
	Payload json.RawMessage
	Reply   chan<- CommandResult
}

// CommandResult is the response sent back through a Command's Reply channel.
type CommandResult struct {
	OK         bool   `json:"ok"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
	FrameIndex int    `json:"frame_index,omitempty"`
}

// Load carries a freshly sampled trajectory into the playback loop. The
// newest load always wins; whatever was animating before is discarded.
type Load struct {
	Body       string
	Trajectory *orbit.Trajectory
	Perigee    float64
	Apogee     float64
}

// Runner owns the playback loop. All mutable state (current trajectory,
// frame index, pause flag, rate) lives inside Run's goroutine; HTTP handlers
// talk to it exclusively through the Commands channel.
type Runner struct {
	Hub *ws.Hub
	Log *log.Logger

	// Commands receives play/pause/seek/rate commands from HTTP handlers.
	Commands chan Command

	// Loads receives new trajectories after element changes.
	Loads chan Load

	frameInterval time.Duration
}

// New creates an animator ticking at the given frame interval.
func New(hub *ws.Hub, logger *log.Logger, frameInterval time.Duration) *Runner {
	return &Runner{
		Hub:           hub,
		Log:           logger,
		Commands:      make(chan Command, 4),
		Loads:         make(chan Load, 1),
		frameInterval: frameInterval,
	}
}

// seekPayload is the JSON body of a seek command.
type seekPayload struct {
	Index int `json:"index"`
}

// ratePayload is the JSON body of a rate command.
type ratePayload struct {
	Rate float64 `json:"rate"`
}

// Run is the playback loop. It waits for a trajectory, then steps through
// its samples on the ticker, wrapping around at the end of the period.
// Commands are serviced between ticks; a new Load supersedes the current
// trajectory immediately (last-write-wins).
func (r *Runner) Run(ctx context.Context, setState func(string)) {
	var (
		current *Load
		index   int
		playing bool
		rate    = 1.0
	)

	ticker := time.NewTicker(r.frameInterval)
	defer ticker.Stop()

	applyRate := func() {
		d := time.Duration(float64(r.frameInterval) / rate)
		if d <= 0 {
			d = time.Millisecond
		}
		ticker.Reset(d)
	}

	setState("IDLE")

	for {
		select {
		case <-ctx.Done():
			return

		case load := <-r.Loads:
			current = &load
			index = 0
			playing = true
			setState("ANIMATING")
			r.announceTrajectory(load)
			r.emitFrame(load, index)

		case cmd := <-r.Commands:
			result := CommandResult{OK: true, FrameIndex: index}
			switch cmd.Type {
			case "play":
				if current == nil {
					result = CommandResult{Error: "no trajectory loaded"}
				} else {
					playing = true
					setState("ANIMATING")
					result.Message = "playing"
				}

			case "pause":
				if current == nil {
					result = CommandResult{Error: "no trajectory loaded"}
				} else {
					playing = false
					setState("PAUSED")
					result.Message = "paused"
				}

			case "seek":
				var p seekPayload
				if err := json.Unmarshal(cmd.Payload, &p); err != nil {
					result = CommandResult{Error: "bad seek payload: " + err.Error()}
					break
				}
				if current == nil {
					result = CommandResult{Error: "no trajectory loaded"}
					break
				}
				n := len(current.Trajectory.Samples)
				if p.Index < 0 || p.Index >= n {
					result = CommandResult{Error: fmt.Sprintf("index %d out of range [0, %d)", p.Index, n)}
					break
				}
				index = p.Index
				result.FrameIndex = index
				result.Message = fmt.Sprintf("at frame %d", index)
				r.emitFrame(*current, index)

			case "rate":
				var p ratePayload
				if err := json.Unmarshal(cmd.Payload, &p); err != nil {
					result = CommandResult{Error: "bad rate payload: " + err.Error()}
					break
				}
				if p.Rate <= 0 || p.Rate > 100 {
					result = CommandResult{Error: fmt.Sprintf("rate %.2f outside (0, 100]", p.Rate)}
					break
				}
				rate = p.Rate
				applyRate()
				result.Message = fmt.Sprintf("rate %.2fx", rate)

			default:
				result = CommandResult{Error: "unknown command: " + cmd.Type}
			}
			if cmd.Reply != nil {
				cmd.Reply <- result
			}

		case <-ticker.C:
			if current == nil || !playing {
				continue
			}
			index = (index + 1) % len(current.Trajectory.Samples)
			r.emitFrame(*current, index)
		}
	}
}

// announceTrajectory broadcasts the headline numbers of a newly loaded
// trajectory so clients can update labels without refetching geometry.
func (r *Runner) announceTrajectory(load Load) {
	traj := load.Trajectory
	r.Hub.BroadcastJSON(telemetry.TrajectoryEvent{
		Event:     telemetry.Envelope(telemetry.EventTrajectory, "animator"),
		Body:      load.Body,
		PeriodS:   traj.Period,
		Samples:   len(traj.Samples),
		PerigeeKM: load.Perigee,
		ApogeeKM:  load.Apogee,
	})
	r.Log.Printf("animator: loaded trajectory around %s, period %.1fs, %d samples",
		load.Body, traj.Period, len(traj.Samples))
}

func (r *Runner) emitFrame(load Load, index int) {
	s := load.Trajectory.Samples[index]
	r.Hub.BroadcastJSON(telemetry.FrameEvent{
		Event:    telemetry.Envelope(telemetry.EventFrame, "animator"),
		Index:    index,
		OffsetS:  s.Time,
		Position: [3]float64{s.Position.X, s.Position.Y, s.Position.Z},
	})
}
