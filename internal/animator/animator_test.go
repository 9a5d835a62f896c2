package animator

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"
	"time"

	"github.com/large-farva/orbitviz/internal/bodies"
	"github.com/large-farva/orbitviz/internal/orbit"
	"github.com/large-farva/orbitviz/internal/ws"
)

func startTestRunner(t *testing.T) (*Runner, chan string, context.CancelFunc) {
	t.Helper()
	logger := log.New(os.Stderr, "test ", log.LstdFlags)
	r := New(ws.NewHub(), logger, 10*time.Millisecond)

	states := make(chan string, 16)
	ctx, cancel := context.WithCancel(context.Background())
	go r.Run(ctx, func(s string) { states <- s })
	return r, states, cancel
}

func send(t *testing.T, r *Runner, cmdType string, payload any) CommandResult {
	t.Helper()
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		raw = b
	}
	reply := make(chan CommandResult, 1)
	r.Commands <- Command{Type: cmdType, Payload: raw, Reply: reply}
	select {
	case res := <-reply:
		return res
	case <-time.After(2 * time.Second):
		t.Fatalf("no reply for %q command", cmdType)
		return CommandResult{}
	}
}

func testLoad(t *testing.T) Load {
	t.Helper()
	el := orbit.Elements{SemiMajorAxis: 7078, Eccentricity: 0.1, Inclination: 45}
	traj, err := orbit.SampleTrajectory(bodies.Earth, el, 20)
	if err != nil {
		t.Fatal(err)
	}
	return Load{Body: "Earth", Trajectory: traj, Perigee: el.Perigee(), Apogee: el.Apogee()}
}

func waitForState(t *testing.T, states chan string, want string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-states:
			if s == want {
				return
			}
		case <-deadline:
			t.Fatalf("never reached state %s", want)
		}
	}
}

func TestCommandsWithoutTrajectory(t *testing.T) {
	r, states, cancel := startTestRunner(t)
	defer cancel()
	waitForState(t, states, "IDLE")

	for _, cmd := range []string{"play", "pause"} {
		if res := send(t, r, cmd, nil); res.OK || res.Error == "" {
			t.Errorf("%s before load: expected error, got %+v", cmd, res)
		}
	}
}

func TestLoadStartsPlayback(t *testing.T) {
	r, states, cancel := startTestRunner(t)
	defer cancel()
	waitForState(t, states, "IDLE")

	r.Loads <- testLoad(t)
	waitForState(t, states, "ANIMATING")

	if res := send(t, r, "pause", nil); !res.OK {
		t.Fatalf("pause failed: %+v", res)
	}
	waitForState(t, states, "PAUSED")

	if res := send(t, r, "play", nil); !res.OK {
		t.Fatalf("play failed: %+v", res)
	}
	waitForState(t, states, "ANIMATING")
}

func TestSeekBounds(t *testing.T) {
	r, states, cancel := startTestRunner(t)
	defer cancel()
	waitForState(t, states, "IDLE")

	r.Loads <- testLoad(t)
	waitForState(t, states, "ANIMATING")
	send(t, r, "pause", nil)

	if res := send(t, r, "seek", seekPayload{Index: 7}); !res.OK || res.FrameIndex != 7 {
		t.Fatalf("seek to 7 failed: %+v", res)
	}
	if res := send(t, r, "seek", seekPayload{Index: 99}); res.OK {
		t.Fatalf("out-of-range seek accepted: %+v", res)
	}
	if res := send(t, r, "seek", seekPayload{Index: -1}); res.OK {
		t.Fatalf("negative seek accepted: %+v", res)
	}
}

func TestRateValidation(t *testing.T) {
	r, states, cancel := startTestRunner(t)
	defer cancel()
	waitForState(t, states, "IDLE")

	if res := send(t, r, "rate", ratePayload{Rate: 2}); !res.OK {
		t.Fatalf("rate 2x rejected: %+v", res)
	}
	if res := send(t, r, "rate", ratePayload{Rate: 0}); res.OK {
		t.Fatalf("rate 0 accepted: %+v", res)
	}
}

func TestUnknownCommand(t *testing.T) {
	r, states, cancel := startTestRunner(t)
	defer cancel()
	waitForState(t, states, "IDLE")

	if res := send(t, r, "warp", nil); res.OK {
		t.Fatalf("unknown command accepted: %+v", res)
	}
}
