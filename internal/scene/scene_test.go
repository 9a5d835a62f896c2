package scene

import (
	"testing"

	"github.com/large-farva/orbitviz/internal/bodies"
	"github.com/large-farva/orbitviz/internal/orbit"
)

func buildTestFigure(t *testing.T, count int) (Figure, *orbit.Trajectory) {
	t.Helper()
	el := orbit.Elements{SemiMajorAxis: 7078, Eccentricity: 0.1, Inclination: 45}
	traj, err := orbit.SampleTrajectory(bodies.Earth, el, count)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	return Build(bodies.Earth, el, traj, DefaultDisplay()), traj
}

func TestBuildFrameCount(t *testing.T) {
	fig, traj := buildTestFigure(t, 40)
	if len(fig.Frames) != len(traj.Samples) {
		t.Fatalf("expected %d frames, got %d", len(traj.Samples), len(fig.Frames))
	}
	if len(fig.Traces) != 3 {
		t.Fatalf("expected path/body/satellite traces, got %d", len(fig.Traces))
	}
}

func TestBuildFramesPinSatellite(t *testing.T) {
	fig, traj := buildTestFigure(t, 25)
	for k, frame := range fig.Frames {
		sat := frame.Data[TraceSatellite]
		if len(sat.X) != 1 {
			t.Fatalf("frame %d satellite trace has %d points", k, len(sat.X))
		}
		want := traj.Samples[k].Position
		if sat.X[0] != want.X || sat.Y[0] != want.Y || sat.Z[0] != want.Z {
			t.Fatalf("frame %d satellite at (%f,%f,%f), want %v", k, sat.X[0], sat.Y[0], sat.Z[0], want)
		}

		// Path and central body stay fixed across frames.
		path := frame.Data[TracePath]
		if len(path.X) != len(traj.Samples) {
			t.Fatalf("frame %d path has %d points", k, len(path.X))
		}
		body := frame.Data[TraceBody]
		if body.X[0] != 0 || body.Y[0] != 0 || body.Z[0] != 0 {
			t.Fatalf("frame %d central body moved: (%f,%f,%f)", k, body.X[0], body.Y[0], body.Z[0])
		}
	}
}

func TestBuildRespectsDisplaySizes(t *testing.T) {
	el := orbit.Elements{SemiMajorAxis: 8000, Eccentricity: 0.05}
	traj, err := orbit.SampleTrajectory(bodies.Earth, el, 10)
	if err != nil {
		t.Fatal(err)
	}
	display := DisplayState{BodySize: 30, SatelliteSize: 2}
	fig := Build(bodies.Earth, el, traj, display)

	if fig.Traces[TraceBody].Marker.Size != 30 {
		t.Errorf("body marker size %d, want 30", fig.Traces[TraceBody].Marker.Size)
	}
	if fig.Traces[TraceSatellite].Marker.Size != 2 {
		t.Errorf("satellite marker size %d, want 2", fig.Traces[TraceSatellite].Marker.Size)
	}
}
