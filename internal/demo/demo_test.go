package demo

import (
	"testing"

	"github.com/large-farva/orbitviz/internal/bodies"
	"github.com/large-farva/orbitviz/internal/orbit"
)

// Every tour stop must survive the same validate-and-sample path a client
// element update takes, or the tour would wedge on a rejected scenario.
func TestScenariosAllSample(t *testing.T) {
	for _, sc := range Scenarios {
		body := bodies.ByName(sc.Body)
		if body == nil {
			t.Errorf("%s: unknown body %q", sc.Name, sc.Body)
			continue
		}
		traj, err := orbit.SampleTrajectory(*body, sc.Elements, orbit.DefaultSampleCount)
		if err != nil {
			t.Errorf("%s: sampling failed: %v", sc.Name, err)
			continue
		}
		if traj.Period <= 0 {
			t.Errorf("%s: non-positive period %.1f", sc.Name, traj.Period)
		}
	}
}

func TestScenarioNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, sc := range Scenarios {
		if seen[sc.Name] {
			t.Errorf("duplicate scenario name %q", sc.Name)
		}
		seen[sc.Name] = true
	}
}
