package orbit

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/large-farva/orbitviz/internal/bodies"
)

// referenceElements is the 700 km perigee-altitude orbit from the original
// visualization: a = 7078 km, e = 0.1, i = 45°.
var referenceElements = Elements{
	SemiMajorAxis: 7078,
	Eccentricity:  0.1,
	Inclination:   45,
}

func TestSampleTrajectoryShape(t *testing.T) {
	traj, err := SampleTrajectory(bodies.Earth, referenceElements, 100)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	if len(traj.Samples) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(traj.Samples))
	}
	if traj.Samples[0].Time != 0 {
		t.Errorf("first sample at t=%f, want 0", traj.Samples[0].Time)
	}
	last := traj.Samples[len(traj.Samples)-1]
	if !scalar.EqualWithinAbs(last.Time, traj.Period, 1e-9) {
		t.Errorf("last sample at t=%f, want period %f", last.Time, traj.Period)
	}
	for k := 1; k < len(traj.Samples); k++ {
		if traj.Samples[k].Time <= traj.Samples[k-1].Time {
			t.Fatalf("sample times not strictly increasing at index %d", k)
		}
	}
	// Endpoints close the loop: same position after one full period.
	gap := r3.Norm(r3.Sub(last.Position, traj.Samples[0].Position))
	if gap > 1e-6 {
		t.Errorf("trajectory does not close: endpoint gap %.3g km", gap)
	}
}

func TestSampleTrajectoryReferenceScenario(t *testing.T) {
	traj, err := SampleTrajectory(bodies.Earth, referenceElements, 100)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	// Period 2π·√(a³/μ) ≈ 5926 s for a = 7078 km around Earth.
	if !scalar.EqualWithinAbs(traj.Period, 5926.2, 5) {
		t.Errorf("period %.1f s, want 5926.2 ±5", traj.Period)
	}

	// Epoch is at perigee (ν = 0): |r(0)| = a(1-e) ≈ 6370.2 km.
	perigee := r3.Norm(traj.Samples[0].Position)
	if !scalar.EqualWithinAbs(perigee, 6370.2, 1) {
		t.Errorf("perigee radius %.1f km, want 6370.2 ±1", perigee)
	}

	// Near half the period the satellite is at apogee: a(1+e) ≈ 7785.8 km.
	mid := traj.Samples[len(traj.Samples)/2]
	apogee := r3.Norm(mid.Position)
	if !scalar.EqualWithinRel(apogee, 7785.8, 0.01) {
		t.Errorf("apogee radius %.1f km, want 7785.8 ±1%%", apogee)
	}
}

func TestSampleTrajectoryCircular(t *testing.T) {
	el := Elements{SemiMajorAxis: 7000, Eccentricity: 0, Inclination: 30, RAAN: 40, ArgPerigee: 50}
	traj, err := SampleTrajectory(bodies.Earth, el, 64)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	for k, s := range traj.Samples {
		radius := r3.Norm(s.Position)
		if !scalar.EqualWithinAbs(radius, el.SemiMajorAxis, 1e-6) {
			t.Fatalf("sample %d radius %.9f km, want %.1f (circular)", k, radius, el.SemiMajorAxis)
		}
	}
}

func TestSampleTrajectoryDeterministic(t *testing.T) {
	a, err := SampleTrajectory(bodies.Earth, referenceElements, 50)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SampleTrajectory(bodies.Earth, referenceElements, 50)
	if err != nil {
		t.Fatal(err)
	}
	for k := range a.Samples {
		if a.Samples[k] != b.Samples[k] {
			t.Fatalf("sample %d differs between identical calls", k)
		}
	}
}

func TestPeriodKeplerScaling(t *testing.T) {
	small := Elements{SemiMajorAxis: 7078, Eccentricity: 0.1}
	large := Elements{SemiMajorAxis: 14156, Eccentricity: 0.1}
	ratio := large.Period(bodies.Earth) / small.Period(bodies.Earth)
	if !scalar.EqualWithinAbs(ratio, math.Pow(2, 1.5), 1e-9) {
		t.Errorf("period ratio %.6f, want 2^1.5 = %.6f", ratio, math.Pow(2, 1.5))
	}
}

func TestSampleTrajectoryNonZeroEpochAnomaly(t *testing.T) {
	el := referenceElements
	el.TrueAnomaly = 90
	traj, err := SampleTrajectory(bodies.Earth, el, 100)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	// Starting away from perigee the first radius must sit strictly between
	// the perigee and apogee radii.
	r0 := r3.Norm(traj.Samples[0].Position)
	if r0 <= el.Perigee() || r0 >= el.Apogee() {
		t.Errorf("epoch radius %.1f km outside (%.1f, %.1f)", r0, el.Perigee(), el.Apogee())
	}
	// And after one period the loop still closes.
	last := traj.Samples[len(traj.Samples)-1]
	gap := r3.Norm(r3.Sub(last.Position, traj.Samples[0].Position))
	if gap > 1e-6 {
		t.Errorf("trajectory does not close: endpoint gap %.3g km", gap)
	}
}

func TestSampleTrajectoryInvalidInputs(t *testing.T) {
	cases := []struct {
		name  string
		el    Elements
		count int
	}{
		{"hyperbolic eccentricity", Elements{SemiMajorAxis: 8000, Eccentricity: 1.2}, 100},
		{"negative eccentricity", Elements{SemiMajorAxis: 8000, Eccentricity: -0.1}, 100},
		{"orbit inside body", Elements{SemiMajorAxis: 6000, Eccentricity: 0}, 100},
		{"sample count too small", Elements{SemiMajorAxis: 8000, Eccentricity: 0.1}, 1},
		{"nan semi-major axis", Elements{SemiMajorAxis: math.NaN(), Eccentricity: 0.1}, 100},
	}
	for _, tc := range cases {
		traj, err := SampleTrajectory(bodies.Earth, tc.el, tc.count)
		if !errors.Is(err, ErrInvalidElements) {
			t.Errorf("%s: expected ErrInvalidElements, got %v", tc.name, err)
		}
		if traj != nil {
			t.Errorf("%s: got a trajectory alongside the error", tc.name)
		}
	}
}

// Positions must cross the wire as flat [x, y, z] arrays, the same form the
// frame events use, so HTTP clients can decode them into [3]float64.
func TestSampleWireFormat(t *testing.T) {
	traj, err := SampleTrajectory(bodies.Earth, referenceElements, 4)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	b, err := json.Marshal(traj)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// The same shape orbitctl decodes the /api/trajectory samples into.
	var decoded struct {
		PeriodS float64 `json:"period_s"`
		Samples []struct {
			Time     float64    `json:"t_s"`
			Position [3]float64 `json:"position_km"`
		} `json:"samples"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("client-side decode failed: %v", err)
	}
	if len(decoded.Samples) != len(traj.Samples) {
		t.Fatalf("decoded %d samples, want %d", len(decoded.Samples), len(traj.Samples))
	}
	for k, s := range traj.Samples {
		got := decoded.Samples[k].Position
		if got[0] != s.Position.X || got[1] != s.Position.Y || got[2] != s.Position.Z {
			t.Fatalf("sample %d position %v, want %v", k, got, s.Position)
		}
	}

	// And the encoding round-trips through Sample itself.
	var back Trajectory
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal into Trajectory failed: %v", err)
	}
	if back.Samples[1] != traj.Samples[1] {
		t.Fatalf("round trip altered sample: %+v vs %+v", back.Samples[1], traj.Samples[1])
	}
}

func TestEquatorialOrbitStaysInPlane(t *testing.T) {
	el := Elements{SemiMajorAxis: 42164, Eccentricity: 0.01, Inclination: 0}
	traj, err := SampleTrajectory(bodies.Earth, el, 36)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	for k, s := range traj.Samples {
		if math.Abs(s.Position.Z) > 1e-9 {
			t.Fatalf("sample %d leaves the equatorial plane: z=%.3g km", k, s.Position.Z)
		}
	}
}
