package tle

import (
	"testing"

	"github.com/akhenakh/sgp4"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/large-farva/orbitviz/internal/bodies"
	"github.com/large-farva/orbitviz/internal/orbit"
)

// issTLE mirrors the embedded fallback set.
func issTLE(t *testing.T) *sgp4.TLE {
	t.Helper()
	parsed, err := Parse(embeddedTLE)
	if err != nil {
		t.Fatalf("embedded TLE does not parse: %v", err)
	}
	return parsed
}

func TestElementsFromISS(t *testing.T) {
	el := Elements(issTLE(t), bodies.Earth)

	// The ISS orbits at roughly 420 km altitude: a ≈ 6790 km.
	if !scalar.EqualWithinAbs(el.SemiMajorAxis, 6790, 30) {
		t.Errorf("semi-major axis %.1f km, want ≈6790", el.SemiMajorAxis)
	}
	if !scalar.EqualWithinAbs(el.Eccentricity, 0.0002558, 1e-7) {
		t.Errorf("eccentricity %.7f, want 0.0002558", el.Eccentricity)
	}
	if !scalar.EqualWithinAbs(el.Inclination, 51.6369, 1e-4) {
		t.Errorf("inclination %.4f°, want 51.6369", el.Inclination)
	}
	if el.TrueAnomaly < 0 || el.TrueAnomaly >= 360 {
		t.Errorf("true anomaly %.2f° outside [0, 360)", el.TrueAnomaly)
	}

	// The recovered elements must sample cleanly.
	if err := el.Validate(bodies.Earth); err != nil {
		t.Fatalf("recovered elements invalid: %v", err)
	}
	traj, err := orbit.SampleTrajectory(bodies.Earth, el, 100)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	// ISS period is about 92.9 minutes.
	if !scalar.EqualWithinAbs(traj.Period, 5575, 60) {
		t.Errorf("period %.0f s, want ≈5575", traj.Period)
	}
}

func TestParseAllSkipsGarbage(t *testing.T) {
	raw := embeddedTLE + "\nNOT A TLE\ngarbage line one\ngarbage line two\n"
	sets, err := parseAll(raw)
	if err != nil {
		t.Fatalf("parseAll failed: %v", err)
	}
	if len(sets) != 1 {
		t.Fatalf("expected 1 valid TLE, got %d", len(sets))
	}
	if sets[0].SatelliteNumber != 25544 {
		t.Errorf("wrong satellite: %d", sets[0].SatelliteNumber)
	}
}

func TestStoreEmbeddedFallback(t *testing.T) {
	// Point the store at an unroutable URL and an empty cache dir: only the
	// embedded tier can serve.
	s := NewStore("http://127.0.0.1:1/none", t.TempDir(), 1)
	sets, err := s.Fetch()
	if err != nil {
		t.Fatalf("fetch with embedded fallback failed: %v", err)
	}
	if len(sets) == 0 {
		t.Fatal("embedded fallback produced no TLEs")
	}

	got, err := s.ByName("iss")
	if err != nil {
		t.Fatalf("ByName failed: %v", err)
	}
	if got.SatelliteNumber != 25544 {
		t.Errorf("ByName found satellite %d, want 25544", got.SatelliteNumber)
	}
}
