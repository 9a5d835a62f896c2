package orbit

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestKeplerRoundTrip(t *testing.T) {
	for _, e := range []float64{0, 0.1, 0.5, 0.85, 0.99} {
		for deg := 0.0; deg < 360; deg += 15 {
			M := deg2rad(deg)
			E := eccentricFromMean(M, e)
			back := meanFromEccentric(E, e)
			if !scalar.EqualWithinAbs(back, normalizeAngle(M), 1e-9) {
				t.Fatalf("e=%.2f M=%.0f°: round trip gave M=%.9f rad, want %.9f", e, deg, back, M)
			}
		}
	}
}

func TestTrueEccentricRoundTrip(t *testing.T) {
	for _, e := range []float64{0.05, 0.3, 0.7} {
		for deg := 5.0; deg < 360; deg += 25 {
			nu := deg2rad(deg)
			E := eccentricFromTrue(nu, e)
			back := trueFromEccentric(E, e)
			if !scalar.EqualWithinAbs(back, nu, 1e-9) {
				t.Fatalf("e=%.2f ν=%.0f°: round trip gave %.9f rad, want %.9f", e, deg, back, nu)
			}
		}
	}
}

func TestEccentricFromMeanCircular(t *testing.T) {
	// With e=0 Kepler's equation degenerates to E = M.
	for _, M := range []float64{0, 1, math.Pi, 5} {
		if E := eccentricFromMean(M, 0); !scalar.EqualWithinAbs(E, normalizeAngle(M), 1e-15) {
			t.Errorf("e=0 M=%f: got E=%f", M, E)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{twoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, tc := range cases {
		if got := normalizeAngle(tc.in); !scalar.EqualWithinAbs(got, tc.want, 1e-12) {
			t.Errorf("normalizeAngle(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}
