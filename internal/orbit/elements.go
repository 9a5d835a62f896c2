// Package orbit implements the two-body Keplerian trajectory sampler: it
// turns classical orbital elements into a time-ordered sequence of
// body-centered inertial positions over exactly one orbital period.
//
// The math follows Vallado's formulation: period from Kepler's third law,
// Newton–Raphson solve of Kepler's equation for the eccentric anomaly, and a
// 3-1-3 rotation from the perifocal frame into the inertial frame.
package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/large-farva/orbitviz/internal/bodies"
)

// ErrInvalidElements is the sentinel for every input-validation failure:
// out-of-range eccentricity, an orbit that intersects the central body, or a
// sample count too small to form a trajectory.
var ErrInvalidElements = errors.New("invalid orbital elements")

// Elements are classical (Keplerian) orbital elements. Distances are in
// kilometers and angles in degrees; conversion to radians happens once,
// inside the sampler.
type Elements struct {
	SemiMajorAxis float64 `json:"semi_major_axis_km"`
	Eccentricity  float64 `json:"eccentricity"`
	Inclination   float64 `json:"inclination_deg"`
	RAAN          float64 `json:"raan_deg"`
	ArgPerigee    float64 `json:"arg_perigee_deg"`
	TrueAnomaly   float64 `json:"true_anomaly_deg"`
}

// Validate checks the elements against the central body. A nil return
// guarantees the sampler cannot fail on these elements.
func (el Elements) Validate(body bodies.CelestialBody) error {
	if math.IsNaN(el.SemiMajorAxis) || math.IsInf(el.SemiMajorAxis, 0) {
		return fmt.Errorf("%w: semi-major axis is not finite", ErrInvalidElements)
	}
	if el.SemiMajorAxis <= body.Radius {
		return fmt.Errorf("%w: semi-major axis %.1f km must exceed %s radius %.1f km",
			ErrInvalidElements, el.SemiMajorAxis, body.Name, body.Radius)
	}
	if el.Eccentricity < 0 || el.Eccentricity >= 1 {
		return fmt.Errorf("%w: eccentricity %.4f outside [0, 1)", ErrInvalidElements, el.Eccentricity)
	}
	for _, angle := range []float64{el.Inclination, el.RAAN, el.ArgPerigee, el.TrueAnomaly} {
		if math.IsNaN(angle) || math.IsInf(angle, 0) {
			return fmt.Errorf("%w: angle is not finite", ErrInvalidElements)
		}
	}
	return nil
}

// Period returns the orbital period in seconds for the given central body,
// per Kepler's third law.
func (el Elements) Period(body bodies.CelestialBody) float64 {
	a := el.SemiMajorAxis
	return 2 * math.Pi * math.Sqrt(a*a*a/body.Mu)
}

// MeanMotion returns the mean angular rate in radians per second.
func (el Elements) MeanMotion(body bodies.CelestialBody) float64 {
	a := el.SemiMajorAxis
	return math.Sqrt(body.Mu / (a * a * a))
}

// Perigee returns the closest-approach radius a(1-e) in kilometers.
func (el Elements) Perigee() float64 {
	return el.SemiMajorAxis * (1 - el.Eccentricity)
}

// Apogee returns the farthest radius a(1+e) in kilometers.
func (el Elements) Apogee() float64 {
	return el.SemiMajorAxis * (1 + el.Eccentricity)
}

// String renders the elements compactly for logs.
func (el Elements) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.2f Ω=%.2f ω=%.2f ν=%.2f",
		el.SemiMajorAxis, el.Eccentricity, el.Inclination, el.RAAN, el.ArgPerigee, el.TrueAnomaly)
}
