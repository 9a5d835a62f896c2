package tle

import (
	"math"

	"github.com/akhenakh/sgp4"

	"github.com/large-farva/orbitviz/internal/bodies"
	"github.com/large-farva/orbitviz/internal/orbit"
)

const (
	deg2rad       = math.Pi / 180
	rad2deg       = 180 / math.Pi
	secondsPerDay = 86400.0
)

// Elements recovers classical orbital elements from a TLE's mean elements:
// semi-major axis from the mean motion via Kepler's third law, and the true
// anomaly from the mean anomaly via the sampler's Kepler solver. The result
// is a two-body approximation of the SGP4 mean state, an orbit to draw
// rather than a precision ephemeris.
func Elements(t *sgp4.TLE, body bodies.CelestialBody) orbit.Elements {
	// Mean motion arrives in revolutions per day.
	n := t.MeanMotion * 2 * math.Pi / secondsPerDay
	a := math.Cbrt(body.Mu / (n * n))

	nu := orbit.TrueAnomalyFromMean(t.MeanAnomaly*deg2rad, t.Eccentricity)

	return orbit.Elements{
		SemiMajorAxis: a,
		Eccentricity:  t.Eccentricity,
		Inclination:   t.Inclination,
		RAAN:          t.RightAscension,
		ArgPerigee:    t.ArgOfPerigee,
		TrueAnomaly:   nu * rad2deg,
	}
}
