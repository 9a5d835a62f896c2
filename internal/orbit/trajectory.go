package orbit

import (
	"encoding/json"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/large-farva/orbitviz/internal/bodies"
)

// DefaultSampleCount matches the original 100-point sampling over one period.
const DefaultSampleCount = 100

// Sample is one propagated point: seconds since the epoch and the
// body-centered inertial position in kilometers.
type Sample struct {
	Time     float64 `json:"t_s"`
	Position r3.Vec  `json:"position_km"`
}

// sampleJSON is the wire form of a Sample: the position is a flat
// [x, y, z] array, matching the frame events on the WebSocket stream.
type sampleJSON struct {
	Time     float64    `json:"t_s"`
	Position [3]float64 `json:"position_km"`
}

// MarshalJSON encodes the position as [x, y, z] rather than the r3.Vec
// field object.
func (s Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal(sampleJSON{
		Time:     s.Time,
		Position: [3]float64{s.Position.X, s.Position.Y, s.Position.Z},
	})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (s *Sample) UnmarshalJSON(b []byte) error {
	var w sampleJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	s.Time = w.Time
	s.Position = r3.Vec{X: w.Position[0], Y: w.Position[1], Z: w.Position[2]}
	return nil
}

// Trajectory is the sampled orbit over exactly one period. The first sample
// is at t=0, the last at t=Period, and times increase strictly in between.
// It is immutable once returned; parameter changes produce a fresh one.
type Trajectory struct {
	Period  float64  `json:"period_s"`
	Samples []Sample `json:"samples"`
}

// SampleTrajectory propagates the orbit defined by el around body and
// returns count evenly time-spaced samples covering one full period,
// endpoints included (so the loop closes on itself). It is a pure function:
// identical inputs give identical output, and on error no trajectory is
// returned at all.
func SampleTrajectory(body bodies.CelestialBody, el Elements, count int) (*Trajectory, error) {
	if err := el.Validate(body); err != nil {
		return nil, err
	}
	if count < 2 {
		return nil, fmt.Errorf("%w: sample count %d must be at least 2", ErrInvalidElements, count)
	}

	period := el.Period(body)
	n := el.MeanMotion(body)
	e := el.Eccentricity

	// Anchor the mean anomaly at the epoch's true anomaly.
	nu0 := deg2rad(el.TrueAnomaly)
	M0 := meanFromEccentric(eccentricFromTrue(nu0, e), e)

	rot := perifocalToInertial(deg2rad(el.Inclination), deg2rad(el.RAAN), deg2rad(el.ArgPerigee))

	samples := make([]Sample, count)
	step := period / float64(count-1)
	for k := 0; k < count; k++ {
		t := float64(k) * step
		E := eccentricFromMean(M0+n*t, e)
		nu := trueFromEccentric(E, e)
		r := el.SemiMajorAxis * (1 - e*math.Cos(E))

		sinNu, cosNu := math.Sincos(nu)
		samples[k] = Sample{
			Time:     t,
			Position: rot.apply(r*cosNu, r*sinNu),
		}
	}

	return &Trajectory{Period: period, Samples: samples}, nil
}

// rotation holds the two perifocal basis columns of the PQW→inertial
// direction cosine matrix. The third column is never needed because
// perifocal positions have no out-of-plane component.
type rotation struct {
	p, q r3.Vec
}

// perifocalToInertial builds the 3-1-3 rotation taking perifocal (PQW)
// coordinates into the body-centered inertial frame for the given
// inclination, RAAN, and argument of perigee (all radians).
func perifocalToInertial(inc, raan, argp float64) rotation {
	sinRAAN, cosRAAN := math.Sincos(raan)
	sinInc, cosInc := math.Sincos(inc)
	sinArgp, cosArgp := math.Sincos(argp)

	return rotation{
		p: r3.Vec{
			X: cosRAAN*cosArgp - sinRAAN*sinArgp*cosInc,
			Y: sinRAAN*cosArgp + cosRAAN*sinArgp*cosInc,
			Z: sinArgp * sinInc,
		},
		q: r3.Vec{
			X: -cosRAAN*sinArgp - sinRAAN*cosArgp*cosInc,
			Y: -sinRAAN*sinArgp + cosRAAN*cosArgp*cosInc,
			Z: cosArgp * sinInc,
		},
	}
}

// apply rotates an in-plane perifocal position (x toward perigee, y along
// the semi-latus direction) into the inertial frame.
func (rot rotation) apply(x, y float64) r3.Vec {
	return r3.Add(r3.Scale(x, rot.p), r3.Scale(y, rot.q))
}
