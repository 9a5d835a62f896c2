package orbit

import "math"

const (
	twoPi = 2 * math.Pi

	keplerTolerance = 1e-12
	keplerMaxIter   = 50
)

// normalizeAngle wraps an angle into [0, 2π).
func normalizeAngle(angle float64) float64 {
	wrapped := math.Mod(angle, twoPi)
	if wrapped < 0 {
		wrapped += twoPi
	}
	return wrapped
}

// deg2rad converts degrees to radians.
func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// eccentricFromTrue converts a true anomaly to the eccentric anomaly.
func eccentricFromTrue(nu, e float64) float64 {
	if e == 0 {
		return normalizeAngle(nu)
	}
	sinNu, cosNu := math.Sincos(nu)
	denom := 1 + e*cosNu
	sinE := math.Sqrt(1-e*e) * sinNu / denom
	cosE := (e + cosNu) / denom
	return normalizeAngle(math.Atan2(sinE, cosE))
}

// meanFromEccentric computes the mean anomaly M = E - e·sin(E).
func meanFromEccentric(E, e float64) float64 {
	return normalizeAngle(E - e*math.Sin(E))
}

// eccentricFromMean solves Kepler's equation M = E - e·sin(E) for E with
// Newton–Raphson iteration. Converges in a handful of steps for elliptical
// eccentricities; the initial guess is split at e = 0.8 to keep high-e
// orbits from diverging.
func eccentricFromMean(M, e float64) float64 {
	if e == 0 {
		return normalizeAngle(M)
	}

	M = normalizeAngle(M)
	E := keplerInitialGuess(M, e)
	for i := 0; i < keplerMaxIter; i++ {
		f := E - e*math.Sin(E) - M
		fp := 1 - e*math.Cos(E)
		delta := f / fp
		E -= delta
		if math.Abs(delta) < keplerTolerance {
			break
		}
	}
	return normalizeAngle(E)
}

// trueFromEccentric converts an eccentric anomaly to the true anomaly.
func trueFromEccentric(E, e float64) float64 {
	if e == 0 {
		return normalizeAngle(E)
	}
	sinE, cosE := math.Sincos(E)
	sinNu := math.Sqrt(1-e*e) * sinE
	cosNu := cosE - e
	return normalizeAngle(math.Atan2(sinNu, cosNu))
}

// TrueAnomalyFromMean converts a mean anomaly (radians) to the true anomaly,
// solving Kepler's equation along the way. Used when recovering classical
// elements from TLE mean elements.
func TrueAnomalyFromMean(M, e float64) float64 {
	return trueFromEccentric(eccentricFromMean(M, e), e)
}

func keplerInitialGuess(M, e float64) float64 {
	if e < 0.8 {
		return M
	}
	if M < math.Pi {
		return M + e/2
	}
	return M - e/2
}
