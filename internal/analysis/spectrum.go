package analysis

import (
	"math"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/eigen"
)

// unitTol separates eigenvalue magnitudes from the unit circle.
const unitTol = 1e-9

// Regime is the coarse long-term behavior of the map x → A·x.
type Regime int

const (
	// RegimeContracting means every direction shrinks or holds.
	RegimeContracting Regime = iota
	// RegimeExpanding means some direction grows and none shrinks.
	RegimeExpanding
	// RegimeSaddle means some directions grow while others shrink.
	RegimeSaddle
	// RegimeNeutral means every eigenvalue sits on the unit circle.
	RegimeNeutral
)

func (r Regime) String() string {
	switch r {
	case RegimeContracting:
		return "contracting"
	case RegimeExpanding:
		return "expanding"
	case RegimeSaddle:
		return "saddle"
	case RegimeNeutral:
		return "neutral"
	}
	return "unknown"
}

// Spectrum summarizes an eigenvalue triple.
type Spectrum struct {
	Values     [3]eigen.Value
	Radius     float64 // largest magnitude
	Dominant   int     // index of the largest magnitude
	Rotational bool    // true when a complex pair is present
	Regime     Regime
}

// Classify inspects the magnitudes of the three eigenvalues and buckets
// the map by which directions grow and which shrink under repeated
// application.
func Classify(values [3]eigen.Value) Spectrum {
	s := Spectrum{Values: values}

	below, above := 0, 0
	for i, v := range values {
		abs := v.Abs()
		if abs > s.Radius {
			s.Radius = abs
			s.Dominant = i
		}
		if v.IsComplex() {
			s.Rotational = true
		}
		switch {
		case abs < 1-unitTol:
			below++
		case abs > 1+unitTol:
			above++
		}
	}

	switch {
	case below > 0 && above > 0:
		s.Regime = RegimeSaddle
	case above > 0:
		s.Regime = RegimeExpanding
	case below > 0:
		s.Regime = RegimeContracting
	default:
		s.Regime = RegimeNeutral
	}
	return s
}

// GrowthRate returns the exponential rate of the fastest direction,
// ln(radius). For the linear map this is exactly the largest Lyapunov
// exponent: |A^t·v| grows like e^(rate·t) along the dominant
// eigenvector. Negative means decay, zero means the dominant direction
// neither grows nor shrinks.
func (s Spectrum) GrowthRate() float64 {
	return math.Log(s.Radius)
}

// Angle returns the rotation angle per unit time in radians, taken from
// the argument of the largest complex eigenvalue. Zero when the
// spectrum is purely real.
func (s Spectrum) Angle() float64 {
	best := 0.0
	bestAbs := -1.0
	for _, v := range s.Values {
		if !v.IsComplex() {
			continue
		}
		if abs := v.Abs(); abs > bestAbs {
			bestAbs = abs
			best = math.Abs(math.Atan2(v.Imag(), v.Real()))
		}
	}
	return best
}
