package analysis

import (
	"math"
	"testing"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/eigen"
)

func TestClassify_Contracting(t *testing.T) {
	s := Classify([3]eigen.Value{eigen.Real(0.5), eigen.Real(0.3), eigen.Real(0.9)})

	if s.Regime != RegimeContracting {
		t.Fatalf("Regime = %v, want contracting", s.Regime)
	}
	if s.Radius != 0.9 {
		t.Errorf("Radius = %v, want 0.9", s.Radius)
	}
	if s.Dominant != 2 {
		t.Errorf("Dominant = %d, want 2", s.Dominant)
	}
	if s.Rotational {
		t.Error("Rotational = true for a real spectrum")
	}
	if rate := s.GrowthRate(); rate >= 0 {
		t.Errorf("GrowthRate = %v, want negative", rate)
	}
}

func TestClassify_Saddle(t *testing.T) {
	s := Classify([3]eigen.Value{eigen.Real(2), eigen.Real(0.5), eigen.Real(1)})
	if s.Regime != RegimeSaddle {
		t.Fatalf("Regime = %v, want saddle", s.Regime)
	}
}

func TestClassify_ExpandingWithUnitDirection(t *testing.T) {
	s := Classify([3]eigen.Value{eigen.Real(2), eigen.Real(1), eigen.Real(1)})

	if s.Regime != RegimeExpanding {
		t.Fatalf("Regime = %v, want expanding", s.Regime)
	}
	if got, want := s.GrowthRate(), math.Log(2); math.Abs(got-want) > 1e-12 {
		t.Errorf("GrowthRate = %v, want %v", got, want)
	}
}

func TestClassify_RotationIsNeutral(t *testing.T) {
	theta := math.Pi / 4
	s := Classify([3]eigen.Value{
		eigen.Complex(math.Cos(theta), math.Sin(theta)),
		eigen.Complex(math.Cos(theta), -math.Sin(theta)),
		eigen.Real(1),
	})

	if s.Regime != RegimeNeutral {
		t.Fatalf("Regime = %v, want neutral", s.Regime)
	}
	if !s.Rotational {
		t.Error("Rotational = false for a complex pair")
	}
	if got := s.Angle(); math.Abs(got-theta) > 1e-12 {
		t.Errorf("Angle = %v, want %v", got, theta)
	}
}

func TestAngle_RealSpectrumIsZero(t *testing.T) {
	s := Classify([3]eigen.Value{eigen.Real(2), eigen.Real(3), eigen.Real(4)})
	if got := s.Angle(); got != 0 {
		t.Errorf("Angle = %v, want 0", got)
	}
}
