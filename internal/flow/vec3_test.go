package flow

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	sum := a.Add(b)
	if sum != (Vec3{5, 7, 9}) {
		t.Errorf("Add failed: got %v", sum)
	}

	diff := b.Sub(a)
	if diff != (Vec3{3, 3, 3}) {
		t.Errorf("Sub failed: got %v", diff)
	}

	scaled := a.Scale(2)
	if scaled != (Vec3{2, 4, 6}) {
		t.Errorf("Scale failed: got %v", scaled)
	}

	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}

func TestVec3_Length(t *testing.T) {
	tests := []struct {
		v        Vec3
		expected float64
	}{
		{Vec3{3, 4, 0}, 5.0},
		{Vec3{1, 0, 0}, 1.0},
		{Vec3{0, 0, 0}, 0.0},
		{Vec3{2, 2, 2}, math.Sqrt(12)},
	}

	for _, tt := range tests {
		if got := tt.v.Length(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Length(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestVec3_Axis(t *testing.T) {
	v := Vec3{1.5, -2.5, 3.5}

	for i, want := range []float64{1.5, -2.5, 3.5} {
		if got := v.Axis(i); got != want {
			t.Errorf("Axis(%d) = %v, want %v", i, got, want)
		}
	}

	replaced := v.WithAxis(1, 7)
	if replaced != (Vec3{1.5, 7, 3.5}) {
		t.Errorf("WithAxis failed: got %v", replaced)
	}
	if v.Y != -2.5 {
		t.Error("WithAxis mutated the receiver")
	}
}

func TestVec3_IsFinite(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		valid bool
	}{
		{"zero", Vec3{}, true},
		{"normal", Vec3{1, 2, 3}, true},
		{"with NaN", Vec3{1, math.NaN(), 3}, false},
		{"with +Inf", Vec3{math.Inf(1), 0, 0}, false},
		{"with -Inf", Vec3{0, 0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.valid {
				t.Errorf("IsFinite() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, -6}

	tests := []struct {
		t        float64
		expected Vec3
	}{
		{0, Vec3{0, 0, 0}},
		{1, Vec3{2, 4, -6}},
		{0.5, Vec3{1, 2, -3}},
		{0.25, Vec3{0.5, 1, -1.5}},
	}

	for _, tt := range tests {
		got := Lerp(a, b, tt.t)
		if got.Sub(tt.expected).Length() > 1e-12 {
			t.Errorf("Lerp(t=%v) = %v, want %v", tt.t, got, tt.expected)
		}
	}
}
