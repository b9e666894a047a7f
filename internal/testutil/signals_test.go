package testutil

import (
	"math"
	"testing"
)

func TestStep(t *testing.T) {
	s := Step(0, 1, 2, 5)
	want := []float64{0, 0, 1, 1, 1}
	RequireSliceNearlyEqual(t, s, want, 0)
}

func TestRamp(t *testing.T) {
	r := Ramp(1, 2, 0.5, 3)
	want := []float64{2, 3, 4}
	RequireSliceNearlyEqual(t, r, want, 1e-15)
}

func TestSine(t *testing.T) {
	s := Sine(1, 2, 0.25, 4)
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if math.Abs(s[1]-2) > 1e-12 {
		t.Fatalf("s[1] = %v, want 2", s[1])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestJitteredTicksPositive(t *testing.T) {
	ticks := JitteredTicks(7, 1.0/60, 0.5, 256)
	for i, dt := range ticks {
		if dt <= 0 {
			t.Fatalf("tick %d = %v, want > 0", i, dt)
		}
	}
}
