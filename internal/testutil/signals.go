package testutil

import (
	"math"
	"math/rand"
)

// Step returns n targets that sit at from for the first delay ticks and at
// to afterwards.
func Step(from, to float64, delay, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if i < delay {
			out[i] = from
		} else {
			out[i] = to
		}
	}
	return out
}

// Ramp returns n targets moving at rate units per second with tick dt.
func Ramp(start, rate, dt float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + rate*dt*float64(i+1)
	}
	return out
}

// Sine returns n targets of a sine of the given frequency sampled every dt
// seconds, starting at phase 0.
func Sine(freqHz, amplitude, dt float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz * dt
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude] with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// JitteredTicks returns n tick lengths of nominal dt with up to ±jitter
// relative variation, all strictly positive.
func JitteredTicks(seed int64, dt, jitter float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = dt * (1 + (rng.Float64()*2-1)*jitter)
		if out[i] <= 0 {
			out[i] = dt
		}
	}
	return out
}
