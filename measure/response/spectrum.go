package response

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dynamics/dynamics/core"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum is a one-sided magnitude response.
type Spectrum struct {
	Frequencies []float64 // bin centers in Hz
	Magnitude   []float64 // |H| per bin, 1 is unity gain
}

// Peak returns the bin with the largest magnitude.
func (s Spectrum) Peak() (freq, mag float64) {
	if len(s.Magnitude) == 0 {
		return 0, 0
	}

	idx := 0
	for i, m := range s.Magnitude {
		if m > s.Magnitude[idx] {
			idx = i
		}
	}

	return s.Frequencies[idx], s.Magnitude[idx]
}

// FrequencyResponse estimates the magnitude response of tuning ticked at dt.
// The impulse response is the first difference of an n-tick unit step
// response; n must be a power of two and long enough for the response to
// decay. The result has n/2+1 bins from 0 Hz to 1/(2*dt).
func FrequencyResponse(tuning core.Tuning, dt float64, n int) (Spectrum, error) {
	if n < 2 || n&(n-1) != 0 {
		return Spectrum{}, ErrInvalidLength
	}

	step, err := SimulateStep(tuning, dt, n, 0, 1)
	if err != nil {
		return Spectrum{}, err
	}

	impulse := make([]complex128, n)
	prev := 0.0
	for i, y := range step {
		impulse[i] = complex(y-prev, 0)
		prev = y
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Spectrum{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	freq := make([]complex128, n)
	if err := plan.Forward(freq, impulse); err != nil {
		return Spectrum{}, fmt.Errorf("response: forward FFT: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(freq[k])
		im[k] = imag(freq[k])
	}

	s := Spectrum{
		Frequencies: make([]float64, bins),
		Magnitude:   make([]float64, bins),
	}
	vecmath.Magnitude(s.Magnitude, re, im)

	binWidth := 1 / (float64(n) * dt)
	for k := range s.Frequencies {
		s.Frequencies[k] = float64(k) * binWidth
	}

	return s, nil
}
