package core

import (
	"errors"
	"fmt"
)

// ErrInvalidTuning is wrapped by every tuning validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds the three parameters that shape a second-order response.
//
// Frequency is the natural frequency in Hz, Damping the damping ratio (0 is
// undamped, 1 critically damped, above 1 overdamped) and Response the
// initial-response factor (0 disables anticipation, above 1 overshoots,
// negative values wind up in the opposite direction first).
type Tuning struct {
	Frequency float64
	Damping   float64
	Response  float64
}

// TuningOption mutates a Tuning.
type TuningOption func(*Tuning)

// DefaultTuning returns a lively underdamped response.
func DefaultTuning() Tuning {
	return Tuning{
		Frequency: 1,
		Damping:   0.5,
		Response:  2,
	}
}

// WithFrequency sets the natural frequency. Non-positive values are ignored.
func WithFrequency(hz float64) TuningOption {
	return func(t *Tuning) {
		if hz > 0 && IsFinite(hz) {
			t.Frequency = hz
		}
	}
}

// WithDamping sets the damping ratio. Negative values are ignored.
func WithDamping(zeta float64) TuningOption {
	return func(t *Tuning) {
		if zeta >= 0 && IsFinite(zeta) {
			t.Damping = zeta
		}
	}
}

// WithResponse sets the initial-response factor.
func WithResponse(r float64) TuningOption {
	return func(t *Tuning) {
		if IsFinite(r) {
			t.Response = r
		}
	}
}

// ApplyTuningOptions applies zero or more options to the default tuning.
func ApplyTuningOptions(opts ...TuningOption) Tuning {
	t := DefaultTuning()
	for _, opt := range opts {
		if opt != nil {
			opt(&t)
		}
	}
	return t
}

// Validate reports whether the tuning is usable by a filter.
func (t Tuning) Validate() error {
	if !IsFinite(t.Frequency) || t.Frequency <= 0 {
		return fmt.Errorf("%w: frequency must be > 0 and finite: %v", ErrInvalidTuning, t.Frequency)
	}

	if !IsFinite(t.Damping) || t.Damping < 0 {
		return fmt.Errorf("%w: damping must be >= 0 and finite: %v", ErrInvalidTuning, t.Damping)
	}

	if !IsFinite(t.Response) {
		return fmt.Errorf("%w: response must be finite: %v", ErrInvalidTuning, t.Response)
	}

	return nil
}
