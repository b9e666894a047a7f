package secondorder

import (
	"fmt"

	"github.com/cwbudde/algo-dynamics/dynamics/core"
)

// State contains the filter's mutable integration state for save/restore
// workflows.
type State struct {
	PreviousTarget float64
	Value          float64
	Velocity       float64
}

// Filter is one second-order dynamics channel.
//
// The zero value is not usable; construct with [New].
type Filter struct {
	tuning core.Tuning
	coeffs Coefficients

	state State
}

// New returns a filter tuned to (f, zeta, r) and resting at x0 with zero
// velocity. Parameters are not validated; f must be > 0.
func New(f, zeta, r, x0 float64) *Filter {
	flt := &Filter{}
	flt.UpdateConstants(f, zeta, r)
	flt.state = State{
		PreviousTarget: x0,
		Value:          x0,
	}

	return flt
}

// NewWithTuning is New taking a [core.Tuning].
func NewWithTuning(tuning core.Tuning, x0 float64) *Filter {
	return New(tuning.Frequency, tuning.Damping, tuning.Response, x0)
}

// UpdateConstants re-derives the coefficients. Value and velocity are left
// untouched so only future ticks see the new response.
func (f *Filter) UpdateConstants(freq, zeta, r float64) {
	f.tuning = core.Tuning{Frequency: freq, Damping: zeta, Response: r}
	f.coeffs = NewCoefficients(freq, zeta, r)
}

// Tuning returns the parameters the coefficients were derived from.
func (f *Filter) Tuning() core.Tuning { return f.tuning }

// Coefficients returns the derived constants.
func (f *Filter) Coefficients() Coefficients { return f.coeffs }

// Value returns the current filtered value.
func (f *Filter) Value() float64 { return f.state.Value }

// Velocity returns the current rate of change of the filtered value.
func (f *Filter) Velocity() float64 { return f.state.Velocity }

// State returns a copy of the current integration state.
func (f *Filter) State() State { return f.state }

// SetState restores an externally saved integration state.
func (f *Filter) SetState(state State) error {
	if !core.IsFinite(state.PreviousTarget) || !core.IsFinite(state.Value) || !core.IsFinite(state.Velocity) {
		return fmt.Errorf("secondorder: state contains NaN or Inf")
	}

	f.state = state

	return nil
}

// Update advances the filter by one tick of length t toward target x and
// returns the new value. The target velocity is estimated from the previous
// target by finite difference. t must be > 0.
func (f *Filter) Update(t, x float64) float64 {
	xd := (x - f.state.PreviousTarget) / t
	f.state.PreviousTarget = x

	return f.integrate(t, x, xd)
}

// UpdateWithVelocity is Update with a known target velocity xd. The finite
// difference estimate is skipped and the stored previous target is kept.
func (f *Filter) UpdateWithVelocity(t, x, xd float64) float64 {
	return f.integrate(t, x, xd)
}

func (f *Filter) integrate(t, x, xd float64) float64 {
	k1, k2, _ := f.coeffs.Stable(t)

	s := &f.state
	s.Value += t * s.Velocity
	s.Velocity = core.FlushDenormals(s.Velocity + t*(x+f.coeffs.K3*xd-s.Value-k1*s.Velocity)/k2)

	return s.Value
}

// ProcessTo feeds every target in src through Update with a constant tick t
// and writes the outputs to dst. Both slices must have the same length.
func (f *Filter) ProcessTo(dst, src []float64, t float64) {
	n := len(src)
	if n == 0 {
		return
	}

	_ = dst[n-1]
	for i, x := range src {
		dst[i] = f.Update(t, x)
	}
}
