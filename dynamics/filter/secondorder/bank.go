package secondorder

import "github.com/cwbudde/algo-dynamics/dynamics/core"

// Bank is an ordered, fixed-size set of independent filters, one per
// channel. Channel order is stable for the lifetime of the bank.
type Bank struct {
	channels []*Filter
}

// NewBank returns one filter per seed, all tuned to (f, zeta, r).
func NewBank(f, zeta, r float64, seeds ...float64) *Bank {
	channels := make([]*Filter, len(seeds))
	for i, x0 := range seeds {
		channels[i] = New(f, zeta, r, x0)
	}

	return &Bank{channels: channels}
}

// NewBankWithTuning is NewBank taking a [core.Tuning].
func NewBankWithTuning(tuning core.Tuning, seeds ...float64) *Bank {
	return NewBank(tuning.Frequency, tuning.Damping, tuning.Response, seeds...)
}

// Append adds a channel tuned independently of the existing ones and returns
// its index.
func (b *Bank) Append(f, zeta, r, x0 float64) int {
	b.channels = append(b.channels, New(f, zeta, r, x0))
	return len(b.channels) - 1
}

// Len returns the channel count.
func (b *Bank) Len() int { return len(b.channels) }

// Channel returns the filter for channel i.
func (b *Bank) Channel(i int) *Filter { return b.channels[i] }

// UpdateConstants re-derives every channel's coefficients.
func (b *Bank) UpdateConstants(f, zeta, r float64) {
	b.UpdateConstantsRange(0, len(b.channels), f, zeta, r)
}

// UpdateConstantsRange re-derives coefficients of channels [lo, hi).
func (b *Bank) UpdateConstantsRange(lo, hi int, f, zeta, r float64) {
	for _, ch := range b.channels[lo:hi] {
		ch.UpdateConstants(f, zeta, r)
	}
}

// Update advances channel i toward targets[i] for i < len(targets) and
// writes the outputs into dst. dst must be at least as long as targets.
func (b *Bank) Update(t float64, dst, targets []float64) {
	n := len(targets)
	if n == 0 {
		return
	}

	_ = dst[n-1]
	for i, x := range targets {
		dst[i] = b.channels[i].Update(t, x)
	}
}

// Values writes the current value of the first len(dst) channels into dst.
// dst must not be longer than Len().
func (b *Bank) Values(dst []float64) {
	for i, ch := range b.channels[:len(dst)] {
		dst[i] = ch.Value()
	}
}

// Velocities writes the current velocity of the first len(dst) channels
// into dst.
func (b *Bank) Velocities(dst []float64) {
	for i, ch := range b.channels[:len(dst)] {
		dst[i] = ch.Velocity()
	}
}

// IsMoving reports whether any channel has a nonzero velocity.
func (b *Bank) IsMoving() bool {
	return b.IsMovingRange(0, len(b.channels))
}

// IsMovingRange reports whether any channel in [lo, hi) has a nonzero
// velocity.
func (b *Bank) IsMovingRange(lo, hi int) bool {
	for _, ch := range b.channels[lo:hi] {
		if ch.Velocity() != 0 {
			return true
		}
	}
	return false
}
