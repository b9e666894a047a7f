package driver

import (
	"fmt"

	"github.com/cwbudde/algo-dynamics/dynamics/core"
	"github.com/cwbudde/algo-dynamics/dynamics/filter/secondorder"
	"github.com/go-gl/mathgl/mgl64"
)

// Executor runs one tick of a driver against its live target.
type Executor interface {
	Execute(t float64)
}

// Driver filters a composite value of type T through per-channel
// second-order filters.
//
// Calculate advances the filters toward target by t seconds and returns the
// recomposed result. Execute reads the live target, calls Calculate and
// writes the result to the driven entity.
type Driver[T any] interface {
	Executor
	Calculate(t float64, target T) T
}

var (
	_ Driver[mgl64.Vec3] = (*Position)(nil)
	_ Driver[mgl64.Quat] = (*Orientation)(nil)
)

// base carries what every driver shares: its tuning, its cadence and the
// hooks that route host ticks to Execute.
type base struct {
	tuning  core.Tuning
	mode    UpdateMode
	bank    *secondorder.Bank
	execute func(t float64)
}

// Mode returns the configured host cadence.
func (b *base) Mode() UpdateMode { return b.mode }

// Tuning returns the tuning of the main channels.
func (b *base) Tuning() core.Tuning { return b.tuning }

// Bank exposes the owned channel filters, in channel order.
func (b *base) Bank() *secondorder.Bank { return b.bank }

// Update is the variable-step frame hook.
func (b *base) Update(dt float64) { b.run(ModeUpdate, dt) }

// FixedUpdate is the fixed-step simulation hook.
func (b *base) FixedUpdate(dt float64) { b.run(ModeFixedUpdate, dt) }

// LateUpdate is the late frame hook.
func (b *base) LateUpdate(dt float64) { b.run(ModeLateUpdate, dt) }

// Tick runs the driver if mode matches its configured cadence and dt > 0.
func (b *base) Tick(mode UpdateMode, dt float64) { b.run(mode, dt) }

func (b *base) run(mode UpdateMode, dt float64) {
	if mode != b.mode || !(dt > 0) {
		return
	}
	b.execute(dt)
}

// setTuning validates tuning and pushes it to channels [lo, hi) before
// returning.
func (b *base) setTuning(tuning core.Tuning, lo, hi int) error {
	if err := tuning.Validate(); err != nil {
		return fmt.Errorf("driver: %w", err)
	}

	b.tuning = tuning
	b.bank.UpdateConstantsRange(lo, hi, tuning.Frequency, tuning.Damping, tuning.Response)

	return nil
}
