package driver

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dynamics/dynamics/core"
)

// DefaultSettleEpsilon is the distance below which a resting Position driver
// counts as settled on its target.
const DefaultSettleEpsilon = 0.1

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	tuning        core.Tuning
	updateMode    UpdateMode
	settleEpsilon float64

	rotationMode RotationMode
	movement     *Position
	tilt         TiltConfig
}

func defaultConfig() config {
	return config{
		tuning:        core.DefaultTuning(),
		updateMode:    ModeUpdate,
		settleEpsilon: DefaultSettleEpsilon,
		rotationMode:  RotationDefault,
		tilt:          DefaultTiltConfig(),
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	return cfg, nil
}

// WithFrequency sets the natural frequency in Hz. Must be finite and > 0.
func WithFrequency(hz float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(hz) || hz <= 0 {
			return fmt.Errorf("driver: frequency must be > 0 and finite: %f", hz)
		}

		cfg.tuning.Frequency = hz

		return nil
	}
}

// WithDamping sets the damping ratio. Must be finite and >= 0.
func WithDamping(zeta float64) Option {
	return func(cfg *config) error {
		if err := validateFiniteRange(zeta, 0, math.Inf(1), "damping"); err != nil {
			return err
		}

		cfg.tuning.Damping = zeta

		return nil
	}
}

// WithResponse sets the initial-response factor. Must be finite.
func WithResponse(r float64) Option {
	return func(cfg *config) error {
		if err := validateFiniteRange(r, math.Inf(-1), math.Inf(1), "response"); err != nil {
			return err
		}

		cfg.tuning.Response = r

		return nil
	}
}

// WithTuning sets frequency, damping and response at once.
func WithTuning(tuning core.Tuning) Option {
	return func(cfg *config) error {
		if err := tuning.Validate(); err != nil {
			return fmt.Errorf("driver: %w", err)
		}

		cfg.tuning = tuning

		return nil
	}
}

// WithUpdateMode selects the host cadence the driver runs on.
func WithUpdateMode(mode UpdateMode) Option {
	return func(cfg *config) error {
		if !validUpdateMode(mode) {
			return fmt.Errorf("driver: invalid update mode: %d", mode)
		}

		cfg.updateMode = mode

		return nil
	}
}

// WithSettleEpsilon sets the settle distance of a Position driver.
// Must be finite and >= 0; 0 disables freezing.
func WithSettleEpsilon(eps float64) Option {
	return func(cfg *config) error {
		if err := validateFiniteRange(eps, 0, math.Inf(1), "settle epsilon"); err != nil {
			return err
		}

		cfg.settleEpsilon = eps

		return nil
	}
}

// WithRotationMode selects plain or velocity-tilted orientation.
func WithRotationMode(mode RotationMode) Option {
	return func(cfg *config) error {
		if !validRotationMode(mode) {
			return fmt.Errorf("driver: invalid rotation mode: %d", mode)
		}

		cfg.rotationMode = mode

		return nil
	}
}

// WithMovement attaches the Position driver whose velocity feeds the tilt.
// The orientation driver only reads it.
func WithMovement(movement *Position) Option {
	return func(cfg *config) error {
		cfg.movement = movement
		return nil
	}
}

// WithTilt sets the tilt configuration used in RotationVelocity mode.
func WithTilt(tilt TiltConfig) Option {
	return func(cfg *config) error {
		if err := tilt.Validate(); err != nil {
			return err
		}

		cfg.tilt = tilt

		return nil
	}
}

func validateFiniteRange(value, min, max float64, name string) error {
	if !core.IsFinite(value) {
		return fmt.Errorf("driver: %s must be finite: %v", name, value)
	}

	if value < min || value > max {
		return fmt.Errorf("driver: %s must be in [%g, %g]: %f", name, min, max, value)
	}

	return nil
}
