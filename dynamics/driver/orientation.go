package driver

import (
	"fmt"

	"github.com/cwbudde/algo-dynamics/dynamics/core"
	"github.com/cwbudde/algo-dynamics/dynamics/filter/secondorder"
	"github.com/go-gl/mathgl/mgl64"
)

// Channel layout of an Orientation bank. The tilt channels exist only in
// RotationVelocity mode.
const (
	channelX = iota
	channelY
	channelZ
	channelW
	channelPitch
	channelRoll
)

// Orientation drives an entity's rotation toward a target's rotation with one
// filter per quaternion component. In RotationVelocity mode it also leans the
// result toward the direction of travel of an attached Position driver.
type Orientation struct {
	base

	driven Rotator
	target RotationSource

	rotationMode RotationMode
	movement     *Position
	tilt         TiltConfig

	dir         mgl64.Vec2
	pitch, roll float64
}

// NewOrientation returns an Orientation driver. The quaternion channels are
// seeded from the target's rotation when a target is given, otherwise from
// the driven entity's rotation.
func NewOrientation(driven Rotator, target RotationSource, opts ...Option) (*Orientation, error) {
	if driven == nil {
		return nil, errNoDriven
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	seed := driven.Rotation()
	if target != nil {
		seed = target.Rotation()
	}

	o := &Orientation{
		base: base{
			tuning: cfg.tuning,
			mode:   cfg.updateMode,
			bank: secondorder.NewBankWithTuning(cfg.tuning,
				seed.V[0], seed.V[1], seed.V[2], seed.W),
		},
		driven:       driven,
		target:       target,
		rotationMode: cfg.rotationMode,
		movement:     cfg.movement,
		tilt:         cfg.tilt,
	}
	o.execute = o.Execute

	if o.rotationMode == RotationVelocity {
		s := cfg.tilt.Spring
		o.bank.Append(s.Frequency, s.Damping, s.Response, 0)
		o.bank.Append(s.Frequency, s.Damping, s.Response, 0)
	}

	return o, nil
}

// Target returns the tracked entity, or nil.
func (o *Orientation) Target() RotationSource { return o.target }

// SetTarget assigns the tracked entity. nil detaches it.
func (o *Orientation) SetTarget(target RotationSource) { o.target = target }

// RotationMode returns the configured rotation mode.
func (o *Orientation) RotationMode() RotationMode { return o.rotationMode }

// Movement returns the Position driver feeding the tilt, or nil.
func (o *Orientation) Movement() *Position { return o.movement }

// SetMovement attaches or detaches the Position driver feeding the tilt.
func (o *Orientation) SetMovement(movement *Position) { o.movement = movement }

// TiltConfig returns the current tilt configuration.
func (o *Orientation) TiltConfig() TiltConfig { return o.tilt }

// SetTuning validates tuning and re-derives the four quaternion filters before
// returning. The tilt filters keep their own spring.
func (o *Orientation) SetTuning(tuning core.Tuning) error {
	return o.setTuning(tuning, channelX, channelW+1)
}

// SetTilt replaces the tilt configuration and re-derives the tilt filters
// from its spring. Filter state is kept.
func (o *Orientation) SetTilt(tilt TiltConfig) error {
	if err := tilt.Validate(); err != nil {
		return err
	}

	o.tilt = tilt
	if o.bank.Len() > channelRoll {
		s := tilt.Spring
		o.bank.UpdateConstantsRange(channelPitch, channelRoll+1, s.Frequency, s.Damping, s.Response)
	}

	return nil
}

// SetTiltSpring re-derives only the tilt filters.
func (o *Orientation) SetTiltSpring(spring core.Tuning) error {
	if err := spring.Validate(); err != nil {
		return fmt.Errorf("driver: tilt spring: %w", err)
	}

	tilt := o.tilt
	tilt.Spring = spring

	return o.SetTilt(tilt)
}

// Calculate advances the filters toward target by t seconds and returns the
// filtered, normalized rotation including any tilt.
func (o *Orientation) Calculate(t float64, target mgl64.Quat) mgl64.Quat {
	if target.Dot(o.Value()) < 0 {
		target = target.Scale(-1)
	}

	result := mgl64.Quat{
		V: mgl64.Vec3{
			o.bank.Channel(channelX).Update(t, target.V[0]),
			o.bank.Channel(channelY).Update(t, target.V[1]),
			o.bank.Channel(channelZ).Update(t, target.V[2]),
		},
		W: o.bank.Channel(channelW).Update(t, target.W),
	}.Normalize()

	if o.rotationMode == RotationVelocity && o.movement != nil {
		result = result.Mul(o.stepTilt(t))
	}

	return result.Normalize()
}

// Execute rotates the driven entity one tick toward the target. It does
// nothing without a target.
func (o *Orientation) Execute(t float64) {
	if o.target == nil {
		return
	}

	o.driven.SetRotation(o.Calculate(t, o.target.Rotation()))
}

// Value returns the raw quaternion channel values, which are not normalized.
func (o *Orientation) Value() mgl64.Quat {
	return mgl64.Quat{
		V: mgl64.Vec3{
			o.bank.Channel(channelX).Value(),
			o.bank.Channel(channelY).Value(),
			o.bank.Channel(channelZ).Value(),
		},
		W: o.bank.Channel(channelW).Value(),
	}
}

// Tilt returns the most recent clamped pitch and roll in degrees.
func (o *Orientation) Tilt() (pitch, roll float64) { return o.pitch, o.roll }

// Direction returns the smoothed local travel direction on the x/z plane.
func (o *Orientation) Direction() mgl64.Vec2 { return o.dir }
