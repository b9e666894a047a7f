package driver

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dynamics/dynamics/core"
	"github.com/go-gl/mathgl/mgl64"
)

// dirZeroSq is the squared length below which the smoothed direction counts
// as unset.
const dirZeroSq = 1e-10

// TiltConfig shapes how an Orientation driver leans with velocity.
type TiltConfig struct {
	// Angle is the largest lean in degrees, reached at MaxSpeedForFullTilt.
	Angle float64
	// Spring tunes the two tilt filters.
	Spring core.Tuning
	// DeadSpeed is the speed below which there is no travel direction.
	DeadSpeed float64
	// SwitchSpeed must be exceeded before the direction may flip by more
	// than 90 degrees.
	SwitchSpeed float64
	// SmoothingHz is the rate of the direction low-pass.
	SmoothingHz float64
	// MaxSpeedForFullTilt is the speed at which the lean reaches Angle.
	MaxSpeedForFullTilt float64
}

// DefaultTiltConfig returns a 30 degree lean with a lively spring.
func DefaultTiltConfig() TiltConfig {
	return TiltConfig{
		Angle:               30,
		Spring:              core.Tuning{Frequency: 1, Damping: 0.5, Response: 2},
		DeadSpeed:           0.1,
		SwitchSpeed:         1,
		SmoothingHz:         8,
		MaxSpeedForFullTilt: 10,
	}
}

// Validate reports whether the configuration is usable.
func (c TiltConfig) Validate() error {
	if err := c.Spring.Validate(); err != nil {
		return fmt.Errorf("driver: tilt spring: %w", err)
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"tilt angle", c.Angle},
		{"dead speed", c.DeadSpeed},
		{"switch speed", c.SwitchSpeed},
		{"direction smoothing", c.SmoothingHz},
		{"max speed for full tilt", c.MaxSpeedForFullTilt},
	}
	for _, f := range fields {
		if err := validateFiniteRange(f.value, 0, math.Inf(1), f.name); err != nil {
			return err
		}
	}

	return nil
}

// stepTilt advances the direction low-pass and the tilt filters by t seconds
// and returns the lean as a rotation about the local x (pitch) and z (roll)
// axes.
func (o *Orientation) stepTilt(t float64) mgl64.Quat {
	vLocal := inverseTransformDirection(o.driven.Rotation(), o.movement.Velocity())

	v2 := mgl64.Vec2{vLocal[0], vLocal[2]}
	speed := v2.Len()

	var desired mgl64.Vec2
	if speed > o.tilt.DeadSpeed {
		desired = v2.Mul(1 / speed)
	}

	o.smoothDirection(t, desired, speed)

	k := core.InverseLerp(o.tilt.DeadSpeed, o.tilt.MaxSpeedForFullTilt, speed)
	angle := o.tilt.Angle

	pitch := o.bank.Channel(channelPitch).Update(t, o.dir[1]*angle*k)
	roll := o.bank.Channel(channelRoll).Update(t, o.dir[0]*angle*k)

	o.pitch = core.Clamp(pitch, -angle, angle)
	o.roll = core.Clamp(roll, -angle, angle)

	return euler(o.pitch, o.roll)
}

// smoothDirection low-passes dir toward desired. A flip of more than 90
// degrees is held back until speed exceeds SwitchSpeed.
func (o *Orientation) smoothDirection(t float64, desired mgl64.Vec2, speed float64) {
	if o.dir.LenSqr() < dirZeroSq {
		o.dir = desired
	}

	wantsFlip := o.dir.Dot(desired) < 0
	if wantsFlip && speed <= o.tilt.SwitchSpeed {
		return
	}

	a := 1 - math.Exp(-o.tilt.SmoothingHz*t)
	o.dir = o.dir.Add(desired.Sub(o.dir).Mul(a))
}

// euler builds the lean rotation from pitch (about x) and roll (about z) in
// degrees, applying roll first.
func euler(pitch, roll float64) mgl64.Quat {
	qx := mgl64.QuatRotate(mgl64.DegToRad(pitch), mgl64.Vec3{1, 0, 0})
	qz := mgl64.QuatRotate(mgl64.DegToRad(roll), mgl64.Vec3{0, 0, 1})

	return qx.Mul(qz)
}
