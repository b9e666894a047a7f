package driver

import (
	"testing"

	"github.com/cwbudde/algo-dynamics/dynamics/core"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder counts position writes.
type recorder struct {
	Transform
	writes int
}

func (r *recorder) SetPosition(p mgl64.Vec3) {
	r.writes++
	r.Transform.SetPosition(p)
}

func TestNewPositionValidation(t *testing.T) {
	_, err := NewPosition(nil, nil)
	require.Error(t, err)

	body := NewTransform(mgl64.Vec3{})
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero frequency", WithFrequency(0)},
		{"negative damping", WithDamping(-0.5)},
		{"nan response", WithResponse(nanValue())},
		{"bad mode", WithUpdateMode(UpdateMode(7))},
		{"negative settle", WithSettleEpsilon(-1)},
		{"bad tuning", WithTuning(core.Tuning{Frequency: -1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPosition(body, nil, tt.opt)
			assert.Error(t, err)
		})
	}
}

func TestPositionSeedsFromDriven(t *testing.T) {
	body := NewTransform(mgl64.Vec3{1, 2, 3})
	p, err := NewPosition(body, nil)
	require.NoError(t, err)

	assert.Equal(t, mgl64.Vec3{1, 2, 3}, p.Value())
	assert.False(t, p.IsMoving())
	assert.Equal(t, core.DefaultTuning(), p.Tuning())
}

func TestPositionFreezeLeavesDrivenUntouched(t *testing.T) {
	body := &recorder{Transform: Transform{Pos: mgl64.Vec3{0.1, -2.5, 7.25}, Rot: mgl64.QuatIdent()}}
	goal := NewTransform(body.Pos)

	p, err := NewPosition(body, goal)
	require.NoError(t, err)

	before := body.Pos
	for i := 0; i < 10; i++ {
		p.Execute(1.0 / 60)
	}

	assert.Equal(t, 0, body.writes)
	assert.Equal(t, before, body.Pos)
}

func TestPositionNoTargetIsNoop(t *testing.T) {
	body := &recorder{Transform: Transform{Rot: mgl64.QuatIdent()}}
	p, err := NewPosition(body, nil)
	require.NoError(t, err)

	p.Execute(1.0 / 60)
	assert.Equal(t, 0, body.writes)

	p.SetTarget(NewTransform(mgl64.Vec3{5, 0, 0}))
	p.Execute(1.0 / 60)
	assert.Equal(t, 1, body.writes)
	assert.True(t, p.IsMoving())
}

func TestPositionConvergesOnTarget(t *testing.T) {
	body := NewTransform(mgl64.Vec3{})
	goal := NewTransform(mgl64.Vec3{10, -4, 2})

	p, err := NewPosition(body, goal, WithFrequency(2), WithDamping(1), WithResponse(0))
	require.NoError(t, err)

	for i := 0; i < 600; i++ {
		p.Execute(1.0 / 60)
	}

	assert.InDelta(t, 0, body.Pos.Sub(goal.Pos).Len(), 1e-3)
	assert.InDelta(t, 0, p.Velocity().Len(), 1e-3)
}

func TestPositionFollowsMovingTarget(t *testing.T) {
	body := NewTransform(mgl64.Vec3{})
	goal := NewTransform(mgl64.Vec3{})

	p, err := NewPosition(body, goal, WithFrequency(3), WithDamping(1), WithResponse(2))
	require.NoError(t, err)

	for i := 1; i <= 300; i++ {
		goal.Pos = mgl64.Vec3{float64(i) / 60, 0, 0}
		p.Execute(1.0 / 60)
	}

	// r == 2 makes K3 == K1, which cancels the steady ramp lag.
	assert.InDelta(t, goal.Pos[0], body.Pos[0], 1e-3)
	assert.Greater(t, p.Velocity()[0], 0.5)
}

func TestPositionUndampedStaysFinite(t *testing.T) {
	body := NewTransform(mgl64.Vec3{})
	goal := NewTransform(mgl64.Vec3{1, 0, 0})

	p, err := NewPosition(body, goal, WithDamping(0))
	require.NoError(t, err)

	for i := 0; i < 600; i++ {
		p.Execute(1.0 / 60)

		for axis := range 3 {
			require.True(t, core.IsFinite(body.Pos[axis]), "tick %d axis %d: %v", i, axis, body.Pos)
			require.True(t, core.IsFinite(p.Velocity()[axis]), "tick %d axis %d velocity", i, axis)
		}
		require.LessOrEqual(t, body.Pos.Len(), 2.5)
	}

	assert.True(t, p.IsMoving(), "an undamped driver keeps oscillating")
}

func TestPositionHooksRespectMode(t *testing.T) {
	body := &recorder{Transform: Transform{Rot: mgl64.QuatIdent()}}
	goal := NewTransform(mgl64.Vec3{1, 1, 1})

	p, err := NewPosition(body, goal, WithUpdateMode(ModeFixedUpdate))
	require.NoError(t, err)
	assert.Equal(t, ModeFixedUpdate, p.Mode())

	p.Update(0.02)
	p.LateUpdate(0.02)
	assert.Equal(t, 0, body.writes)

	p.FixedUpdate(0)
	p.FixedUpdate(-1)
	assert.Equal(t, 0, body.writes)

	p.FixedUpdate(0.02)
	assert.Equal(t, 1, body.writes)

	p.Tick(ModeFixedUpdate, 0.02)
	assert.Equal(t, 2, body.writes)
}

func TestPositionSetTuning(t *testing.T) {
	body := NewTransform(mgl64.Vec3{})
	goal := NewTransform(mgl64.Vec3{3, 0, 0})
	p, err := NewPosition(body, goal)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		p.Execute(0.02)
	}
	vel := p.Velocity()
	val := p.Value()

	require.Error(t, p.SetTuning(core.Tuning{Frequency: 0, Damping: 1}))
	assert.Equal(t, core.DefaultTuning(), p.Tuning())

	next := core.Tuning{Frequency: 4, Damping: 0.9, Response: 0}
	require.NoError(t, p.SetTuning(next))
	assert.Equal(t, next, p.Tuning())
	assert.Equal(t, vel, p.Velocity())
	assert.Equal(t, val, p.Value())

	for i := 0; i < p.Bank().Len(); i++ {
		assert.Equal(t, next, p.Bank().Channel(i).Tuning())
	}
}
