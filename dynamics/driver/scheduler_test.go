package driver

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rig struct {
	body *Transform
	mv   *Position
	rot  *Orientation
}

func newRig(t *testing.T, i int) rig {
	t.Helper()

	body := NewTransform(mgl64.Vec3{float64(i), 0, 0})
	goal := &Transform{Pos: mgl64.Vec3{float64(i) + 20, 5, -3}, Rot: yaw(float64(10 * i))}

	mv, err := NewPosition(body, goal)
	require.NoError(t, err)

	rot, err := NewOrientation(body, goal, WithRotationMode(RotationVelocity), WithMovement(mv))
	require.NoError(t, err)

	return rig{body: body, mv: mv, rot: rot}
}

func TestSchedulerMatchesSequentialTicks(t *testing.T) {
	const n = 16

	sched := NewScheduler(4)
	parallel := make([]rig, n)
	serial := make([]rig, n)
	for i := range n {
		parallel[i] = newRig(t, i)
		serial[i] = newRig(t, i)

		sched.Add(PhaseOrientation, parallel[i].rot)
		sched.Add(PhaseMovement, parallel[i].mv)
	}
	assert.Equal(t, 2*n, sched.Len())

	for tick := 0; tick < 120; tick++ {
		require.NoError(t, sched.Tick(ModeUpdate, 1.0/60))
		for _, r := range serial {
			r.mv.Execute(1.0 / 60)
			r.rot.Execute(1.0 / 60)
		}
	}

	for i := range n {
		assert.Equal(t, serial[i].body.Pos, parallel[i].body.Pos, "rig %d position", i)
		assert.Equal(t, serial[i].body.Rot, parallel[i].body.Rot, "rig %d rotation", i)
	}
}

func TestSchedulerSkipsOtherModesAndEmptyTicks(t *testing.T) {
	body := NewTransform(mgl64.Vec3{})
	goal := NewTransform(mgl64.Vec3{3, 0, 0})

	mv, err := NewPosition(body, goal, WithUpdateMode(ModeLateUpdate))
	require.NoError(t, err)

	sched := NewScheduler(0)
	sched.Add(-1, mv)

	require.NoError(t, sched.Tick(ModeUpdate, 0.1))
	require.NoError(t, sched.Tick(ModeLateUpdate, 0))
	assert.False(t, mv.IsMoving())

	require.NoError(t, sched.Tick(ModeLateUpdate, 0.1))
	assert.True(t, mv.IsMoving())
}

type panicker struct{}

func (panicker) Execute(float64) { panic("boom") }
func (panicker) Mode() UpdateMode { return ModeUpdate }

func TestSchedulerReportsPanickingDriver(t *testing.T) {
	body := NewTransform(mgl64.Vec3{})
	goal := NewTransform(mgl64.Vec3{3, 0, 0})

	mv, err := NewPosition(body, goal)
	require.NoError(t, err)

	sched := NewScheduler(0)
	sched.Add(PhaseMovement, panicker{})
	sched.Add(PhaseOrientation, mv)

	err = sched.Tick(ModeUpdate, 0.1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.False(t, mv.IsMoving(), "later phases must not run")
}
