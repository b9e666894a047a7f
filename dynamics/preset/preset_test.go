package preset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-dynamics/dynamics/core"
	"github.com/cwbudde/algo-dynamics/dynamics/driver"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
profiles:
  camera:
    frequency: 1.5
    damping: 0.8
    response: 0
    update_mode: late_update
  hover:
    frequency: 2
    damping: 0.4
    rotation_mode: velocity
    tilt:
      angle: 20
      spring: {frequency: 1.5, damping: 0.6, response: 1}
      dead_speed: 0.25
`

func TestLoadAppliesDefaults(t *testing.T) {
	set, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"camera", "hover"}, set.Names())

	camera, err := set.Profile("camera")
	require.NoError(t, err)
	assert.Equal(t, core.Tuning{Frequency: 1.5, Damping: 0.8, Response: 0}, camera.Tuning())
	assert.Equal(t, "late_update", camera.UpdateMode)
	assert.Equal(t, "default", camera.RotationMode)
	assert.Equal(t, driver.DefaultSettleEpsilon, camera.SettleEpsilon)
	assert.Equal(t, driver.DefaultTiltConfig(), camera.TiltConfig())

	hover, err := set.Profile("hover")
	require.NoError(t, err)
	assert.Equal(t, 2.0, hover.Response, "unset response keeps the default")

	tilt := hover.TiltConfig()
	assert.Equal(t, 20.0, tilt.Angle)
	assert.Equal(t, core.Tuning{Frequency: 1.5, Damping: 0.6, Response: 1}, tilt.Spring)
	assert.Equal(t, 0.25, tilt.DeadSpeed)
	assert.Equal(t, driver.DefaultTiltConfig().SmoothingHz, tilt.SmoothingHz)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{name: "empty", doc: "", is: ErrNoProfiles},
		{name: "no profiles", doc: "profiles: {}\n", is: ErrNoProfiles},
		{name: "bad update mode", doc: "profiles:\n  a:\n    update_mode: sometimes\n", is: ErrUnknownMode},
		{name: "bad rotation mode", doc: "profiles:\n  a:\n    rotation_mode: spin\n", is: ErrUnknownMode},
		{name: "zero frequency", doc: "profiles:\n  a:\n    frequency: 0\n", is: core.ErrInvalidTuning},
		{name: "bad tilt spring", doc: "profiles:\n  a:\n    tilt:\n      spring: {damping: -1}\n", is: core.ErrInvalidTuning},
		{name: "unknown key", doc: "profiles:\n  a:\n    frequncy: 2\n"},
		{name: "unknown nested key", doc: "profiles:\n  a:\n    tilt:\n      angel: 3\n"},
		{name: "negative settle", doc: "profiles:\n  a:\n    settle_epsilon: -1\n"},
		{name: "negative tilt angle", doc: "profiles:\n  a:\n    tilt:\n      angle: -5\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set, err := Load(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Nil(t, set)

			if tc.is != nil {
				assert.True(t, errors.Is(err, tc.is), "got %v", err)
			}
		})
	}
}

func TestUnknownProfile(t *testing.T) {
	set, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	_, err = set.Profile("missing")
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	set, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, set.Profiles, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptionsBuildDrivers(t *testing.T) {
	set, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	hover, err := set.Profile("hover")
	require.NoError(t, err)

	opts, err := hover.Options()
	require.NoError(t, err)

	body := driver.NewTransform(mgl64.Vec3{})
	goal := driver.NewTransform(mgl64.Vec3{1, 0, 0})

	mv, err := driver.NewPosition(body, goal, opts...)
	require.NoError(t, err)
	assert.Equal(t, hover.Tuning(), mv.Tuning())
	assert.Equal(t, driver.ModeUpdate, mv.Mode())

	rot, err := driver.NewOrientation(body, goal, append(opts, driver.WithMovement(mv))...)
	require.NoError(t, err)
	assert.Equal(t, driver.RotationVelocity, rot.RotationMode())
	assert.Equal(t, hover.TiltConfig(), rot.TiltConfig())

	camera, err := set.Profile("camera")
	require.NoError(t, err)

	opts, err = camera.Options()
	require.NoError(t, err)

	cam, err := driver.NewPosition(body, goal, opts...)
	require.NoError(t, err)
	assert.Equal(t, driver.ModeLateUpdate, cam.Mode())
}
