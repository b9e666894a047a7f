package driver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is wrapped when a mode name cannot be parsed.
var ErrUnknownMode = errors.New("unknown mode")

// UpdateMode selects which host cadence runs a driver.
type UpdateMode int

const (
	// ModeUpdate runs on the variable-step frame hook.
	ModeUpdate UpdateMode = iota
	// ModeFixedUpdate runs on the fixed-step simulation hook.
	ModeFixedUpdate
	// ModeLateUpdate runs on the late frame hook, after other frame work.
	ModeLateUpdate
)

func (m UpdateMode) String() string {
	switch m {
	case ModeUpdate:
		return "update"
	case ModeFixedUpdate:
		return "fixed_update"
	case ModeLateUpdate:
		return "late_update"
	default:
		return "unknown"
	}
}

// ParseUpdateMode parses the names produced by UpdateMode.String.
func ParseUpdateMode(s string) (UpdateMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "update":
		return ModeUpdate, nil
	case "fixed_update", "fixed":
		return ModeFixedUpdate, nil
	case "late_update", "late":
		return ModeLateUpdate, nil
	default:
		return ModeUpdate, fmt.Errorf("driver: %w: update mode %q", ErrUnknownMode, s)
	}
}

func validUpdateMode(m UpdateMode) bool {
	return m >= ModeUpdate && m <= ModeLateUpdate
}

// RotationMode selects whether an Orientation driver leans with velocity.
type RotationMode int

const (
	// RotationDefault follows the target rotation only.
	RotationDefault RotationMode = iota
	// RotationVelocity adds a tilt toward the direction of travel.
	RotationVelocity
)

func (m RotationMode) String() string {
	switch m {
	case RotationDefault:
		return "default"
	case RotationVelocity:
		return "velocity"
	default:
		return "unknown"
	}
}

// ParseRotationMode parses the names produced by RotationMode.String.
func ParseRotationMode(s string) (RotationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return RotationDefault, nil
	case "velocity":
		return RotationVelocity, nil
	default:
		return RotationDefault, fmt.Errorf("driver: %w: rotation mode %q", ErrUnknownMode, s)
	}
}

func validRotationMode(m RotationMode) bool {
	return m == RotationDefault || m == RotationVelocity
}
