package driver

import "github.com/go-gl/mathgl/mgl64"

// PositionSource is anything with a world-space position.
type PositionSource interface {
	Position() mgl64.Vec3
}

// Positioner is a PositionSource whose position can be written.
type Positioner interface {
	PositionSource
	SetPosition(mgl64.Vec3)
}

// RotationSource is anything with a world-space rotation.
type RotationSource interface {
	Rotation() mgl64.Quat
}

// Rotator is a RotationSource whose rotation can be written.
type Rotator interface {
	RotationSource
	SetRotation(mgl64.Quat)
}

// Transform is a minimal mutable entity with a position and a rotation.
// Pointers to it satisfy every entity interface in this package.
type Transform struct {
	Pos mgl64.Vec3
	Rot mgl64.Quat
}

// NewTransform returns a transform at pos with the identity rotation.
func NewTransform(pos mgl64.Vec3) *Transform {
	return &Transform{Pos: pos, Rot: mgl64.QuatIdent()}
}

// Position returns the world-space position.
func (t *Transform) Position() mgl64.Vec3 { return t.Pos }

// SetPosition sets the world-space position.
func (t *Transform) SetPosition(p mgl64.Vec3) { t.Pos = p }

// Rotation returns the world-space rotation.
func (t *Transform) Rotation() mgl64.Quat { return t.Rot }

// SetRotation sets the world-space rotation.
func (t *Transform) SetRotation(q mgl64.Quat) { t.Rot = q }

// InverseTransformDirection converts a world-space direction into the
// transform's local space. Position does not affect directions.
func (t *Transform) InverseTransformDirection(v mgl64.Vec3) mgl64.Vec3 {
	return inverseTransformDirection(t.Rot, v)
}

func inverseTransformDirection(rot mgl64.Quat, v mgl64.Vec3) mgl64.Vec3 {
	if rot.Len() == 0 {
		return v
	}
	return rot.Inverse().Rotate(v)
}
