package ecshost

import (
	"github.com/cwbudde/algo-dynamics/dynamics/driver"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PositionDriverData holds the Position driver of an entity.
type PositionDriverData struct {
	Driver *driver.Position
}

// OrientationDriverData holds the Orientation driver of an entity.
type OrientationDriverData struct {
	Driver *driver.Orientation
}

// TargetData names the entity whose Transform the drivers follow.
type TargetData struct {
	Entity donburi.Entity
}

var (
	Transform         = donburi.NewComponentType[driver.Transform]()
	PositionDriver    = donburi.NewComponentType[PositionDriverData]()
	OrientationDriver = donburi.NewComponentType[OrientationDriverData]()
	Target            = donburi.NewComponentType[TargetData]()
)

// EntityTransform is a live reference to the Transform component of an
// entity. A missing entity or component reads as the origin with the
// identity rotation, and writes to it are dropped.
type EntityTransform struct {
	World  donburi.World
	Entity donburi.Entity
}

func (t EntityTransform) lookup() *driver.Transform {
	if t.World == nil || !t.World.Valid(t.Entity) {
		return nil
	}

	entry := t.World.Entry(t.Entity)
	if !entry.HasComponent(Transform) {
		return nil
	}

	return Transform.Get(entry)
}

// Position returns the entity position.
func (t EntityTransform) Position() mgl64.Vec3 {
	if tr := t.lookup(); tr != nil {
		return tr.Pos
	}
	return mgl64.Vec3{}
}

// SetPosition writes the entity position.
func (t EntityTransform) SetPosition(p mgl64.Vec3) {
	if tr := t.lookup(); tr != nil {
		tr.Pos = p
	}
}

// Rotation returns the entity rotation.
func (t EntityTransform) Rotation() mgl64.Quat {
	if tr := t.lookup(); tr != nil {
		return tr.Rot
	}
	return mgl64.QuatIdent()
}

// SetRotation writes the entity rotation.
func (t EntityTransform) SetRotation(q mgl64.Quat) {
	if tr := t.lookup(); tr != nil {
		tr.Rot = q
	}
}
