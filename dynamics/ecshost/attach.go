package ecshost

import (
	"errors"

	"github.com/cwbudde/algo-dynamics/dynamics/driver"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ErrInvalidEntity is returned when a driver is attached to an entity that
// does not exist.
var ErrInvalidEntity = errors.New("ecshost: entity is not valid")

// AttachPosition adds a Position driver to entity that follows target. The
// entity gets a Transform at the origin if it has none. A target that is not
// a live entity leaves the driver idle until Retarget names one.
func AttachPosition(world donburi.World, entity, target donburi.Entity, opts ...driver.Option) (*driver.Position, error) {
	entry, err := prepare(world, entity, target)
	if err != nil {
		return nil, err
	}

	var src driver.PositionSource
	if world.Valid(target) {
		src = EntityTransform{World: world, Entity: target}
	}

	p, err := driver.NewPosition(EntityTransform{World: world, Entity: entity}, src, opts...)
	if err != nil {
		return nil, err
	}

	data := &PositionDriverData{Driver: p}
	if entry.HasComponent(PositionDriver) {
		PositionDriver.Set(entry, data)
	} else {
		donburi.Add(entry, PositionDriver, data)
	}

	return p, nil
}

// AttachOrientation adds an Orientation driver to entity that follows the
// rotation of target. When the entity already carries a Position driver it
// becomes the movement source for velocity tilt; a WithMovement option
// overrides it.
func AttachOrientation(world donburi.World, entity, target donburi.Entity, opts ...driver.Option) (*driver.Orientation, error) {
	entry, err := prepare(world, entity, target)
	if err != nil {
		return nil, err
	}

	if entry.HasComponent(PositionDriver) {
		movement := PositionDriver.Get(entry).Driver
		opts = append([]driver.Option{driver.WithMovement(movement)}, opts...)
	}

	var src driver.RotationSource
	if world.Valid(target) {
		src = EntityTransform{World: world, Entity: target}
	}

	o, err := driver.NewOrientation(EntityTransform{World: world, Entity: entity}, src, opts...)
	if err != nil {
		return nil, err
	}

	data := &OrientationDriverData{Driver: o}
	if entry.HasComponent(OrientationDriver) {
		OrientationDriver.Set(entry, data)
	} else {
		donburi.Add(entry, OrientationDriver, data)
	}

	return o, nil
}

// Retarget points every driver on entity at target.
func Retarget(world donburi.World, entity, target donburi.Entity) error {
	if !world.Valid(entity) {
		return ErrInvalidEntity
	}

	setTarget(world.Entry(entity), target)

	return nil
}

func prepare(world donburi.World, entity, target donburi.Entity) (*donburi.Entry, error) {
	if world == nil || !world.Valid(entity) {
		return nil, ErrInvalidEntity
	}

	entry := world.Entry(entity)
	if !entry.HasComponent(Transform) {
		donburi.Add(entry, Transform, driver.NewTransform(mgl64.Vec3{}))
	}

	setTarget(entry, target)

	return entry, nil
}

func setTarget(entry *donburi.Entry, target donburi.Entity) {
	data := &TargetData{Entity: target}
	if entry.HasComponent(Target) {
		Target.Set(entry, data)
		return
	}

	donburi.Add(entry, Target, data)
}
