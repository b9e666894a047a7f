package ecshost

import (
	"github.com/cwbudde/algo-dynamics/dynamics/driver"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// System ticks the drivers of one cadence.
type System struct {
	// Mode selects which drivers run; others are skipped.
	Mode driver.UpdateMode
	// Step is the tick length used by Update.
	Step float64
}

// Tick advances every matching driver in world by dt seconds. Position
// drivers run before orientation drivers. Each driver is pointed at the
// current Target entity first, or detached if that entity is gone.
func (s System) Tick(world donburi.World, dt float64) {
	PositionDriver.Each(world, func(entry *donburi.Entry) {
		d := PositionDriver.Get(entry).Driver
		if d == nil {
			return
		}

		if src, ok := resolveTarget(world, entry); ok {
			d.SetTarget(src)
		} else {
			d.SetTarget(nil)
		}

		d.Tick(s.Mode, dt)
	})

	OrientationDriver.Each(world, func(entry *donburi.Entry) {
		d := OrientationDriver.Get(entry).Driver
		if d == nil {
			return
		}

		if src, ok := resolveTarget(world, entry); ok {
			d.SetTarget(src)
		} else {
			d.SetTarget(nil)
		}

		d.Tick(s.Mode, dt)
	})
}

// Update ticks the ECS world by Step. It has the ecs.System signature.
func (s System) Update(e *ecs.ECS) {
	s.Tick(e.World, s.Step)
}

func resolveTarget(world donburi.World, entry *donburi.Entry) (EntityTransform, bool) {
	if !entry.HasComponent(Target) {
		return EntityTransform{}, false
	}

	target := Target.Get(entry).Entity
	if !world.Valid(target) {
		return EntityTransform{}, false
	}

	return EntityTransform{World: world, Entity: target}, true
}
