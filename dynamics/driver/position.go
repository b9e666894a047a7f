package driver

import (
	"errors"

	"github.com/cwbudde/algo-dynamics/dynamics/core"
	"github.com/cwbudde/algo-dynamics/dynamics/filter/secondorder"
	"github.com/go-gl/mathgl/mgl64"
)

var errNoDriven = errors.New("driver: driven entity is required")

// Position drives an entity's position toward a target's position with one
// filter per axis.
type Position struct {
	base

	driven Positioner
	target PositionSource

	settleEpsilon float64
}

// NewPosition returns a Position driver seeded at driven's current position.
// target may be nil; the driver idles until one is assigned.
func NewPosition(driven Positioner, target PositionSource, opts ...Option) (*Position, error) {
	if driven == nil {
		return nil, errNoDriven
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	p0 := driven.Position()

	p := &Position{
		base: base{
			tuning: cfg.tuning,
			mode:   cfg.updateMode,
			bank:   secondorder.NewBankWithTuning(cfg.tuning, p0[0], p0[1], p0[2]),
		},
		driven:        driven,
		target:        target,
		settleEpsilon: cfg.settleEpsilon,
	}
	p.execute = p.Execute

	return p, nil
}

// Target returns the tracked entity, or nil.
func (p *Position) Target() PositionSource { return p.target }

// SetTarget assigns the tracked entity. nil detaches it.
func (p *Position) SetTarget(target PositionSource) { p.target = target }

// SetTuning validates tuning and re-derives all three axis filters before
// returning. Filter state is kept.
func (p *Position) SetTuning(tuning core.Tuning) error {
	return p.setTuning(tuning, 0, 3)
}

// Calculate advances the axis filters toward target by t seconds and returns
// the filtered position.
func (p *Position) Calculate(t float64, target mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		p.bank.Channel(0).Update(t, target[0]),
		p.bank.Channel(1).Update(t, target[1]),
		p.bank.Channel(2).Update(t, target[2]),
	}
}

// Execute moves the driven entity one tick toward the target. It does nothing
// without a target, and nothing once the filters are at rest within the
// settle distance of the target.
func (p *Position) Execute(t float64) {
	if p.target == nil {
		return
	}

	goal := p.target.Position()
	if !p.IsMoving() && p.settled(goal) {
		return
	}

	p.driven.SetPosition(p.Calculate(t, goal))
}

// IsMoving reports whether any axis filter has a nonzero velocity.
func (p *Position) IsMoving() bool {
	return p.bank.IsMoving()
}

// Velocity returns the world-space velocity of the filtered position.
func (p *Position) Velocity() mgl64.Vec3 {
	return mgl64.Vec3{
		p.bank.Channel(0).Velocity(),
		p.bank.Channel(1).Velocity(),
		p.bank.Channel(2).Velocity(),
	}
}

// Value returns the current filtered position.
func (p *Position) Value() mgl64.Vec3 {
	return mgl64.Vec3{
		p.bank.Channel(0).Value(),
		p.bank.Channel(1).Value(),
		p.bank.Channel(2).Value(),
	}
}

func (p *Position) settled(goal mgl64.Vec3) bool {
	return p.driven.Position().Sub(goal).LenSqr() < p.settleEpsilon*p.settleEpsilon
}
