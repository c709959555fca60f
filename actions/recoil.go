package actions

import (
	"errors"
	"math"

	"github.com/automoto/doomerang-arsenal/components"
	"github.com/automoto/doomerang-arsenal/weapon"
)

// Recoil pushes the owner away from where the hand points.
type Recoil struct {
	Force float64 `yaml:"force"`
	Lift  float64 `yaml:"lift"`
	Max   float64 `yaml:"max"` // cap on the owner's horizontal speed after the push
}

func newRecoil(p weapon.Params) (weapon.Action, error) {
	a := &Recoil{Max: 12}
	if err := p.Decode(a); err != nil {
		return nil, err
	}
	if a.Force <= 0 {
		return nil, errors.New("force must be > 0")
	}
	if a.Max <= 0 {
		return nil, errors.New("max must be > 0")
	}
	return a, nil
}

func (a *Recoil) Execute(ctx weapon.Context, b *weapon.InputBinding, _ *weapon.ActionBinding) error {
	h, err := hostOf(ctx)
	if err != nil {
		return err
	}
	owner := h.Entry()
	if owner == nil || !owner.Valid() || !owner.HasComponent(components.Physics) {
		return ErrNoOwner
	}
	dir := 1.0
	if list := anchors(ctx, b.Hand); len(list) > 0 {
		dir = facing(list[0])
	}
	physics := components.Physics.Get(owner)
	physics.SpeedX -= dir * a.Force
	physics.SpeedX = math.Max(-a.Max, math.Min(a.Max, physics.SpeedX))
	physics.SpeedY -= a.Lift
	return nil
}
