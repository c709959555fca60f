package actions

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/automoto/doomerang-arsenal/weapon"
	"github.com/yohamta/donburi"
)

const defaultDamageType = "kinetic"

// DamageArea hits every damageable entity overlapping a box in front of the
// binding's hand, once per execution.
type DamageArea struct {
	Amount     int     `yaml:"amount"`
	DamageType string  `yaml:"damage_type"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Offset     float64 `yaml:"offset"`
}

func newDamageArea(p weapon.Params) (weapon.Action, error) {
	a := &DamageArea{DamageType: defaultDamageType, Width: 32, Height: 16}
	if err := p.Decode(a); err != nil {
		return nil, err
	}
	if a.Amount <= 0 {
		return nil, errors.New("amount must be > 0")
	}
	if a.Width <= 0 || a.Height <= 0 {
		return nil, fmt.Errorf("area %vx%v must be positive", a.Width, a.Height)
	}
	return a, nil
}

func (a *DamageArea) Execute(ctx weapon.Context, b *weapon.InputBinding, _ *weapon.ActionBinding) error {
	h, err := hostOf(ctx)
	if err != nil {
		return err
	}
	space := h.Space()
	if space == nil {
		return ErrNoSpace
	}
	hit := map[*donburi.Entry]bool{}
	for _, anchor := range anchors(ctx, b.Hand) {
		x, y := areaAhead(anchor, a.Width, a.Height, a.Offset)
		for _, e := range Overlapping(space, x, y, a.Width, a.Height, h.Entry(), tags.ResolvTarget, tags.ResolvPlayer) {
			if hit[e] {
				continue
			}
			hit[e] = true
			if d, ok := damageable(e); ok {
				d.TakeDamage(a.Amount, a.DamageType)
			}
		}
	}
	return nil
}
