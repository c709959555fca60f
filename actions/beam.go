package actions

import (
	"errors"

	"github.com/automoto/doomerang-arsenal/archetypes"
	"github.com/automoto/doomerang-arsenal/components"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/automoto/doomerang-arsenal/weapon"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Beam spawns a hitbox that stays attached to the owner for a few frames and
// damages each entity it touches once.
type Beam struct {
	Damage     int     `yaml:"damage"`
	DamageType string  `yaml:"damage_type"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Offset     float64 `yaml:"offset"`
	Lifetime   int     `yaml:"lifetime"` // frames
}

func newBeam(p weapon.Params) (weapon.Action, error) {
	a := &Beam{DamageType: "plasma", Width: 64, Height: 8, Lifetime: 6}
	if err := p.Decode(a); err != nil {
		return nil, err
	}
	switch {
	case a.Damage <= 0:
		return nil, errors.New("damage must be > 0")
	case a.Width <= 0 || a.Height <= 0:
		return nil, errors.New("width and height must be > 0")
	case a.Lifetime <= 0:
		return nil, errors.New("lifetime must be > 0")
	}
	return a, nil
}

func (a *Beam) Execute(ctx weapon.Context, b *weapon.InputBinding, _ *weapon.ActionBinding) error {
	h, err := hostOf(ctx)
	if err != nil {
		return err
	}
	space := h.Space()
	if space == nil {
		return ErrNoSpace
	}
	owner := h.Entry()
	if owner == nil || !owner.HasComponent(components.Object) {
		return ErrNoOwner
	}
	cx, cy := components.Object.Get(owner).Center()
	for _, anchor := range anchors(ctx, b.Hand) {
		x, y := areaAhead(anchor, a.Width, a.Height, a.Offset)
		forward := x - cx
		if facing(anchor) < 0 {
			forward = cx - (x + a.Width)
		}
		a.spawn(h.World(), space, owner, x, y, forward, y-cy)
	}
	return nil
}

func (a *Beam) spawn(w donburi.World, space *resolv.Space, owner *donburi.Entry, x, y, offX, offY float64) *donburi.Entry {
	e := archetypes.Hitbox.Spawn(w)

	obj := resolv.NewObject(x, y, a.Width, a.Height, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, a.Width, a.Height))
	obj.Data = e
	components.Object.Set(e, &components.ObjectData{Object: obj})
	space.Add(obj)

	components.Hitbox.Set(e, &components.HitboxData{
		OwnerEntity: owner,
		Damage:      a.Damage,
		DamageType:  a.DamageType,
		LifeTime:    a.Lifetime,
		HitEntities: map[*donburi.Entry]bool{},
		Follow:      true,
		OffsetX:     offX,
		OffsetY:     offY,
	})
	return e
}
