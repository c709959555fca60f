package actions

import (
	"errors"

	"github.com/automoto/doomerang-arsenal/archetypes"
	"github.com/automoto/doomerang-arsenal/components"
	"github.com/automoto/doomerang-arsenal/shared/gamemath"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/automoto/doomerang-arsenal/weapon"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Projectile spawns a straight shot from each hand anchor. systems/projectile.go
// moves it and applies its damage.
type Projectile struct {
	Damage     int     `yaml:"damage"`
	DamageType string  `yaml:"damage_type"`
	Speed      float64 `yaml:"speed"` // pixels per frame
	Range      float64 `yaml:"range"` // pixels
	Pierce     int     `yaml:"pierce"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}

func newProjectile(p weapon.Params) (weapon.Action, error) {
	a := &Projectile{DamageType: defaultDamageType, Speed: 8, Range: 480, Width: 8, Height: 4}
	if err := p.Decode(a); err != nil {
		return nil, err
	}
	switch {
	case a.Damage <= 0:
		return nil, errors.New("damage must be > 0")
	case a.Speed <= 0 || a.Range <= 0:
		return nil, errors.New("speed and range must be > 0")
	case a.Width <= 0 || a.Height <= 0:
		return nil, errors.New("width and height must be > 0")
	case a.Pierce < 0:
		return nil, errors.New("pierce must be >= 0")
	}
	return a, nil
}

func (a *Projectile) Execute(ctx weapon.Context, b *weapon.InputBinding, _ *weapon.ActionBinding) error {
	h, err := hostOf(ctx)
	if err != nil {
		return err
	}
	space := h.Space()
	if space == nil {
		return ErrNoSpace
	}
	for _, anchor := range anchors(ctx, b.Hand) {
		a.spawn(h.World(), space, h.Entry(), anchor)
	}
	return nil
}

func (a *Projectile) spawn(w donburi.World, space *resolv.Space, owner *donburi.Entry, anchor weapon.Anchor) *donburi.Entry {
	e := archetypes.Projectile.Spawn(w)

	dx, dy := gamemath.Normalize(anchor.DirX, anchor.DirY)
	if dx == 0 && dy == 0 {
		dx = 1
	}
	x := anchor.X
	if dx < 0 {
		x -= a.Width
	}

	obj := resolv.NewObject(x, anchor.Y-a.Height/2, a.Width, a.Height, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, a.Width, a.Height))
	obj.Data = e
	components.Object.Set(e, &components.ObjectData{Object: obj})
	space.Add(obj)

	components.Physics.Set(e, &components.PhysicsData{
		SpeedX:   dx * a.Speed,
		SpeedY:   dy * a.Speed,
		MaxSpeed: a.Speed,
	})
	components.Projectile.Set(e, &components.ProjectileData{
		OwnerEntity: owner,
		Damage:      a.Damage,
		DamageType:  a.DamageType,
		Range:       a.Range,
		Pierce:      a.Pierce,
		HitEntities: map[*donburi.Entry]bool{},
	})
	return e
}
