// Package actions holds the sample weapon actions used by the firing range.
// Each action is registered under a stable type tag and built from the params
// block of a weapon definition. Actions never block: anything that lasts more
// than one frame is an entity that a system advances.
package actions

import (
	"errors"

	"github.com/automoto/doomerang-arsenal/components"
	"github.com/automoto/doomerang-arsenal/weapon"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var (
	ErrNoHost  = errors.New("context is not an actions.Host")
	ErrNoSpace = errors.New("host has no collision space")
	ErrNoOwner = errors.New("host has no owner entity")
)

// Host is the Context the range hands to weapon runtimes. Actions that touch
// the world require it; animate and log work with any Context.
type Host interface {
	weapon.Context
	World() donburi.World
	Space() *resolv.Space
	// Entry is the owning entity.
	Entry() *donburi.Entry
}

// Damageable is anything an action can hurt.
type Damageable interface {
	TakeDamage(amount int, damageType string)
}

var _ Damageable = components.DamageReceiver{}

func hostOf(ctx weapon.Context) (Host, error) {
	h, ok := ctx.(Host)
	if !ok {
		return nil, ErrNoHost
	}
	return h, nil
}

// anchors returns the anchor points for hand. Both yields right then left.
func anchors(ctx weapon.Context, hand weapon.Hand) []weapon.Anchor {
	hands := []weapon.Hand{hand}
	if hand == weapon.HandBoth {
		hands = []weapon.Hand{weapon.HandRight, weapon.HandLeft}
	}
	out := make([]weapon.Anchor, 0, len(hands))
	for _, h := range hands {
		if a, ok := ctx.Anchor(h); ok {
			out = append(out, a)
		}
	}
	return out
}

// facing returns -1 for anchors pointing left and 1 otherwise.
func facing(a weapon.Anchor) float64 {
	if a.DirX < 0 {
		return -1
	}
	return 1
}

// areaAhead places a w x h rectangle offset pixels in front of the anchor,
// vertically centred on it.
func areaAhead(a weapon.Anchor, w, h, offset float64) (float64, float64) {
	x := a.X + offset
	if facing(a) < 0 {
		x = a.X - offset - w
	}
	return x, a.Y - h/2
}

// Touching returns the entities tagged with one of tagList whose objects
// overlap obj. The candidates come from obj.Check, so obj must be in a space
// and other objects must have been Updated since they last moved.
func Touching(obj *resolv.Object, exclude *donburi.Entry, tagList ...string) []*donburi.Entry {
	var out []*donburi.Entry
	if obj == nil || obj.Space == nil {
		return out
	}
	check := obj.Check(0, 0)
	if check == nil {
		return out
	}
	seen := map[*resolv.Object]bool{}
	for _, o := range check.Objects {
		if seen[o] || !hasAnyTag(o, tagList) || !overlaps(obj, o) {
			continue
		}
		seen[o] = true
		e, ok := o.Data.(*donburi.Entry)
		if !ok || e == exclude || !e.Valid() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Overlapping is Touching for an arbitrary rectangle. It adds a temporary
// query object to space for the check.
func Overlapping(space *resolv.Space, x, y, w, h float64, exclude *donburi.Entry, tagList ...string) []*donburi.Entry {
	if space == nil || w <= 0 || h <= 0 {
		return nil
	}
	query := resolv.NewObject(x, y, w, h)
	space.Add(query)
	defer space.Remove(query)
	return Touching(query, exclude, tagList...)
}

// overlaps is the exact test behind the cell broadphase; sharing a cell
// does not mean two rectangles touch.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func hasAnyTag(obj *resolv.Object, tagList []string) bool {
	if len(tagList) == 0 {
		return true
	}
	for _, t := range tagList {
		if obj.HasTags(t) {
			return true
		}
	}
	return false
}

// damageable resolves an entity to something that can take damage.
func damageable(e *donburi.Entry) (Damageable, bool) {
	r, ok := components.Receiver(e)
	if !ok {
		return nil, false
	}
	return r, true
}
