package actions

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/automoto/doomerang-arsenal/components"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/automoto/doomerang-arsenal/weapon"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type triggers []string

func (t *triggers) Trigger(name string) { *t = append(*t, name) }

type testHost struct {
	world   donburi.World
	space   *resolv.Space
	owner   *donburi.Entry
	anchors map[weapon.Hand]weapon.Anchor
	anim    *triggers
}

func (h *testHost) Anchor(hand weapon.Hand) (weapon.Anchor, bool) {
	a, ok := h.anchors[hand]
	return a, ok
}
func (h *testHost) Owner() any { return h.owner }
func (h *testHost) Animator() weapon.Animator {
	if h.anim == nil {
		return nil
	}
	return h.anim
}
func (h *testHost) ChargeDisplay(weapon.Hand) weapon.ChargeDisplay { return nil }
func (h *testHost) World() donburi.World                          { return h.world }
func (h *testHost) Space() *resolv.Space                          { return h.space }
func (h *testHost) Entry() *donburi.Entry                         { return h.owner }

// plainContext is a Context that is not a Host.
type plainContext struct{}

func (plainContext) Anchor(weapon.Hand) (weapon.Anchor, bool)      { return weapon.Anchor{DirX: 1}, true }
func (plainContext) Owner() any                                     { return nil }
func (plainContext) Animator() weapon.Animator                      { return nil }
func (plainContext) ChargeDisplay(weapon.Hand) weapon.ChargeDisplay { return nil }

func newTestHost() *testHost {
	w := donburi.NewWorld()
	space := resolv.NewSpace(640, 360, 16, 16)
	owner := spawnBody(w, space, 100, 100, tags.ResolvPlayer)
	components.Physics.SetValue(owner, components.PhysicsData{})
	return &testHost{
		world: w,
		space: space,
		owner: owner,
		anchors: map[weapon.Hand]weapon.Anchor{
			weapon.HandRight: {X: 118, Y: 116, DirX: 1},
			weapon.HandLeft:  {X: 118, Y: 122, DirX: 1},
		},
	}
}

// spawnBody creates a 16x40 entity with health linked into space.
func spawnBody(w donburi.World, space *resolv.Space, x, y float64, tag string) *donburi.Entry {
	e := w.Entry(w.Create(components.Object, components.Health, components.Physics))
	obj := resolv.NewObject(x, y, 16, 40, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, 16, 40))
	obj.Data = e
	components.Object.Set(e, &components.ObjectData{Object: obj})
	components.Health.SetValue(e, components.HealthData{Current: 50, Max: 50})
	space.Add(obj)
	return e
}

func build(t *testing.T, src string) (*weapon.Definition, string) {
	t.Helper()
	var logs bytes.Buffer
	reg := weapon.NewRegistry()
	RegisterWithLogger(reg, log.New(&logs, "", 0))
	def, err := weapon.Decode([]byte(src), reg, log.New(&logs, "", 0))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return def, logs.String()
}

// run executes every action of binding 0.
func run(t *testing.T, def *weapon.Definition, ctx weapon.Context) error {
	t.Helper()
	b := &def.Bindings[0]
	var errs []error
	for i := range b.Actions {
		ab := &b.Actions[i]
		if err := ab.Action.Execute(ctx, b, ab); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func pending(e *donburi.Entry) int {
	if !e.HasComponent(components.DamageEvent) {
		return 0
	}
	return components.DamageEvent.Get(e).Amount
}

func TestRegistryBuildsEverySample(t *testing.T) {
	def, logs := build(t, `
name: kitchen_sink
bindings:
  - mode: press
    input: primary
    actions:
      - {phase: on_perform, type: damage_area, params: {amount: 5}}
      - {phase: on_perform, type: projectile, params: {damage: 3}}
      - {phase: on_perform, type: beam, params: {damage: 2}}
      - {phase: on_perform, type: recoil, params: {force: 2}}
      - {phase: on_perform, type: animate, params: {trigger: fire}}
      - {phase: on_perform, type: screen_shake}
      - {phase: on_perform, type: log, params: {message: bang}}
`)
	if logs != "" {
		t.Errorf("unexpected build logs: %s", logs)
	}
	if err := def.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	got := NewRegistry().Tags()
	if len(got) != 7 {
		t.Errorf("Tags = %v", got)
	}
}

func TestFactoriesRejectBadParams(t *testing.T) {
	tests := map[string]string{
		"damage_area no amount": `{type: damage_area}`,
		"damage_area bad size":  `{type: damage_area, params: {amount: 1, width: 0}}`,
		"projectile no damage":  `{type: projectile}`,
		"projectile pierce":     `{type: projectile, params: {damage: 1, pierce: -1}}`,
		"beam lifetime":         `{type: beam, params: {damage: 1, lifetime: 0}}`,
		"recoil no force":       `{type: recoil}`,
		"animate no trigger":    `{type: animate}`,
		"screen_shake zero":     `{type: screen_shake, params: {duration: 0}}`,
		"log no message":        `{type: log}`,
		"wrong param type":      `{type: damage_area, params: {amount: lots}}`,
	}
	for name, action := range tests {
		t.Run(name, func(t *testing.T) {
			src := "name: bad\nbindings:\n  - mode: press\n    input: primary\n    actions:\n      - {phase: on_perform, " + action[1:] + "\n"
			def, logs := build(t, src)
			if logs == "" {
				t.Error("expected the failed build to be logged")
			}
			if !errors.Is(def.Validate(), weapon.ErrNilAction) {
				t.Errorf("Validate = %v, want ErrNilAction", def.Validate())
			}
		})
	}
}

func TestDamageAreaHitsTargetsAhead(t *testing.T) {
	h := newTestHost()
	ahead := spawnBody(h.world, h.space, 130, 96, tags.ResolvTarget)
	behind := spawnBody(h.world, h.space, 40, 96, tags.ResolvTarget)
	wall := spawnBody(h.world, h.space, 134, 96, tags.ResolvSolid)

	def, _ := build(t, `
name: sword
bindings:
  - mode: press
    input: melee
    hand: both
    actions:
      - {phase: on_perform, type: damage_area, params: {amount: 7, damage_type: slash, width: 40, height: 30}}
`)
	if err := run(t, def, h); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := pending(ahead); got != 7 {
		t.Errorf("target ahead took %d, want 7 once even with both hands", got)
	}
	if components.DamageEvent.Get(ahead).DamageType != "slash" {
		t.Error("damage type not passed through")
	}
	if pending(behind) != 0 || pending(wall) != 0 || pending(h.owner) != 0 {
		t.Error("only tagged targets in front of the hand should be hit")
	}
}

func TestDamageAreaFacesLeft(t *testing.T) {
	h := newTestHost()
	h.anchors[weapon.HandRight] = weapon.Anchor{X: 98, Y: 116, DirX: -1}
	left := spawnBody(h.world, h.space, 70, 96, tags.ResolvTarget)
	right := spawnBody(h.world, h.space, 130, 96, tags.ResolvTarget)

	def, _ := build(t, `
name: sword
bindings:
  - {mode: press, input: melee, actions: [{phase: on_perform, type: damage_area, params: {amount: 3}}]}
`)
	if err := run(t, def, h); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if pending(left) != 3 || pending(right) != 0 {
		t.Errorf("left = %d right = %d", pending(left), pending(right))
	}
}

func TestProjectileSpawnsOnePerHand(t *testing.T) {
	h := newTestHost()
	h.anchors[weapon.HandLeft] = weapon.Anchor{X: 98, Y: 122, DirX: -1}
	def, _ := build(t, `
name: twins
bindings:
  - {mode: press, input: primary, hand: both, actions: [{phase: on_perform, type: projectile, params: {damage: 4, speed: 6}}]}
`)
	if err := run(t, def, h); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	var speeds []float64
	for e := range tags.Projectile.Iter(h.world) {
		speeds = append(speeds, components.Physics.Get(e).SpeedX)
		obj := components.Object.Get(e)
		if obj.Space != h.space || obj.Data != e {
			t.Error("projectile object not linked into the space")
		}
		if p := components.Projectile.Get(e); p.OwnerEntity != h.owner || p.Damage != 4 {
			t.Errorf("projectile = %+v", *p)
		}
	}
	if len(speeds) != 2 || speeds[0]*speeds[1] >= 0 {
		t.Errorf("speeds = %v, want one shot each way", speeds)
	}
}

func TestBeamFollowsOwner(t *testing.T) {
	h := newTestHost()
	def, _ := build(t, `
name: lance
bindings:
  - {mode: press, input: primary, actions: [{phase: on_perform, type: beam, params: {damage: 2, width: 50, height: 10, offset: 4}}]}
`)
	if err := run(t, def, h); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	e, ok := tags.Hitbox.First(h.world)
	if !ok {
		t.Fatal("no hitbox spawned")
	}
	hb := components.Hitbox.Get(e)
	// owner centre is (108, 120), the right anchor sits at (118, 116)
	if !hb.Follow || hb.OffsetX != 14 || hb.OffsetY != -9 || hb.LifeTime != 6 {
		t.Errorf("hitbox = %+v", *hb)
	}
}

func TestRecoil(t *testing.T) {
	h := newTestHost()
	def, _ := build(t, `
name: shotgun
bindings:
  - {mode: press, input: primary, actions: [{phase: on_perform, type: recoil, params: {force: 5, lift: 1, max: 8}}]}
`)
	for i := 0; i < 3; i++ {
		if err := run(t, def, h); err != nil {
			t.Fatalf("Execute: %v", err)
		}
	}
	physics := components.Physics.Get(h.owner)
	if physics.SpeedX != -8 || physics.SpeedY != -3 {
		t.Errorf("speed = (%v, %v), want (-8, -3)", physics.SpeedX, physics.SpeedY)
	}
}

func TestAnimateAndScreenShake(t *testing.T) {
	h := newTestHost()
	camera := h.world.Entry(h.world.Create(components.Camera))
	def, _ := build(t, `
name: boom
bindings:
  - mode: press
    input: primary
    actions:
      - {phase: on_perform, type: animate, params: {trigger: recoil}}
      - {phase: on_perform, type: screen_shake, params: {intensity: 2, duration: 4}}
`)
	if err := run(t, def, h); err != nil {
		t.Fatalf("no animator must be a no-op: %v", err)
	}
	h.anim = &triggers{}
	if err := run(t, def, h); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(*h.anim) != 1 || (*h.anim)[0] != "recoil" {
		t.Errorf("triggers = %v", *h.anim)
	}
	shake := components.ScreenShake.Get(camera)
	if shake.Intensity != 2 || shake.Duration != 4 {
		t.Errorf("shake = %+v", *shake)
	}
}

func TestWorldActionsNeedHost(t *testing.T) {
	def, _ := build(t, `
name: lonely
bindings:
  - mode: press
    input: primary
    actions:
      - {phase: on_perform, type: damage_area, params: {amount: 1}}
      - {phase: on_perform, type: projectile, params: {damage: 1}}
      - {phase: on_perform, type: animate, params: {trigger: ok}}
`)
	err := run(t, def, plainContext{})
	if !errors.Is(err, ErrNoHost) {
		t.Errorf("err = %v, want ErrNoHost", err)
	}
}

func TestLogCopiesCountSeparately(t *testing.T) {
	def, _ := build(t, `
name: chatty
bindings:
  - {mode: press, input: primary, actions: [{phase: on_perform, type: log, params: {message: hi}}]}
`)
	cp := def.Clone()
	for i := 0; i < 2; i++ {
		if err := run(t, cp, plainContext{}); err != nil {
			t.Fatal(err)
		}
	}
	if n := def.Bindings[0].Actions[0].Action.(*Log).Count(); n != 0 {
		t.Errorf("template count = %d, want 0", n)
	}
	if n := cp.Bindings[0].Actions[0].Action.(*Log).Count(); n != 2 {
		t.Errorf("copy count = %d, want 2", n)
	}
}

func TestOverlappingUsesSpaceCells(t *testing.T) {
	h := newTestHost()
	target := spawnBody(h.world, h.space, 200, 100, tags.ResolvTarget)
	before := len(h.space.Objects())

	// 190..194 shares a 16px cell column with the target but does not touch it
	if got := Overlapping(h.space, 190, 110, 4, 4, h.owner, tags.ResolvTarget); len(got) != 0 {
		t.Errorf("same cell, no overlap = %d hits, want 0", len(got))
	}
	if got := Overlapping(h.space, 198, 110, 4, 4, h.owner, tags.ResolvTarget); len(got) != 1 || got[0] != target {
		t.Errorf("overlap = %v, want the target", got)
	}
	if got := Overlapping(h.space, 100, 100, 16, 16, h.owner, tags.ResolvPlayer); len(got) != 0 {
		t.Errorf("excluded owner was returned")
	}
	if after := len(h.space.Objects()); after != before {
		t.Errorf("space objects = %d after queries, want %d", after, before)
	}

	obj := components.Object.Get(target)
	obj.X = 400
	obj.Update()
	if got := Overlapping(h.space, 198, 110, 4, 4, nil, tags.ResolvTarget); len(got) != 0 {
		t.Errorf("target found at its old position")
	}
	if got := Overlapping(h.space, 401, 110, 4, 4, nil, tags.ResolvTarget); len(got) != 1 {
		t.Errorf("target not found at its new position")
	}
}

func TestTouching(t *testing.T) {
	h := newTestHost()
	target := spawnBody(h.world, h.space, 110, 100, tags.ResolvTarget)
	spawnBody(h.world, h.space, 300, 100, tags.ResolvTarget)

	owner := components.Object.Get(h.owner).Object
	got := Touching(owner, h.owner, tags.ResolvTarget)
	if len(got) != 1 || got[0] != target {
		t.Errorf("Touching = %v, want only the adjacent target", got)
	}
	if got := Touching(owner, h.owner, tags.ResolvSolid); len(got) != 0 {
		t.Errorf("tag filter ignored: %v", got)
	}
	if got := Touching(resolv.NewObject(110, 100, 4, 4), nil); len(got) != 0 {
		t.Errorf("object outside any space touched %v", got)
	}
}
