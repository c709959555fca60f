package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/doomerang-arsenal/actions"
	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/systems/factory"
	"github.com/automoto/doomerang-arsenal/weapon"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// poseFrames is how long an animate trigger stays on the owner.
const poseFrames = 20

var errUnknownWeapon = errors.New("weapon not in catalog")

// weaponHost is the weapon.Context handed to every runtime equipped on a
// player. It implements actions.Host.
type weaponHost struct {
	world donburi.World
	entry *donburi.Entry
	bars  map[weapon.Hand]*chargeBarDisplay
}

var _ actions.Host = (*weaponHost)(nil)

func newWeaponHost(e *ecs.ECS, player *donburi.Entry) *weaponHost {
	h := &weaponHost{
		world: e.World,
		entry: player,
		bars:  map[weapon.Hand]*chargeBarDisplay{},
	}
	for _, hand := range []weapon.Hand{weapon.HandRight, weapon.HandLeft} {
		h.bars[hand] = &chargeBarDisplay{entry: factory.CreateChargeBar(e, player, string(hand))}
	}
	return h
}

// Anchor places the hands in front of the body centre, mirrored with facing.
// The left hand sits HandSpread below the right; both is their midpoint.
func (h *weaponHost) Anchor(hand weapon.Hand) (weapon.Anchor, bool) {
	if !h.entry.Valid() || !h.entry.HasComponent(components.Object) {
		return weapon.Anchor{}, false
	}
	cx, cy := components.Object.Get(h.entry).Center()
	dir := components.Player.Get(h.entry).Direction.X
	if dir == 0 {
		dir = cfg.DirectionRight
	}

	y := cy + cfg.Player.HandOffsetY
	switch hand {
	case weapon.HandLeft:
		y += cfg.Player.HandSpread
	case weapon.HandBoth:
		y += cfg.Player.HandSpread / 2
	}
	return weapon.Anchor{
		X:    cx + dir*cfg.Player.HandOffsetX,
		Y:    y,
		DirX: dir,
	}, true
}

func (h *weaponHost) Owner() any { return h.entry }

func (h *weaponHost) Animator() weapon.Animator {
	return poseAnimator{entry: h.entry}
}

func (h *weaponHost) ChargeDisplay(hand weapon.Hand) weapon.ChargeDisplay {
	if hand == weapon.HandBoth {
		hand = weapon.HandRight
	}
	if bar, ok := h.bars[hand]; ok {
		return bar
	}
	return nil
}

func (h *weaponHost) World() donburi.World { return h.world }

func (h *weaponHost) Space() *resolv.Space { return components.SpaceOf(h.world) }

func (h *weaponHost) Entry() *donburi.Entry { return h.entry }

func (h *weaponHost) chargeBars() []*donburi.Entry {
	return []*donburi.Entry{h.bars[weapon.HandRight].entry, h.bars[weapon.HandLeft].entry}
}

func removeEntries(entries []*donburi.Entry) {
	for _, e := range entries {
		if e != nil && e.Valid() {
			e.Remove()
		}
	}
}

// poseAnimator records animate triggers as the owner's pose.
type poseAnimator struct {
	entry *donburi.Entry
}

func (a poseAnimator) Trigger(name string) {
	if !a.entry.Valid() || !a.entry.HasComponent(components.Pose) {
		return
	}
	components.Pose.SetValue(a.entry, components.PoseData{Name: name, Timer: poseFrames})
}

// chargeBarDisplay drives a ChargeBar entity. The HUD draws it.
type chargeBarDisplay struct {
	entry *donburi.Entry
}

func (d *chargeBarDisplay) bar() *components.ChargeBarData {
	if !d.entry.Valid() {
		return nil
	}
	return components.ChargeBar.Get(d.entry)
}

func (d *chargeBarDisplay) Reset() {
	if bar := d.bar(); bar != nil {
		bar.Percent = 0
	}
}

func (d *chargeBarDisplay) Show() {
	if bar := d.bar(); bar != nil {
		bar.Visible = true
		bar.Alpha = 0
		bar.Fade = gween.New(0, 1, cfg.HUD.FadeSeconds, ease.OutQuad)
	}
}

func (d *chargeBarDisplay) SetPercent(p float64) {
	if bar := d.bar(); bar != nil {
		bar.Percent = p
	}
}

func (d *chargeBarDisplay) Hide() {
	if bar := d.bar(); bar != nil {
		bar.Visible = false
		bar.Fade = nil
	}
}

// EquipWeapon tears down the player's current weapon and sets up def.
func EquipWeapon(e *ecs.ECS, player *donburi.Entry, def *weapon.Definition) error {
	if def == nil {
		return weapon.ErrNilDefinition
	}
	UnequipWeapon(player)

	pi := components.PlayerInput.Get(player)
	rt := weapon.NewRuntime(GetOrCreateWeaponClock(e), pi.Sources)
	host := newWeaponHost(e, player)
	if err := rt.Setup(def, host); err != nil {
		removeEntries(host.chargeBars())
		return fmt.Errorf("equip %s: %w", def.Name, err)
	}
	if GetOrCreatePause(e).IsPaused {
		rt.SetEnabled(false)
	}
	components.Weapon.SetValue(player, components.WeaponData{
		Name:       def.Name,
		Runtime:    rt,
		ChargeBars: host.chargeBars(),
	})
	return nil
}

// UnequipWeapon tears down the player's weapon, if any.
func UnequipWeapon(player *donburi.Entry) {
	if !player.Valid() || !player.HasComponent(components.Weapon) {
		return
	}
	w := components.Weapon.Get(player)
	if w.Runtime != nil {
		w.Runtime.Teardown()
	}
	removeEntries(w.ChargeBars)
	components.Weapon.SetValue(player, components.WeaponData{})
}

// EquipLoadout equips the loadout entry at index, wrapping around.
func EquipLoadout(e *ecs.ECS, player *donburi.Entry, index int) error {
	loadout := cfg.Weapons.Loadout
	if len(loadout) == 0 {
		return errors.New("loadout is empty")
	}
	index = ((index % len(loadout)) + len(loadout)) % len(loadout)
	components.Player.Get(player).LoadoutIndex = index

	name := loadout[index]
	catalog := GetCatalog(e)
	if catalog == nil {
		return fmt.Errorf("%s: %w", name, errUnknownWeapon)
	}
	def, ok := catalog.Get(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, errUnknownWeapon)
	}
	return EquipWeapon(e, player, def)
}

// SelectLoadout equips the loadout entry at index and remembers the choice.
func SelectLoadout(e *ecs.ECS, player *donburi.Entry, index int) error {
	if err := EquipLoadout(e, player, index); err != nil {
		return err
	}
	SaveLoadout(components.Player.Get(player).LoadoutIndex)
	return nil
}

// CycleWeapon equips the next loadout entry.
func CycleWeapon(e *ecs.ECS, player *donburi.Entry) {
	next := components.Player.Get(player).LoadoutIndex + 1
	if err := SelectLoadout(e, player, next); err != nil {
		log.Printf("Warning: could not switch weapon: %v", err)
	}
}

// GetCatalog returns the world's weapon catalog, or nil before the range is built.
func GetCatalog(e *ecs.ECS) *weapon.Catalog {
	entry, ok := components.Arsenal.First(e.World)
	if !ok {
		return nil
	}
	return components.Arsenal.Get(entry).Catalog
}

// UpdateWeapons handles weapon switching and resumes every runtime's tasks.
// It runs after UpdatePlayerInput so tasks see this frame's input events.
func UpdateWeapons(e *ecs.ECS) {
	// Switching creates and removes entities, so it waits for the loop
	var switching []*donburi.Entry
	components.Weapon.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.PlayerInput) {
			if components.PlayerInput.Get(entry).JustPressed(int(cfg.ActionSwitchWeapon)) {
				switching = append(switching, entry)
				return
			}
		}
		if w := components.Weapon.Get(entry); w.Runtime != nil {
			w.Runtime.Tick()
		}
	})
	for _, entry := range switching {
		CycleWeapon(e, entry)
	}

	components.Pose.Each(e.World, func(entry *donburi.Entry) {
		if pose := components.Pose.Get(entry); pose.Timer > 0 {
			pose.Timer--
			if pose.Timer == 0 {
				pose.Name = ""
			}
		}
	})
}

// DestroyPlayer tears the player's weapon down before removing the entity.
func DestroyPlayer(player *donburi.Entry) {
	if !player.Valid() {
		return
	}
	UnequipWeapon(player)
	if player.HasComponent(components.Object) {
		obj := components.Object.Get(player)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	player.Remove()
}
