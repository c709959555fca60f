package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/shared/leveldata"
	"github.com/automoto/doomerang-arsenal/systems"
	"github.com/automoto/doomerang-arsenal/systems/factory"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/automoto/doomerang-arsenal/ui"
	"github.com/automoto/doomerang-arsenal/weapon"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RangeScene is the firing range: one player, a loadout and some dummies.
type RangeScene struct {
	ecs     *ecs.ECS
	armory  *ui.ArmoryUI
	catalog *weapon.Catalog
	level   *leveldata.Range
	once    sync.Once
}

func NewRangeScene(catalog *weapon.Catalog, level *leveldata.Range) *RangeScene {
	return &RangeScene{catalog: catalog, level: level}
}

func (rs *RangeScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
	if systems.IsPaused(rs.ecs) {
		rs.armory.Update()
	}
}

func (rs *RangeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
	if systems.IsPaused(rs.ecs) {
		rs.armory.UI.Draw(screen)
	}
}

// Close tears down every equipped weapon.
func (rs *RangeScene) Close() {
	if rs.ecs == nil {
		return
	}
	var players []*donburi.Entry
	tags.Player.Each(rs.ecs.World, func(e *donburi.Entry) {
		players = append(players, e)
	})
	for _, p := range players {
		systems.DestroyPlayer(p)
	}
}

func (rs *RangeScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebug)

	// The clock steps before input is delivered so handlers and tasks agree
	// on the frame's time
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateWeaponClock))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayerInput))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateWeapons))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHitboxes))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCombat))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateTargets))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateChargeBars))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawChargeBars)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	rs.ecs = ecs

	factory.CreateSpace(ecs, max(rs.level.MapWidth, cfg.C.Width), max(rs.level.MapHeight, cfg.C.Height), 16, 16)
	factory.CreateLevel(ecs, rs.level)
	factory.CreateArsenal(ecs, rs.catalog)
	camera := factory.CreateCamera(ecs)

	spawn, _ := rs.level.Spawn(0)
	x := spawn.X - float64(cfg.Player.CollisionWidth)/2
	y := spawn.Y - float64(cfg.Player.CollisionHeight)
	player := factory.CreatePlayer(ecs, 0, x, y)

	// Start the camera on the player instead of sweeping in from the origin
	cam := components.Camera.Get(camera)
	cam.Position.X, cam.Position.Y = spawn.X, spawn.Y

	if err := systems.EquipLoadout(ecs, player, systems.LoadLoadout()); err != nil {
		log.Printf("Warning: could not equip starting weapon: %v", err)
	}

	rs.armory = ui.NewArmoryUI(cfg.Weapons.Loadout,
		func() int {
			if !components.Weapon.Get(player).Equipped() {
				return -1
			}
			return components.Player.Get(player).LoadoutIndex
		},
		func(index int) error {
			return systems.SelectLoadout(ecs, player, index)
		},
		func() {
			systems.SetPaused(ecs, false)
		},
	)
}
