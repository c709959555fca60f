package main

import (
	"image"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/doomerang-arsenal/actions"
	"github.com/automoto/doomerang-arsenal/assets"
	"github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/fonts"
	"github.com/automoto/doomerang-arsenal/scenes"
	"github.com/automoto/doomerang-arsenal/shared/leveldata"
	"github.com/automoto/doomerang-arsenal/systems"
	"github.com/automoto/doomerang-arsenal/weapon"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	env.Apply()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var weaponFS fs.FS = assets.FS
	weaponDir := config.Weapons.DefinitionsDir
	if env.WeaponsDir != "" {
		weaponFS, weaponDir = os.DirFS(env.WeaponsDir), "."
	}
	catalog, err := weapon.LoadCatalog(weaponFS, weaponDir, actions.NewRegistry(), log.Default())
	if err != nil {
		log.Fatalf("Failed to load weapons: %v", err)
	}
	log.Printf("Loaded %d weapons: %v", catalog.Len(), catalog.Names())

	level, err := leveldata.LoadRange(assets.FS, env.RangeMap)
	if err != nil {
		log.Fatalf("Failed to load range: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Doomerang Arsenal")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence before the scene reads the saved loadout
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	scene := scenes.NewRangeScene(catalog, level)
	defer scene.Close()

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Print(err)
	}
}
