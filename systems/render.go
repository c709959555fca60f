package systems

import (
	"image/color"

	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	wallColor   = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	targetColor = color.RGBA{R: 200, G: 160, B: 90, A: 255}
	downColor   = color.RGBA{R: 90, G: 70, B: 40, A: 255}
	beamColor   = color.RGBA{R: 255, G: 0, B: 255, A: 140}
)

// DrawLevel renders the range's walls.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY, ok := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e), offX, offY, wallColor)
	})
}

// DrawEntities renders targets, players, projectiles, beams and sparks as
// flat rectangles.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY, ok := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}

	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if components.Target.Get(e).Down {
			// Knocked flat
			vector.FillRect(screen, float32(o.X+offX-o.H/2+o.W/2), float32(o.Y+o.H-o.W/2+offY), float32(o.H), float32(o.W/2), downColor, false)
			return
		}
		fillObject(screen, o, offX, offY, flashed(e, targetColor))
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		player := components.Player.Get(e)
		body := cfg.Blue
		if components.Pose.Get(e).Name != "" {
			body = cfg.LightBlue
		}
		fillObject(screen, o, offX, offY, flashed(e, body))

		// Facing marker at hand height
		cx, cy := o.Center()
		hx := cx + player.Direction.X*cfg.Player.HandOffsetX
		vector.FillRect(screen, float32(hx-2+offX), float32(cy+cfg.Player.HandOffsetY-2+offY), 4, 4, cfg.White, false)
	})

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e), offX, offY, cfg.Yellow)
	})
	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e), offX, offY, beamColor)
	})
	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e), offX, offY, cfg.Orange)
	})
}

func fillObject(screen *ebiten.Image, o *components.ObjectData, offX, offY float64, c color.Color) {
	vector.FillRect(screen, float32(o.X+offX), float32(o.Y+offY), float32(o.W), float32(o.H), c, false)
}

// flashed tints base with an active flash.
func flashed(e *donburi.Entry, base color.RGBA) color.RGBA {
	if !e.HasComponent(components.Flash) {
		return base
	}
	flash := components.Flash.Get(e)
	if flash.Duration <= 0 {
		return base
	}
	return color.RGBA{
		R: uint8(float32(base.R)*0.5 + 127*flash.R),
		G: uint8(float32(base.G)*0.5 + 127*flash.G),
		B: uint8(float32(base.B)*0.5 + 127*flash.B),
		A: base.A,
	}
}
