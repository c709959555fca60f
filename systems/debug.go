package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/fonts"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collision overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if getOrCreateInput(ecs).JustPressed(int(cfg.ActionDebug)) {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY, ok := cameraOffset(ecs, width, height)
	if !ok {
		return
	}

	if space := components.SpaceOf(ecs.World); space != nil {
		for _, obj := range space.Objects() {
			x := obj.X + camX
			y := obj.Y + camY
			// Cull objects outside viewport
			if x+obj.W < 0 || x > float64(width) || y+obj.H < 0 || y > float64(height) {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvTarget) {
				c = color.RGBA{255, 0, 0, 255}
			} else if obj.HasTags(tags.ResolvProjectile) {
				c = color.RGBA{0, 255, 0, 255}
			}

			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	// Weapon runtime state
	small := fonts.Small.Get()
	y := height - 12
	components.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		w := components.Weapon.Get(e)
		if w.Runtime == nil {
			return
		}
		line := fmt.Sprintf("%s %.8s tasks=%d enabled=%v", w.Name, w.Runtime.ID(), w.Runtime.ActiveTasks(), w.Runtime.Enabled())
		text.Draw(screen, line, small, int(cfg.HUD.Margin), y, cfg.HUD.DimTextColor)
		y -= hudLineHeight
	})
}
