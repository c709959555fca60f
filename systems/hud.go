package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/fonts"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/automoto/doomerang-arsenal/weapon"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudLineHeight = 14

// UpdateChargeBars advances the fade-in of visible charge bars.
func UpdateChargeBars(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.Weapons.TPS)
	components.ChargeBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.ChargeBar.Get(e)
		if !bar.Visible || bar.Fade == nil {
			return
		}
		alpha, done := bar.Fade.Update(dt)
		bar.Alpha = alpha
		if done {
			bar.Alpha = 1
			bar.Fade = nil
		}
	})
}

// DrawChargeBars renders every visible charge bar above its owner. The right
// hand's bar is on top.
func DrawChargeBars(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY, ok := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}
	components.ChargeBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.ChargeBar.Get(e)
		if !bar.Visible || bar.Owner == nil || !bar.Owner.Valid() {
			return
		}
		o := components.Object.Get(bar.Owner)
		cx, _ := o.Center()

		w := cfg.HUD.ChargeBarWidth
		h := cfg.HUD.ChargeBarHeight
		x := cx - w/2 + offX
		y := o.Y - cfg.HUD.ChargeBarOffsetY + offY
		if bar.Hand == string(weapon.HandLeft) {
			y += h + cfg.HUD.ChargeBarGap
		}

		fill := float64(ease.OutQuad(float32(bar.Percent), 0, 1, 1))
		fg := cfg.HUD.ChargeFgColor
		if bar.Percent >= 1 {
			fg = cfg.HUD.ChargeFullColor
		}
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fade(cfg.HUD.ChargeBgColor, bar.Alpha), false)
		vector.FillRect(screen, float32(x), float32(y), float32(w*fill), float32(h), fade(fg, bar.Alpha), false)
	})
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// DrawHUD renders the equipped weapon with its bindings in the top-left
// corner and target health bars over the dummies.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	drawTargetHealth(ecs, screen)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	face := fonts.Regular.Get()
	small := fonts.Small.Get()
	margin := int(cfg.HUD.Margin)
	y := margin + hudLineHeight

	w := components.Weapon.Get(playerEntry)
	if !w.Equipped() {
		text.Draw(screen, "No weapon", face, margin, y, cfg.HUD.DimTextColor)
		return
	}
	text.Draw(screen, fmt.Sprintf("%s   [Q] switch", w.Name), face, margin, y, cfg.HUD.TextColor)

	for _, b := range w.Runtime.Bindings() {
		y += hudLineHeight
		text.Draw(screen, bindingLine(b), small, margin, y, bindingColor(b))
	}
}

func bindingLine(b weapon.BindingStatus) string {
	line := fmt.Sprintf("%-10s %-10s %s", b.Input, b.Mode, b.Name)
	switch {
	case b.Holding && b.Mode == weapon.ModeCharge:
		line += fmt.Sprintf("  %3.0f%%", b.Charge*100)
	case b.TickTasks > 0:
		line += fmt.Sprintf("  x%d", b.TickTasks)
	}
	return line
}

func bindingColor(b weapon.BindingStatus) color.Color {
	if b.Holding {
		return cfg.HUD.TextColor
	}
	return cfg.HUD.DimTextColor
}

func drawTargetHealth(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY, ok := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}
	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		if components.HealthBar.Get(e).TimeToLive <= 0 || components.Target.Get(e).Down {
			return
		}
		o := components.Object.Get(e)
		hp := components.Health.Get(e)
		ratio := float32(hp.Current) / float32(hp.Max)
		x := float32(o.X + offX)
		y := float32(o.Y - 6 + offY)
		vector.FillRect(screen, x, y, float32(o.W), 3, cfg.HUD.ChargeBgColor, false)
		vector.FillRect(screen, x, y, float32(o.W)*ratio, 3, cfg.LightRed, false)
	})
}
