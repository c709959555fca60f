package systems

import (
	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if input.JustPressed(int(cfg.ActionPause)) {
		SetPaused(ecs, !pause.IsPaused)
	}
}

// SetPaused pauses or resumes the range. Weapon runtimes are disabled while
// paused, which drops any hold in progress without firing it.
func SetPaused(ecs *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(ecs)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	components.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		if w := components.Weapon.Get(e); w.Runtime != nil {
			w.Runtime.SetEnabled(!paused)
		}
	})
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	titleFont := fonts.Title.Get()
	titleWidth := len(cfg.Pause.Title) * 16
	text.Draw(screen, cfg.Pause.Title, titleFont, int((width-float64(titleWidth))/2), int(height/3), cfg.Pause.TextColor)

	hintFont := fonts.Small.Get()
	hintWidth := len(cfg.Pause.Hint) * 7
	text.Draw(screen, cfg.Pause.Hint, hintFont, int((width-float64(hintWidth))/2), int(height)-12, cfg.Pause.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// IsPaused reports whether the range is paused.
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Pause))
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
