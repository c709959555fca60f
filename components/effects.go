package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks a tint flash on a hit or damaged entity
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// AddScreenShake starts a shake on the camera entry, or restarts the one
// already running with the stronger intensity and the longer remaining time.
func AddScreenShake(camera *donburi.Entry, intensity float64, frames int) {
	if camera == nil || !camera.Valid() || intensity <= 0 || frames <= 0 {
		return
	}
	if camera.HasComponent(ScreenShake) {
		shake := ScreenShake.Get(camera)
		shake.Intensity = max(shake.Intensity, intensity)
		shake.Duration = max(shake.Duration-shake.Elapsed, frames)
		shake.Elapsed = 0
		return
	}
	donburi.Add(camera, ScreenShake, &ScreenShakeData{
		Intensity: intensity,
		Duration:  frames,
	})
}
