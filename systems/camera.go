package systems

import (
	"math"

	"github.com/automoto/doomerang-arsenal/components"
	"github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if ok {
		followPlayer(e, camera, components.Object.Get(playerEntry))
	}

	// Process screen shake
	updateScreenShake(cameraEntry, camera)
}

func followPlayer(e *ecs.ECS, camera *components.CameraData, playerObject *components.ObjectData) {
	targetX, targetY := playerObject.Center()

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth, levelHeight := screenWidth, screenHeight
	if levelEntry, ok := components.Level.First(e.World); ok {
		if r := components.Level.Get(levelEntry).Range; r != nil {
			levelWidth = math.Max(screenWidth, float64(r.MapWidth))
			levelHeight = math.Max(screenHeight, float64(r.MapHeight))
		}
	}

	// Camera bounds: ensure the level always fills the screen
	minCameraX := screenWidth / 2
	maxCameraX := levelWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelHeight - screenHeight/2

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// cameraOffset returns the translation from world to screen space.
func cameraOffset(e *ecs.ECS, width, height int) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}
