package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by the range scene.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// WeaponsConfig controls how weapon definitions are loaded and equipped
type WeaponsConfig struct {
	TPS            int    // ticks per second the weapon clock advances by
	DefinitionsDir string // directory inside assets.FS
	Loadout        []string
	DefaultLoadout int // index into Loadout
}

// PlayerConfig contains the range player's movement and body values
type PlayerConfig struct {
	Acceleration float64
	MaxSpeed     float64
	Friction     float64
	JumpSpeed    float64
	Gravity      float64

	Health int

	CollisionWidth  int
	CollisionHeight int

	// Hand anchors relative to the body centre, mirrored with facing
	HandOffsetX float64
	HandOffsetY float64
	HandSpread  float64 // vertical gap between the right and left hand
}

// PhysicsConfig contains global physics values
type PhysicsConfig struct {
	MaxFallSpeed float64
	FloorY       float64 // fallback floor when the map has no ground layer
}

// TargetConfig contains firing range dummy values
type TargetConfig struct {
	Width             float64
	Height            float64
	DefaultHealth     int
	RespawnFrames     int
	HealthBarDuration int // frames
}

// CombatConfig contains hit feedback values
type CombatConfig struct {
	HitFlashFrames    int
	DamageFlashFrames int
}

// HUDConfig contains charge bar and weapon label layout
type HUDConfig struct {
	Margin float64

	ChargeBarWidth   float64
	ChargeBarHeight  float64
	ChargeBarOffsetY float64 // above the owner's head
	ChargeBarGap     float64 // between the right and left hand bars
	FadeSeconds      float32

	ChargeBgColor   color.RGBA
	ChargeFgColor   color.RGBA
	ChargeFullColor color.RGBA
	TextColor       color.RGBA
	DimTextColor    color.RGBA
}

// ScreenShakeConfig contains defaults for the screen_shake action
type ScreenShakeConfig struct {
	Intensity float64 // pixels
	Duration  int     // frames
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowHitboxes bool
	NoSave       bool
}

// Global configuration instances
var C *Config
var Weapons WeaponsConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Target TargetConfig
var Combat CombatConfig
var HUD HUDConfig
var ScreenShake ScreenShakeConfig
var Camera CameraConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Weapons = WeaponsConfig{
		TPS:            60,
		DefinitionsDir: "weapons",
		Loadout:        []string{"blaster", "charge_cannon", "plasma_lance", "boomerang"},
		DefaultLoadout: 0,
	}

	Player = PlayerConfig{
		Acceleration: 0.75,
		MaxSpeed:     4.0,
		Friction:     0.5,
		JumpSpeed:    12.0,
		Gravity:      0.75,

		Health: 100,

		CollisionWidth:  16,
		CollisionHeight: 40,

		HandOffsetX: 10,
		HandOffsetY: -4,
		HandSpread:  6,
	}

	Physics = PhysicsConfig{
		MaxFallSpeed: 10.0,
		FloorY:       320,
	}

	Target = TargetConfig{
		Width:             20,
		Height:            40,
		DefaultHealth:     60,
		RespawnFrames:     120, // 2 seconds at 60fps
		HealthBarDuration: 180,
	}

	Combat = CombatConfig{
		HitFlashFrames:    3,
		DamageFlashFrames: 5,
	}

	HUD = HUDConfig{
		Margin: 10,

		ChargeBarWidth:   28,
		ChargeBarHeight:  4,
		ChargeBarOffsetY: 10,
		ChargeBarGap:     2,
		FadeSeconds:      0.15,

		ChargeBgColor:   color.RGBA{R: 40, G: 40, B: 40, A: 220},
		ChargeFgColor:   BrightOrange,
		ChargeFullColor: BrightGreen,
		TextColor:       White,
		DimTextColor:    LightBlue,
	}

	ScreenShake = ScreenShakeConfig{
		Intensity: 3.0,
		Duration:  6,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "Paused",
		Hint:         "Esc: Resume",
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
	}
}
