package components

import (
	"github.com/yohamta/donburi"
)

// HitboxData is a short lived damage area spawned by a weapon action.
type HitboxData struct {
	OwnerEntity *donburi.Entry          // The entity that created this hitbox
	Damage      int                     // Damage per entity hit
	DamageType  string                  // Passed to TakeDamage
	LifeTime    int                     // Frames this hitbox lasts
	HitEntities map[*donburi.Entry]bool // Entities already hit (prevent multiple hits)

	// Follow keeps the box at OffsetX/OffsetY from the owner's centre, mirrored
	// with the owner's facing.
	Follow  bool
	OffsetX float64
	OffsetY float64
}

var Hitbox = donburi.NewComponentType[HitboxData]()

// ProjectileData is a straight line shot. Speed lives in Physics.
type ProjectileData struct {
	OwnerEntity *donburi.Entry
	Damage      int
	DamageType  string
	Range       float64 // pixels before the projectile expires
	Traveled    float64
	Pierce      int // extra targets it may pass through
	HitEntities map[*donburi.Entry]bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
