package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Target     = donburi.NewTag().SetName("Target")
	Wall       = donburi.NewTag().SetName("Wall")
	Hitbox     = donburi.NewTag().SetName("Hitbox")
	Projectile = donburi.NewTag().SetName("Projectile")
	ChargeBar  = donburi.NewTag().SetName("ChargeBar")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvTarget     = "Target"
	ResolvHitbox     = "Hitbox"
	ResolvProjectile = "Projectile"
)
