package archetypes

import (
	"github.com/automoto/doomerang-arsenal/components"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Object,
		components.Health,
		components.Physics,
		components.Weapon,
		components.Pose,
		components.Flash,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Object,
		components.Health,
		components.HealthBar,
		components.Flash,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
	)
	Spark = newArchetype(
		components.Object,
		components.AutoDestroy,
	)
	ChargeBar = newArchetype(
		tags.ChargeBar,
		components.ChargeBar,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	WeaponClock = newArchetype(
		components.WeaponClock,
	)
	Arsenal = newArchetype(
		components.Arsenal,
	)
	Pause = newArchetype(
		components.Pause,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs. It takes
// the bare world so weapon actions, which only see the world, can spawn too.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType(nil), a.components...), cs...)
	return w.Entry(w.Create(all...))
}
