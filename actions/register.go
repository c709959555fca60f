package actions

import (
	"log"

	"github.com/automoto/doomerang-arsenal/weapon"
)

// Type tags used in weapon definitions.
const (
	TypeDamageArea  = "damage_area"
	TypeProjectile  = "projectile"
	TypeBeam        = "beam"
	TypeRecoil      = "recoil"
	TypeAnimate     = "animate"
	TypeScreenShake = "screen_shake"
	TypeLog         = "log"
)

// Register adds every sample action to reg.
func Register(reg *weapon.Registry) {
	RegisterWithLogger(reg, log.Default())
}

// RegisterWithLogger is Register with the logger the log action writes to.
func RegisterWithLogger(reg *weapon.Registry, logger *log.Logger) {
	reg.Register(TypeDamageArea, newDamageArea)
	reg.Register(TypeProjectile, newProjectile)
	reg.Register(TypeBeam, newBeam)
	reg.Register(TypeRecoil, newRecoil)
	reg.Register(TypeAnimate, newAnimate)
	reg.Register(TypeScreenShake, newScreenShake)
	reg.Register(TypeLog, func(p weapon.Params) (weapon.Action, error) {
		return newLog(p, logger)
	})
}

// NewRegistry returns a registry with the sample actions.
func NewRegistry() *weapon.Registry {
	reg := weapon.NewRegistry()
	Register(reg)
	return reg
}
