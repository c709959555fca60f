package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment overrides read at startup.
type Env struct {
	Loadout    []string `env:"ARSENAL_LOADOUT" envSeparator:","` // weapon names
	RangeMap   string   `env:"ARSENAL_RANGE_MAP" envDefault:"levels/range.tmx"`
	WeaponsDir string   `env:"ARSENAL_WEAPONS_DIR"` // on disk, replaces the embedded set
	Debug      bool     `env:"ARSENAL_DEBUG"`
	NoSave     bool     `env:"ARSENAL_NO_SAVE"`
}

// LoadEnv parses the ARSENAL_* variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}

// Apply copies the overrides into the global configuration.
func (e Env) Apply() {
	if len(e.Loadout) > 0 {
		Weapons.Loadout = e.Loadout
		Weapons.DefaultLoadout = 0
	}
	if e.Debug {
		Debug.ShowHitboxes = true
	}
	Debug.NoSave = e.NoSave
}
