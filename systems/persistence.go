package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/quasilyte/gdata"
)

// SavedLoadout represents the loadout choice stored on disk
type SavedLoadout struct {
	Weapon string `json:"weapon"`
	Index  int    `json:"index"`
}

const loadoutKey = "loadout"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for loadout storage
func InitPersistence() error {
	if cfg.Debug.NoSave {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang-arsenal",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadLoadout returns the saved loadout index, falling back to the default.
// A saved weapon name wins over its index so reordering the loadout keeps
// the player's choice.
func LoadLoadout() int {
	fallback := cfg.Weapons.DefaultLoadout
	if !gdataInitialized || gdataManager == nil {
		return fallback
	}

	data, err := gdataManager.LoadItem(loadoutKey)
	if err != nil {
		log.Printf("Warning: Could not load loadout: %v", err)
		return fallback
	}
	if data == nil {
		return fallback
	}

	var saved SavedLoadout
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved loadout: %v", err)
		return fallback
	}
	for i, name := range cfg.Weapons.Loadout {
		if name == saved.Weapon {
			return i
		}
	}
	if saved.Index >= 0 && saved.Index < len(cfg.Weapons.Loadout) {
		return saved.Index
	}
	return fallback
}

// SaveLoadout saves the loadout index to disk
func SaveLoadout(index int) {
	if !gdataInitialized || gdataManager == nil {
		return
	}
	if index < 0 || index >= len(cfg.Weapons.Loadout) {
		return
	}

	data, err := json.Marshal(SavedLoadout{Weapon: cfg.Weapons.Loadout[index], Index: index})
	if err != nil {
		log.Printf("Warning: Could not serialize loadout: %v", err)
		return
	}
	if err := gdataManager.SaveItem(loadoutKey, data); err != nil {
		log.Printf("Warning: Could not save loadout: %v", err)
	}
}
