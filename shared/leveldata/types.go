// Package leveldata parses firing range maps from TMX. It has no dependencies
// on ebitengine, donburi, or resolv, pure data only.
package leveldata

// Range holds everything the range scene builds from one TMX file.
type Range struct {
	Name        string
	Solids      []SolidRect
	SpawnPoints []SpawnPoint
	Targets     []TargetSpawn
	MapWidth    int
	MapHeight   int
}

// SolidRect represents a solid collision rectangle.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// TargetSpawn is a dummy placed in the Targets object group.
type TargetSpawn struct {
	Name          string
	X, Y          float64
	Health        int // 0 means use the configured default
	RespawnFrames int // 0 means use the configured default
}

// Spawn returns the spawn point with the given index, falling back to the
// leftmost one.
func (r *Range) Spawn(index int) (SpawnPoint, bool) {
	if r == nil || len(r.SpawnPoints) == 0 {
		return SpawnPoint{}, false
	}
	for _, sp := range r.SpawnPoints {
		if sp.Index == index {
			return sp, true
		}
	}
	return r.SpawnPoints[0], true
}
