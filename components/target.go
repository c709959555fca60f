package components

import "github.com/yohamta/donburi"

// TargetData is a firing range dummy.
type TargetData struct {
	Name          string
	SpawnX        float64
	SpawnY        float64
	RespawnFrames int
	RespawnTimer  int // frames until it stands back up, 0 while up
	Down          bool
	Hits          int // total hits taken, shown on the HUD
}

var Target = donburi.NewComponentType[TargetData]()
