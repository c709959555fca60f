package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index        int
	Direction    Vector
	LoadoutIndex int // index into config.Weapons.Loadout
	SpawnX       float64
	SpawnY       float64
}

var Player = donburi.NewComponentType[PlayerData]()

// PoseData is the pose an animate action last triggered. It is shown by the
// renderer until Timer runs out.
type PoseData struct {
	Name  string
	Timer int // frames
}

var Pose = donburi.NewComponentType[PoseData]()
