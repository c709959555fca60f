package components

import (
	"github.com/automoto/doomerang-arsenal/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name  string
	Range *leveldata.Range
}

var Level = donburi.NewComponentType[LevelData]()
