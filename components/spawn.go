package components

import (
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/yohamta/donburi"
)

// SpawnData is an editor entity placement in the current level.
type SpawnData struct {
	Instance leveldata.EntityInstance
}

var Spawn = donburi.NewComponentType[SpawnData]()
