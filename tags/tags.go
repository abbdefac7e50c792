package tags

import "github.com/yohamta/donburi"

var (
	Wall  = donburi.NewTag().SetName("Wall")
	Spawn = donburi.NewTag().SetName("Spawn")
)

// Resolv tags for collision objects
const (
	ResolvSolid = "solid"
	ResolvSpawn = "spawn"
)
