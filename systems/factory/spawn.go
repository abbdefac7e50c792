package factory

import (
	"github.com/automoto/ldtk/archetypes"
	"github.com/automoto/ldtk/components"
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/automoto/ldtk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpawn places an entity instance in the world. The collision object
// covers the entity's bounds, with its pivot applied, and is tagged with the
// entity identifier and its editor tags.
func CreateSpawn(ecs *ecs.ECS, e leveldata.EntityInstance) *donburi.Entry {
	spawn := archetypes.Spawn.Spawn(ecs)

	w := float64(e.Width)
	h := float64(e.Height)
	x := float64(e.Px.X) - e.Pivot.X*w
	y := float64(e.Px.Y) - e.Pivot.Y*h

	objTags := append([]string{tags.ResolvSpawn, e.Identifier}, e.Tags...)
	obj := resolv.NewObject(x, y, w, h, objTags...)
	obj.Data = spawn

	components.Spawn.SetValue(spawn, components.SpawnData{Instance: e})
	components.Object.SetValue(spawn, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return spawn
}
