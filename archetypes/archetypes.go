package archetypes

import (
	"github.com/automoto/ldtk/components"
	cfg "github.com/automoto/ldtk/config"
	"github.com/automoto/ldtk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Level = newArchetype(
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Spawn = newArchetype(
		tags.Spawn,
		components.Spawn,
		components.Object,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Viewer = newArchetype(
		components.Viewer,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
