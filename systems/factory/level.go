package factory

import (
	"fmt"
	"log"

	"github.com/automoto/ldtk/archetypes"
	"github.com/automoto/ldtk/components"
	cfg "github.com/automoto/ldtk/config"
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/automoto/ldtk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCell is the resolv cell size used for every level.
const spaceCell = 16

// CreateLevel adds the level entity. Walls and spawns are created by
// PopulateLevel.
func CreateLevel(ecs *ecs.ECS, projectPath string, res *leveldata.Resources, textures []leveldata.Texture[*ebiten.Image], start leveldata.Coord) (*donburi.Entry, error) {
	if _, err := res.Level(start); err != nil {
		return nil, err
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		ProjectPath: projectPath,
		Resources:   res,
		Textures:    textures,
		Current:     start,
	})
	return level, nil
}

// PopulateLevel replaces the space, walls and spawn points with those of the
// current level.
func PopulateLevel(ecs *ecs.ECS) error {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return fmt.Errorf("no level entity")
	}
	levelData := components.Level.Get(levelEntry)
	lvl, err := levelData.Resources.Level(levelData.Current)
	if err != nil {
		return err
	}

	clearLevel(ecs)

	CreateSpace(ecs, int(lvl.Width), int(lvl.Height), spaceCell, spaceCell)

	walls := 0
	if idx, err := lvl.LayerIndex(cfg.C.CollisionLayer); err == nil {
		rects, err := lvl.CollisionRects(idx, cfg.C.SolidValue)
		if err != nil {
			return err
		}
		for _, r := range rects {
			CreateWall(ecs, r)
		}
		walls = len(rects)
	}

	entities, err := levelData.Resources.Entities(levelData.Current)
	if err != nil {
		return err
	}
	for _, e := range entities {
		CreateSpawn(ecs, e)
	}

	log.Printf("Loaded level %s at %s: %d walls, %d entities, %dx%d px",
		lvl.Identifier, levelData.Current, walls, len(entities), lvl.Width, lvl.Height)

	return nil
}

func clearLevel(ecs *ecs.ECS) {
	var stale []*donburi.Entry
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) { stale = append(stale, e) })
	tags.Spawn.Each(ecs.World, func(e *donburi.Entry) { stale = append(stale, e) })
	components.Space.Each(ecs.World, func(e *donburi.Entry) { stale = append(stale, e) })

	for _, e := range stale {
		e.Remove()
	}
}
