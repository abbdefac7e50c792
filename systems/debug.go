package systems

import (
	"image/color"

	"github.com/automoto/ldtk/components"
	cfg "github.com/automoto/ldtk/config"
	"github.com/automoto/ldtk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space: walls in grey,
// spawn points in cyan. Spawns that carry world coordinates get a yellow
// marker at their pivot.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	viewer := getViewer(ecs)
	if !viewer.ShowDebug {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	lvl := levelData.CurrentLevel()
	if lvl == nil {
		return
	}
	origin := screenOrigin(ecs, levelData.Resources, lvl)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	// Viewport in level coordinates
	viewX := -origin.X
	viewY := -origin.Y
	viewW := float64(screen.Bounds().Dx())
	viewH := float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
			continue
		}

		x := obj.X + origin.X
		y := obj.Y + origin.Y

		c := cfg.SpawnColor
		if obj.HasTags(tags.ResolvSolid) {
			c = cfg.WallColor
		}
		strokeRect(screen, x, y, obj.W, obj.H, c)
	}

	tags.Spawn.Each(ecs.World, func(e *donburi.Entry) {
		spawn := components.Spawn.Get(e)
		if spawn.Instance.World == nil {
			return
		}
		px := float64(spawn.Instance.Px.X) + origin.X
		py := float64(spawn.Instance.Px.Y) + origin.Y
		vector.FillRect(screen, float32(px-1), float32(py-1), 3, 3, cfg.WorldColor, false)
	})
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
