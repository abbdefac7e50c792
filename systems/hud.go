package systems

import (
	"fmt"

	"github.com/automoto/ldtk/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 4

// DrawHUD prints the current level and, in debug mode, the collision summary.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	viewer := getViewer(ecs)
	ebitenutil.DebugPrintAt(screen, viewer.Status, hudMargin, hudMargin)

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

	objects := 0
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		objects = len(components.Space.Get(spaceEntry).Objects())
	}
	line := fmt.Sprintf("%dx%d px, %d layers, %d objects, %.0f fps",
		lvl.Width, lvl.Height, len(lvl.Layers), objects, ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, line, hudMargin, hudMargin+16)
}
