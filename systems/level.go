package systems

import (
	"image"
	"log"

	"github.com/automoto/ldtk/components"
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ScreenDrawer draws leveldata quads onto an ebiten image.
type ScreenDrawer struct {
	Screen *ebiten.Image
	opts   ebiten.DrawImageOptions
}

func (d *ScreenDrawer) DrawQuad(tex *ebiten.Image, q leveldata.Quad) {
	if tex == nil {
		return
	}
	src := image.Rect(int(q.Src.X), int(q.Src.Y), int(q.Src.X+q.Src.W), int(q.Src.Y+q.Src.H))
	sub := tex.SubImage(src).(*ebiten.Image)

	d.opts.GeoM.Reset()
	d.opts.ColorScale.Reset()
	if q.Flip&leveldata.FlipX != 0 {
		d.opts.GeoM.Scale(-1, 1)
		d.opts.GeoM.Translate(q.Src.W, 0)
	}
	if q.Flip&leveldata.FlipY != 0 {
		d.opts.GeoM.Scale(1, -1)
		d.opts.GeoM.Translate(0, q.Src.H)
	}
	d.opts.GeoM.Translate(q.X, q.Y)
	d.opts.ColorScale.ScaleAlpha(float32(q.Alpha))

	d.Screen.DrawImage(sub, &d.opts)
}

var screenDrawer ScreenDrawer

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
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

	// Only tiles that can reach the screen are drawn.
	view := leveldata.Rect{
		X: -origin.X,
		Y: -origin.Y,
		W: float64(screen.Bounds().Dx()),
		H: float64(screen.Bounds().Dy()),
	}

	screenDrawer.Screen = screen
	err := leveldata.DrawLevel[*ebiten.Image](levelData.Resources, levelData.Current, levelData.Textures, &screenDrawer, origin, visibleGrid(levelData.Resources, lvl, view))
	if err != nil {
		log.Printf("Warning: draw level %s: %v", levelData.Current, err)
	}
}

// visibleGrid converts a pixel view into the grid-unit clip rectangle
// DrawLevel expects. Levels whose tile layers use different tileset cell
// sizes are not clipped.
func visibleGrid(res *leveldata.Resources, lvl *leveldata.Level, view leveldata.Rect) *leveldata.Rect {
	var size int64
	for _, layer := range lvl.Layers {
		ts, ok := res.Tilesets[layer.TilesetID]
		if !ok || ts.TileGridSize <= 0 {
			continue
		}
		if size != 0 && size != ts.TileGridSize {
			return nil
		}
		size = ts.TileGridSize
	}
	if size == 0 {
		return nil
	}
	s := float64(size)
	x := floorDiv(view.X, s) - 1
	y := floorDiv(view.Y, s) - 1
	return &leveldata.Rect{
		X: x,
		Y: y,
		W: floorDiv(view.X+view.W, s) + 2 - x,
		H: floorDiv(view.Y+view.H, s) + 2 - y,
	}
}

func floorDiv(v, size float64) float64 {
	q := v / size
	f := float64(int64(q))
	if f > q {
		f--
	}
	return f
}
