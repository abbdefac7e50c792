// Package leveldata turns decoded LDtk projects into the resource model used
// for rendering and collision queries. It has no dependencies on ebitengine,
// donburi, or resolv. Pure data only.
package leveldata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/ldtk/shared/ldtkjson"
)

// WorldLayout mirrors the project's level arrangement.
type WorldLayout = ldtkjson.WorldLayout

const (
	LayoutFree             = ldtkjson.LayoutFree
	LayoutGridVania        = ldtkjson.LayoutGridVania
	LayoutLinearHorizontal = ldtkjson.LayoutLinearHorizontal
	LayoutLinearVertical   = ldtkjson.LayoutLinearVertical
)

// Coord addresses a level. Free and GridVania projects use the level's world
// position; linear projects use the level's position in the document.
type Coord struct {
	X, Y int64
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// ParseCoord reads a coordinate written as "X,Y". Surrounding parentheses
// and spaces are accepted, so Coord.String output parses back.
func ParseCoord(s string) (Coord, error) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "("), ")")
	xs, ys, ok := strings.Cut(trimmed, ",")
	if !ok {
		return Coord{}, fmt.Errorf("invalid coordinate %q: want X,Y", s)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 64)
	if err != nil {
		return Coord{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 64)
	if err != nil {
		return Coord{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	return Coord{X: x, Y: y}, nil
}

// Point is an integer pixel or grid position.
type Point struct {
	X, Y int64
}

type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. Collision rects are in level pixels,
// draw clip rects are in grid units.
type Rect struct {
	X, Y, W, H float64
}

// Texture pairs a caller-owned texture handle with the path, relative to the
// project file, that tilesets use to refer to it.
type Texture[T any] struct {
	Handle T
	Path   string
}

// Resources holds everything needed to draw and query a project. It is built
// once by LoadProject and never modified afterwards.
type Resources struct {
	Layout WorldLayout

	// Levels are keyed by their coordinate. In LinearHorizontal projects Y is
	// always 0; in LinearVertical projects X is always 0.
	Levels map[Coord]*Level

	// Tilesets are keyed by the texture path layer instances refer to.
	Tilesets map[string]*Tileset

	LayerDefs map[string]*LayerDef
}

type Level struct {
	Identifier string
	Iid        string
	WorldX     int64
	WorldY     int64
	Width      int64
	Height     int64

	// Layers in render order.
	Layers []LayerInstance
}

type LayerInstance struct {
	GridWidth  int64
	GridHeight int64
	GridSize   int64

	// LayerDefID indexes Resources.LayerDefs.
	LayerDefID string
	// TilesetID indexes Resources.Tilesets. Empty when the layer has no tiles.
	TilesetID string

	Opacity  float64
	Visible  bool
	PxOffset Point

	// Tiles in render order, not in position order.
	Tiles    []TileInstance
	Entities []EntityInstance

	// IntGrid is row-major, GridWidth*GridHeight long; 0 means empty.
	IntGrid []int64
}

// LayerType is the closed set of layer kinds selectable in the editor.
type LayerType int

const (
	LayerIntGrid LayerType = iota
	// LayerEntities layers are never drawn by DrawLevel.
	LayerEntities
	LayerTiles
	LayerAutoLayer
)

func (t LayerType) String() string {
	switch t {
	case LayerIntGrid:
		return "IntGrid"
	case LayerEntities:
		return "Entities"
	case LayerTiles:
		return "Tiles"
	case LayerAutoLayer:
		return "AutoLayer"
	}
	return fmt.Sprintf("LayerType(%d)", int(t))
}

type LayerDef struct {
	Type       LayerType
	Identifier string
	Opacity    float64
	GridSize   int64
	UID        int64
}

// Flip bits of a tile instance.
type Flip uint8

const (
	FlipX Flip = 1 << iota
	FlipY
)

type TileInstance struct {
	Alpha float64

	// Px is the position in the level, Src the position in the tileset image.
	Px  Point
	Src Point

	TileID int64
	Flip   Flip
}

// EntityInstance is an entity as placed in the editor. Treat it as a spawn
// point, not as the live entity.
type EntityInstance struct {
	Grid  Point
	Pivot Vec2
	Tags  []string
	Px    Point

	// World is nil unless the export carries both world coordinates, which
	// only happens in Free and GridVania projects.
	World *Point

	Identifier string
	Iid        string

	Width  int64
	Height int64
}

type Tileset struct {
	// TextureIndex indexes the texture slice passed to LoadProject.
	TextureIndex int
	RelPath      string

	GridWidth  int64
	GridHeight int64

	Padding      int64
	Spacing      int64
	TileGridSize int64

	Identifier string
	UID        int64
}
