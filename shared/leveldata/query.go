package leveldata

import (
	"fmt"
	"sort"
)

// Level returns the level stored at c.
func (r *Resources) Level(c Coord) (*Level, error) {
	lvl, ok := r.Levels[c]
	if !ok {
		return nil, &LevelNotFoundError{Coord: c}
	}
	return lvl, nil
}

// LevelByIdentifier finds a level by its editor identifier.
func (r *Resources) LevelByIdentifier(identifier string) (Coord, *Level, error) {
	for c, lvl := range r.Levels {
		if lvl.Identifier == identifier {
			return c, lvl, nil
		}
	}
	return Coord{}, nil, fmt.Errorf("level %q: %w", identifier, ErrLevelNotFound)
}

// Coords lists every level coordinate, sorted top-to-bottom then left-to-right.
func (r *Resources) Coords() []Coord {
	coords := make([]Coord, 0, len(r.Levels))
	for c := range r.Levels {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	return coords
}

// Entities returns every entity in the level at c, in layer order and then in
// the order they were placed. Useful for spawning entities on load. The
// returned entities are copies; changing them does not affect r.
func (r *Resources) Entities(c Coord) ([]EntityInstance, error) {
	lvl, err := r.Level(c)
	if err != nil {
		return nil, err
	}

	var entities []EntityInstance
	for i := range lvl.Layers {
		for _, e := range lvl.Layers[i].Entities {
			entities = append(entities, e.clone())
		}
	}
	return entities, nil
}

func (e EntityInstance) clone() EntityInstance {
	if e.Tags != nil {
		e.Tags = append([]string(nil), e.Tags...)
	}
	if e.World != nil {
		w := *e.World
		e.World = &w
	}
	return e
}

// LayerIndex returns the render-order index of the layer with the given
// definition identifier.
func (l *Level) LayerIndex(identifier string) (int, error) {
	for i := range l.Layers {
		if l.Layers[i].LayerDefID == identifier {
			return i, nil
		}
	}
	return -1, fmt.Errorf("level %s has no layer %q", l.Identifier, identifier)
}

// CollisionRects returns one grid cell sized rectangle for every cell of
// layer layerIdx whose int-grid value equals value, in row-major order.
// Adjacent cells are not merged.
func (l *Level) CollisionRects(layerIdx int, value int64) ([]Rect, error) {
	if layerIdx < 0 || layerIdx >= len(l.Layers) {
		return nil, &LayerIndexError{Index: layerIdx, Count: len(l.Layers)}
	}
	return l.Layers[layerIdx].CollisionRects(value), nil
}

func (li *LayerInstance) CollisionRects(value int64) []Rect {
	if li.GridWidth <= 0 || li.GridHeight <= 0 {
		return nil
	}

	// Values past the declared grid would land outside the level.
	cells := li.IntGrid
	if n := li.GridWidth * li.GridHeight; int64(len(cells)) > n {
		cells = cells[:n]
	}

	size := float64(li.GridSize)
	var rects []Rect
	for i, v := range cells {
		if v != value {
			continue
		}
		col := int64(i) % li.GridWidth
		row := int64(i) / li.GridWidth
		rects = append(rects, Rect{
			X: float64(col * li.GridSize),
			Y: float64(row * li.GridSize),
			W: size,
			H: size,
		})
	}
	return rects
}

// Step moves n places from c through Coords() order and reports whether the
// result is a different level. It stops at either end instead of wrapping.
func (r *Resources) Step(c Coord, n int) (Coord, bool) {
	coords := r.Coords()
	idx := -1
	for i := range coords {
		if coords[i] == c {
			idx = i
			break
		}
	}
	if idx < 0 || len(coords) == 0 {
		return c, false
	}

	next := idx + n
	if next < 0 {
		next = 0
	}
	if next >= len(coords) {
		next = len(coords) - 1
	}
	return coords[next], next != idx
}
