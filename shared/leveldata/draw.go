package leveldata

// Quad is one tile to draw: a tile-sized region of a texture placed at a
// screen position.
type Quad struct {
	X, Y  float64
	Src   Rect
	Alpha float64
	Flip  Flip
}

// Drawer is the drawing backend DrawLevel delegates to.
type Drawer[T any] interface {
	DrawQuad(tex T, q Quad)
}

// DrawLevel draws the level at coord through d. textures must be the slice the
// project was loaded with. origin is in pixels; source, when non-nil, is in
// grid units and limits drawing to the tiles whose position falls inside it.
//
// Entity layers, hidden layers and layers without a tileset are skipped.
func DrawLevel[T any](r *Resources, coord Coord, textures []Texture[T], d Drawer[T], origin Vec2, source *Rect) error {
	lvl, err := r.Level(coord)
	if err != nil {
		return err
	}

	for i := range lvl.Layers {
		layer := &lvl.Layers[i]

		def, ok := r.LayerDefs[layer.LayerDefID]
		if !ok || def.Type == LayerEntities {
			continue
		}
		if layer.TilesetID == "" || !layer.Visible {
			continue
		}
		tileset, ok := r.Tilesets[layer.TilesetID]
		if !ok {
			continue
		}
		if tileset.TextureIndex < 0 || tileset.TextureIndex >= len(textures) {
			return &TextureIndexError{Tileset: tileset.Identifier, Index: tileset.TextureIndex, Count: len(textures)}
		}
		tex := textures[tileset.TextureIndex].Handle
		size := float64(tileset.TileGridSize)

		for j := range layer.Tiles {
			t := &layer.Tiles[j]
			if source != nil && !source.containsGrid(t.Px, size) {
				continue
			}
			d.DrawQuad(tex, Quad{
				X:     float64(t.Px.X+layer.PxOffset.X) + origin.X,
				Y:     float64(t.Px.Y+layer.PxOffset.Y) + origin.Y,
				Src:   Rect{X: float64(t.Src.X), Y: float64(t.Src.Y), W: size, H: size},
				Alpha: t.Alpha * layer.Opacity,
				Flip:  t.Flip,
			})
		}
	}
	return nil
}

// containsGrid reports whether pixel position px, converted to grid units,
// lies inside s.
func (s *Rect) containsGrid(px Point, size float64) bool {
	if size <= 0 {
		return false
	}
	gx := float64(px.X) / size
	gy := float64(px.Y) / size
	return gx >= s.X && gx < s.X+s.W && gy >= s.Y && gy < s.Y+s.H
}
