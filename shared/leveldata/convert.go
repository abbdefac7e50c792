package leveldata

import "github.com/automoto/ldtk/shared/ldtkjson"

func ConvertTile(in *ldtkjson.TileInstance) TileInstance {
	return TileInstance{
		Alpha:  in.A,
		Px:     Point{X: in.Px[0], Y: in.Px[1]},
		Src:    Point{X: in.Src[0], Y: in.Src[1]},
		TileID: in.T,
		Flip:   Flip(in.F) & (FlipX | FlipY),
	}
}

// ParseLayerType maps an editor layer type name onto LayerType.
func ParseLayerType(s string) (LayerType, error) {
	switch s {
	case "IntGrid":
		return LayerIntGrid, nil
	case "Tiles":
		return LayerTiles, nil
	case "AutoLayer":
		return LayerAutoLayer, nil
	case "Entities":
		return LayerEntities, nil
	}
	return 0, &UnknownLayerTypeError{LayerType: s}
}

// ConvertEntity copies an entity instance. World coordinates are kept only
// when both axes are present; a lone axis is dropped.
func ConvertEntity(in *ldtkjson.EntityInstance) EntityInstance {
	var world *Point
	if in.WorldX != nil && in.WorldY != nil {
		world = &Point{X: *in.WorldX, Y: *in.WorldY}
	}

	var tags []string
	if len(in.Tags) > 0 {
		tags = append([]string(nil), in.Tags...)
	}

	return EntityInstance{
		Grid:       Point{X: in.Grid[0], Y: in.Grid[1]},
		Pivot:      Vec2{X: in.Pivot[0], Y: in.Pivot[1]},
		Tags:       tags,
		Px:         Point{X: in.Px[0], Y: in.Px[1]},
		World:      world,
		Identifier: in.Identifier,
		Iid:        in.Iid,
		Width:      in.Width,
		Height:     in.Height,
	}
}

func ConvertLayerDef(in *ldtkjson.LayerDefinition) (*LayerDef, error) {
	layerType, err := ParseLayerType(in.Type)
	if err != nil {
		return nil, err
	}

	return &LayerDef{
		Type:       layerType,
		Identifier: in.Identifier,
		Opacity:    in.DisplayOpacity,
		GridSize:   in.GridSize,
		UID:        in.UID,
	}, nil
}

// ConvertLevel converts a level and its layer instances. A layer takes its
// tiles from gridTiles when there are any and from autoLayerTiles otherwise;
// if an export carries both, the auto-layer tiles are dropped.
func ConvertLevel(in *ldtkjson.Level) *Level {
	layers := make([]LayerInstance, 0, len(in.LayerInstances))

	for i := range in.LayerInstances {
		l := &in.LayerInstances[i]

		source := l.GridTiles
		if len(source) == 0 {
			source = l.AutoLayerTiles
		}
		tiles := make([]TileInstance, 0, len(source))
		for j := range source {
			tiles = append(tiles, ConvertTile(&source[j]))
		}

		entities := make([]EntityInstance, 0, len(l.EntityInstances))
		for j := range l.EntityInstances {
			entities = append(entities, ConvertEntity(&l.EntityInstances[j]))
		}

		var tilesetID string
		if l.TilesetRelPath != nil {
			tilesetID = *l.TilesetRelPath
		}

		opacity := 1.0
		if l.Opacity != nil {
			opacity = *l.Opacity
		}
		visible := true
		if l.Visible != nil {
			visible = *l.Visible
		}

		layers = append(layers, LayerInstance{
			GridWidth:  l.CWid,
			GridHeight: l.CHei,
			GridSize:   l.GridSize,
			LayerDefID: l.Identifier,
			TilesetID:  tilesetID,
			Opacity:    opacity,
			Visible:    visible,
			PxOffset:   Point{X: l.PxTotalOffsetX, Y: l.PxTotalOffsetY},
			Tiles:      tiles,
			Entities:   entities,
			IntGrid:    append([]int64(nil), l.IntGridCsv...),
		})
	}

	return &Level{
		Identifier: in.Identifier,
		Iid:        in.Iid,
		WorldX:     in.WorldX,
		WorldY:     in.WorldY,
		Width:      in.PxWid,
		Height:     in.PxHei,
		Layers:     layers,
	}
}
