package leveldata_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/automoto/ldtk/shared/ldtkjson"
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProject(t *testing.T) {
	res := loadBasic(t)

	assert.Equal(t, ldtkjson.LayoutGridVania, res.Layout)
	require.Len(t, res.Levels, 2)
	assert.Contains(t, res.Levels, leveldata.Coord{X: 0, Y: 0})
	assert.Contains(t, res.Levels, leveldata.Coord{X: 64, Y: 0})

	// The embedded icon atlas has no path and is not bound.
	require.Len(t, res.Tilesets, 1)
	ts := res.Tilesets["tiles.png"]
	require.NotNil(t, ts)
	assert.Equal(t, 1, ts.TextureIndex)
	assert.Equal(t, "Platformer", ts.Identifier)
	assert.Equal(t, int64(16), ts.TileGridSize)
	assert.Equal(t, int64(4), ts.GridWidth)
	assert.Equal(t, int64(2), ts.GridHeight)

	require.Len(t, res.LayerDefs, 3)
	assert.Equal(t, leveldata.LayerEntities, res.LayerDefs["Entities"].Type)
	assert.Equal(t, leveldata.LayerTiles, res.LayerDefs["Tiles"].Type)
	assert.Equal(t, leveldata.LayerIntGrid, res.LayerDefs["Collisions"].Type)
	assert.Equal(t, 0.6, res.LayerDefs["Collisions"].Opacity)
}

func TestLoadProjectExternalLevel(t *testing.T) {
	res := loadBasic(t)

	lvl, err := res.Level(leveldata.Coord{X: 64, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, "Level_1", lvl.Identifier)
	require.Len(t, lvl.Layers, 3)
	assert.Equal(t, "Door", lvl.Layers[0].Entities[0].Identifier)
	assert.False(t, lvl.Layers[1].Visible)
}

func TestLoadProjectRawIsUnresolved(t *testing.T) {
	doc, err := leveldata.LoadProjectRaw("testdata/basic.ldtk")
	require.NoError(t, err)

	require.Len(t, doc.Levels, 2)
	assert.Nil(t, doc.Levels[1].LayerInstances)
	require.NotNil(t, doc.Levels[1].ExternalRelPath)
	assert.Equal(t, "basic/Level_1.ldtkl", *doc.Levels[1].ExternalRelPath)
}

func TestTexturePaths(t *testing.T) {
	doc, err := leveldata.LoadProjectRaw("testdata/basic.ldtk")
	require.NoError(t, err)

	paths := leveldata.TexturePaths(doc)
	assert.Equal(t, []string{"tiles.png"}, paths)

	textures := make([]leveldata.Texture[int], len(paths))
	for i, p := range paths {
		textures[i] = leveldata.Texture[int]{Handle: i, Path: p}
	}
	_, err = leveldata.LoadProject("testdata/basic.ldtk", textures)
	assert.NoError(t, err)
}

func TestLoadProjectLayouts(t *testing.T) {
	levels := []testLevel{
		{id: "A", worldX: 300, worldY: -40},
		{id: "B", worldX: -12, worldY: 7},
		{id: "C", worldX: 0, worldY: 900},
	}

	tests := []struct {
		layout string
		want   []leveldata.Coord
	}{
		{"Free", []leveldata.Coord{{X: 300, Y: -40}, {X: -12, Y: 7}, {X: 0, Y: 900}}},
		{"GridVania", []leveldata.Coord{{X: 300, Y: -40}, {X: -12, Y: 7}, {X: 0, Y: 900}}},
		{"LinearHorizontal", []leveldata.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}},
		{"LinearVertical", []leveldata.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			fsys := projectFS(t, tt.layout, "IntGrid", levels...)

			res, err := leveldata.LoadProjectFS(fsys, "project.ldtk", noTextures)
			require.NoError(t, err)
			assert.Equal(t, leveldata.WorldLayout(tt.layout), res.Layout)
			require.Len(t, res.Levels, len(levels))

			for i, c := range tt.want {
				lvl, err := res.Level(c)
				require.NoError(t, err, "coord %s", c)
				assert.Equal(t, levels[i].id, lvl.Identifier)
			}
		})
	}
}

func TestLoadProjectNullLayout(t *testing.T) {
	fsys := projectFS(t, "", "IntGrid", testLevel{id: "A"})

	res, err := leveldata.LoadProjectFS(fsys, "project.ldtk", noTextures)
	assert.ErrorIs(t, err, leveldata.ErrNullWorldLayout)
	assert.Nil(t, res)
}

func TestLoadProjectUnknownLayerType(t *testing.T) {
	fsys := projectFS(t, "Free", "Mystery", testLevel{id: "A"})

	res, err := leveldata.LoadProjectFS(fsys, "project.ldtk", noTextures)
	var layerErr *leveldata.UnknownLayerTypeError
	require.ErrorAs(t, err, &layerErr)
	assert.Equal(t, "Mystery", layerErr.LayerType)
	assert.Nil(t, res)
}

func TestLoadProjectTextureNotFound(t *testing.T) {
	textures := []leveldata.Texture[string]{{Handle: "x", Path: "other.png"}}

	res, err := leveldata.LoadProject("testdata/basic.ldtk", textures)
	var texErr *leveldata.TextureNotFoundError
	require.ErrorAs(t, err, &texErr)
	assert.Equal(t, "Platformer", texErr.Tileset)
	assert.Equal(t, "tiles.png", texErr.RelPath)
	assert.Nil(t, res)
}

func TestLoadProjectDuplicateCoord(t *testing.T) {
	fsys := projectFS(t, "Free", "IntGrid",
		testLevel{id: "A", worldX: 10, worldY: 10},
		testLevel{id: "B", worldX: 10, worldY: 10},
	)

	res, err := leveldata.LoadProjectFS(fsys, "project.ldtk", noTextures)
	var dupErr *leveldata.DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "level coordinate", dupErr.Kind)
	assert.Nil(t, res)
}

func TestLoadProjectDuplicateLayerDef(t *testing.T) {
	fsys := fstest.MapFS{"p.ldtk": {Data: []byte(`{
		"worldLayout": "Free",
		"defs": {"layers": [
			{"__type": "IntGrid", "identifier": "Ground", "gridSize": 8, "uid": 1},
			{"__type": "Tiles", "identifier": "Ground", "gridSize": 8, "uid": 2}
		]},
		"levels": []
	}`)}}

	_, err := leveldata.LoadProjectFS(fsys, "p.ldtk", noTextures)
	var dupErr *leveldata.DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "layer definition", dupErr.Kind)
	assert.Equal(t, "Ground", dupErr.Key)
}

func TestLoadProjectDuplicateTileset(t *testing.T) {
	fsys := fstest.MapFS{"p.ldtk": {Data: []byte(`{
		"worldLayout": "Free",
		"defs": {"tilesets": [
			{"__cWid": 2, "__cHei": 2, "identifier": "A", "uid": 1, "relPath": "tiles.png", "tileGridSize": 8},
			{"__cWid": 2, "__cHei": 2, "identifier": "B", "uid": 2, "relPath": "tiles.png", "tileGridSize": 8}
		]},
		"levels": []
	}`)}}
	textures := []leveldata.Texture[string]{{Handle: "tiles", Path: "tiles.png"}}

	res, err := leveldata.LoadProjectFS(fsys, "p.ldtk", textures)
	var dupErr *leveldata.DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "tileset", dupErr.Kind)
	assert.Equal(t, "tiles.png", dupErr.Key)
	assert.Nil(t, res)
}

func TestLoadProjectUnresolvedRefsReportsFirstLevel(t *testing.T) {
	bad := `{"__identifier": "Nope", "__cWid": 1, "__cHei": 1, "__gridSize": 8}`
	fsys := fstest.MapFS{"p.ldtk": {Data: []byte(`{
		"worldLayout": "LinearVertical",
		"defs": {"layers": [{"__type": "Tiles", "identifier": "Ground", "gridSize": 8, "uid": 1}]},
		"levels": [
			{"identifier": "A", "pxWid": 8, "pxHei": 8, "layerInstances": [` + bad + `]},
			{"identifier": "B", "pxWid": 8, "pxHei": 8, "layerInstances": [` + bad + `]},
			{"identifier": "C", "pxWid": 8, "pxHei": 8, "layerInstances": [` + bad + `]}
		]
	}`)}}

	for i := 0; i < 20; i++ {
		_, err := leveldata.LoadProjectFS(fsys, "p.ldtk", noTextures)
		var refErr *leveldata.UnresolvedRefError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, "A", refErr.Level)
	}
}

func TestLoadProjectTrailingData(t *testing.T) {
	fsys := fstest.MapFS{"p.ldtk": {Data: []byte(`{"worldLayout":"Free","levels":[]} }}garbage`)}}

	res, err := leveldata.LoadProjectFS(fsys, "p.ldtk", noTextures)
	var decErr *ldtkjson.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, ldtkjson.CategorySyntax, decErr.Category)
	assert.Nil(t, res)
}

func TestLoadProjectUnresolvedRefs(t *testing.T) {
	tests := []struct {
		name     string
		layer    string
		wantKind string
	}{
		{"layer definition", `{"__identifier": "Nope", "__cWid": 1, "__cHei": 1, "__gridSize": 8}`, "layer definition"},
		{"tileset", `{"__identifier": "Ground", "__tilesetRelPath": "missing.png", "__cWid": 1, "__cHei": 1, "__gridSize": 8}`, "tileset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"p.ldtk": {Data: []byte(`{
				"worldLayout": "LinearHorizontal",
				"defs": {"layers": [{"__type": "Tiles", "identifier": "Ground", "gridSize": 8, "uid": 1}]},
				"levels": [{"identifier": "L", "pxWid": 8, "pxHei": 8, "layerInstances": [` + tt.layer + `]}]
			}`)}}

			res, err := leveldata.LoadProjectFS(fsys, "p.ldtk", noTextures)
			var refErr *leveldata.UnresolvedRefError
			require.ErrorAs(t, err, &refErr)
			assert.Equal(t, tt.wantKind, refErr.Kind)
			assert.Equal(t, "L", refErr.Level)
			assert.Nil(t, res)
		})
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	_, err := leveldata.LoadProject("testdata/missing.ldtk", noTextures)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadProjectMissingExternalLevel(t *testing.T) {
	fsys := fstest.MapFS{"p.ldtk": {Data: []byte(`{
		"worldLayout": "Free",
		"levels": [{"identifier": "L", "externalRelPath": "p/L.ldtkl", "layerInstances": null}]
	}`)}}

	_, err := leveldata.LoadProjectFS(fsys, "p.ldtk", noTextures)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadProjectDecodeError(t *testing.T) {
	fsys := fstest.MapFS{"p.ldtk": {Data: []byte(`{"levels": "nope"}`)}}

	_, err := leveldata.LoadProjectFS(fsys, "p.ldtk", noTextures)
	var decErr *ldtkjson.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, ldtkjson.CategoryData, decErr.Category)
}
