package leveldata_test

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/stretchr/testify/require"
)

var basicTextures = []leveldata.Texture[string]{
	{Handle: "background-texture", Path: "background.png"},
	{Handle: "tiles-texture", Path: "tiles.png"},
}

func loadBasic(t *testing.T) *leveldata.Resources {
	t.Helper()
	res, err := leveldata.LoadProject("testdata/basic.ldtk", basicTextures)
	require.NoError(t, err)
	return res
}

type testLevel struct {
	id     string
	worldX int64
	worldY int64
}

// projectFS builds a one-file project with a single "Ground" layer of the
// given type in every level. An empty layout leaves worldLayout null.
func projectFS(t *testing.T, layout, layerType string, levels ...testLevel) fstest.MapFS {
	t.Helper()

	var wl any
	if layout != "" {
		wl = layout
	}

	lvls := make([]map[string]any, 0, len(levels))
	for i, l := range levels {
		lvls = append(lvls, map[string]any{
			"identifier": l.id,
			"iid":        l.id,
			"uid":        i,
			"worldX":     l.worldX,
			"worldY":     l.worldY,
			"pxWid":      16,
			"pxHei":      8,
			"layerInstances": []map[string]any{{
				"__identifier":    "Ground",
				"__type":          layerType,
				"__cWid":          2,
				"__cHei":          1,
				"__gridSize":      8,
				"intGridCsv":      []int{0, 1},
				"gridTiles":       []any{},
				"autoLayerTiles":  []any{},
				"entityInstances": []any{},
			}},
		})
	}

	doc := map[string]any{
		"jsonVersion": "1.5.3",
		"worldLayout": wl,
		"defs": map[string]any{
			"layers": []map[string]any{{
				"__type": layerType, "identifier": "Ground", "displayOpacity": 1, "gridSize": 8, "uid": 1,
			}},
			"tilesets": []any{},
		},
		"levels": lvls,
	}

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	return fstest.MapFS{"project.ldtk": {Data: b}}
}

// noTextures is the texture list for projects without tilesets.
var noTextures []leveldata.Texture[string]
