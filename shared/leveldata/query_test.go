package leveldata_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollisionRects(t *testing.T) {
	res := loadBasic(t)
	lvl, err := res.Level(leveldata.Coord{})
	require.NoError(t, err)

	idx, err := lvl.LayerIndex("Collisions")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	rects, err := lvl.CollisionRects(idx, 1)
	require.NoError(t, err)
	assert.Equal(t, []leveldata.Rect{
		{X: 0, Y: 16, W: 16, H: 16},
		{X: 32, Y: 16, W: 16, H: 16},
		{X: 0, Y: 32, W: 16, H: 16},
		{X: 16, Y: 32, W: 16, H: 16},
		{X: 48, Y: 32, W: 16, H: 16},
	}, rects)

	rects, err = lvl.CollisionRects(idx, 3)
	require.NoError(t, err)
	assert.Equal(t, []leveldata.Rect{{X: 32, Y: 0, W: 16, H: 16}}, rects)
}

func TestCollisionRectsNoMatch(t *testing.T) {
	layer := leveldata.LayerInstance{GridWidth: 3, GridHeight: 2, GridSize: 8, IntGrid: []int64{0, 1, 0, 2, 0, 1}}

	assert.Empty(t, layer.CollisionRects(7))
	assert.Empty(t, (&leveldata.LayerInstance{GridWidth: 2, GridSize: 8}).CollisionRects(1))
}

func TestCollisionRectsLayerIndex(t *testing.T) {
	lvl := &leveldata.Level{Layers: []leveldata.LayerInstance{{GridWidth: 1, GridSize: 8}}}

	for _, idx := range []int{-1, 1, 5} {
		_, err := lvl.CollisionRects(idx, 1)
		var idxErr *leveldata.LayerIndexError
		require.ErrorAs(t, err, &idxErr, "index %d", idx)
		assert.Equal(t, idx, idxErr.Index)
		assert.Equal(t, 1, idxErr.Count)
	}
}

func TestCollisionRectsIgnoresCellsPastGrid(t *testing.T) {
	layer := leveldata.LayerInstance{GridWidth: 2, GridHeight: 1, GridSize: 8, IntGrid: []int64{1, 1, 1}}

	assert.Equal(t, []leveldata.Rect{
		{X: 0, Y: 0, W: 8, H: 8},
		{X: 8, Y: 0, W: 8, H: 8},
	}, layer.CollisionRects(1))
}

func TestCollisionRectsMatchesGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for n := 0; n < 25; n++ {
		w := int64(rng.Intn(12) + 1)
		h := int64(rng.Intn(12) + 1)
		size := int64(rng.Intn(3)+1) * 8
		grid := make([]int64, w*h)
		for i := range grid {
			grid[i] = int64(rng.Intn(4))
		}
		layer := leveldata.LayerInstance{GridWidth: w, GridHeight: h, GridSize: size, IntGrid: grid}

		t.Run(fmt.Sprintf("%dx%d@%d", w, h, size), func(t *testing.T) {
			for value := int64(0); value < 4; value++ {
				rects := layer.CollisionRects(value)

				var want []leveldata.Rect
				for row := int64(0); row < h; row++ {
					for col := int64(0); col < w; col++ {
						if grid[row*w+col] == value {
							want = append(want, leveldata.Rect{
								X: float64(col * size), Y: float64(row * size),
								W: float64(size), H: float64(size),
							})
						}
					}
				}
				assert.Equal(t, want, rects, "value %d", value)
			}
		})
	}
}

func TestEntities(t *testing.T) {
	res := loadBasic(t)

	entities, err := res.Entities(leveldata.Coord{})
	require.NoError(t, err)
	require.Len(t, entities, 2)

	player := entities[0]
	assert.Equal(t, "Player", player.Identifier)
	assert.Equal(t, "player-1", player.Iid)
	assert.Equal(t, leveldata.Point{X: 24, Y: 32}, player.Px)
	assert.Equal(t, leveldata.Point{X: 1, Y: 1}, player.Grid)
	assert.Equal(t, &leveldata.Point{X: 24, Y: 32}, player.World)
	assert.Equal(t, []string{"actor"}, player.Tags)

	coin := entities[1]
	assert.Equal(t, "Coin", coin.Identifier)
	assert.Nil(t, coin.World, "coin only carries __worldX")

	again, err := res.Entities(leveldata.Coord{})
	require.NoError(t, err)
	assert.Equal(t, entities, again)
}

func TestEntitiesReturnsCopies(t *testing.T) {
	res := loadBasic(t)

	entities, err := res.Entities(leveldata.Coord{})
	require.NoError(t, err)
	require.NotNil(t, entities[0].World)
	entities[0].Tags[0] = "changed"
	entities[0].World.X = 999
	entities[0].Identifier = "Other"

	again, err := res.Entities(leveldata.Coord{})
	require.NoError(t, err)
	assert.Equal(t, "Player", again[0].Identifier)
	assert.Equal(t, []string{"actor"}, again[0].Tags)
	assert.Equal(t, &leveldata.Point{X: 24, Y: 32}, again[0].World)

	lvl, err := res.Level(leveldata.Coord{})
	require.NoError(t, err)
	assert.Equal(t, []string{"actor"}, lvl.Layers[0].Entities[0].Tags)
}

func TestEntitiesAcrossLayers(t *testing.T) {
	mk := func(id string) leveldata.EntityInstance { return leveldata.EntityInstance{Identifier: id} }
	res := &leveldata.Resources{Levels: map[leveldata.Coord]*leveldata.Level{
		{X: 1, Y: 2}: {Layers: []leveldata.LayerInstance{
			{Entities: []leveldata.EntityInstance{mk("a"), mk("b")}},
			{},
			{Entities: []leveldata.EntityInstance{mk("c")}},
		}},
	}}

	entities, err := res.Entities(leveldata.Coord{X: 1, Y: 2})
	require.NoError(t, err)

	var ids []string
	for _, e := range entities {
		ids = append(ids, e.Identifier)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestEntitiesLevelNotFound(t *testing.T) {
	res := loadBasic(t)

	_, err := res.Entities(leveldata.Coord{X: 5, Y: 5})
	require.ErrorIs(t, err, leveldata.ErrLevelNotFound)

	var notFound *leveldata.LevelNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, leveldata.Coord{X: 5, Y: 5}, notFound.Coord)
}

func TestCoords(t *testing.T) {
	res := &leveldata.Resources{Levels: map[leveldata.Coord]*leveldata.Level{
		{X: 5, Y: 1}:  {},
		{X: -3, Y: 1}: {},
		{X: 9, Y: -2}: {},
		{X: 0, Y: 0}:  {},
	}}

	assert.Equal(t, []leveldata.Coord{
		{X: 9, Y: -2},
		{X: 0, Y: 0},
		{X: -3, Y: 1},
		{X: 5, Y: 1},
	}, res.Coords())
}

func TestLevelByIdentifier(t *testing.T) {
	res := loadBasic(t)

	c, lvl, err := res.LevelByIdentifier("Level_1")
	require.NoError(t, err)
	assert.Equal(t, leveldata.Coord{X: 64, Y: 0}, c)
	assert.Equal(t, "lvl-1", lvl.Iid)

	_, _, err = res.LevelByIdentifier("Level_9")
	assert.ErrorIs(t, err, leveldata.ErrLevelNotFound)
}

func TestLayerIndexMissing(t *testing.T) {
	res := loadBasic(t)
	lvl, err := res.Level(leveldata.Coord{})
	require.NoError(t, err)

	_, err = lvl.LayerIndex("Background")
	assert.Error(t, err)
}

func TestStep(t *testing.T) {
	res := &leveldata.Resources{Levels: map[leveldata.Coord]*leveldata.Level{
		{X: 0}: {}, {X: 1}: {}, {X: 2}: {},
	}}

	tests := []struct {
		from  leveldata.Coord
		n     int
		want  leveldata.Coord
		moved bool
	}{
		{leveldata.Coord{X: 0}, 1, leveldata.Coord{X: 1}, true},
		{leveldata.Coord{X: 1}, -1, leveldata.Coord{X: 0}, true},
		{leveldata.Coord{X: 2}, 1, leveldata.Coord{X: 2}, false},
		{leveldata.Coord{X: 0}, -1, leveldata.Coord{X: 0}, false},
		{leveldata.Coord{X: 0}, 5, leveldata.Coord{X: 2}, true},
		{leveldata.Coord{X: 9}, 1, leveldata.Coord{X: 9}, false},
	}

	for _, tt := range tests {
		got, moved := res.Step(tt.from, tt.n)
		assert.Equal(t, tt.want, got, "from %s by %d", tt.from, tt.n)
		assert.Equal(t, tt.moved, moved, "from %s by %d", tt.from, tt.n)
	}
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in      string
		want    leveldata.Coord
		wantErr bool
	}{
		{in: "0,0", want: leveldata.Coord{}},
		{in: "64, -32", want: leveldata.Coord{X: 64, Y: -32}},
		{in: "(3, 4)", want: leveldata.Coord{X: 3, Y: 4}},
		{in: "3", wantErr: true},
		{in: "a,1", wantErr: true},
		{in: "1,", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := leveldata.ParseCoord(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) leveldata.Coord {
	t.Helper()
	c, err := leveldata.ParseCoord(s)
	require.NoError(t, err)
	return c
}
