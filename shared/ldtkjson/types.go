// Package ldtkjson decodes LDtk project exports into typed structs that mirror
// the file schema. Only the fields the loader consumes are declared; nothing is
// interpreted here.
package ldtkjson

// WorldLayout is the project-wide level arrangement.
type WorldLayout string

const (
	LayoutFree             WorldLayout = "Free"
	LayoutGridVania        WorldLayout = "GridVania"
	LayoutLinearHorizontal WorldLayout = "LinearHorizontal"
	LayoutLinearVertical   WorldLayout = "LinearVertical"
)

// Project is the root of a .ldtk file.
type Project struct {
	JSONVersion    string       `json:"jsonVersion"`
	Iid            string       `json:"iid"`
	WorldLayout    *WorldLayout `json:"worldLayout"`
	ExternalLevels bool         `json:"externalLevels"`
	Defs           Definitions  `json:"defs"`
	Levels         []Level      `json:"levels"`
}

type Definitions struct {
	Layers   []LayerDefinition   `json:"layers"`
	Tilesets []TilesetDefinition `json:"tilesets"`
}

type LayerDefinition struct {
	Type           string  `json:"__type"`
	Identifier     string  `json:"identifier"`
	DisplayOpacity float64 `json:"displayOpacity"`
	GridSize       int64   `json:"gridSize"`
	UID            int64   `json:"uid"`
}

type TilesetDefinition struct {
	CWid         int64   `json:"__cWid"`
	CHei         int64   `json:"__cHei"`
	Identifier   string  `json:"identifier"`
	UID          int64   `json:"uid"`
	RelPath      *string `json:"relPath"`
	Padding      int64   `json:"padding"`
	Spacing      int64   `json:"spacing"`
	TileGridSize int64   `json:"tileGridSize"`
}

// Level is either embedded in the project or stored in its own .ldtkl file,
// in which case LayerInstances is null and ExternalRelPath is set.
type Level struct {
	Identifier      string          `json:"identifier"`
	Iid             string          `json:"iid"`
	UID             int64           `json:"uid"`
	WorldX          int64           `json:"worldX"`
	WorldY          int64           `json:"worldY"`
	PxWid           int64           `json:"pxWid"`
	PxHei           int64           `json:"pxHei"`
	ExternalRelPath *string         `json:"externalRelPath"`
	LayerInstances  []LayerInstance `json:"layerInstances"`
}

type LayerInstance struct {
	Identifier      string           `json:"__identifier"`
	Type            string           `json:"__type"`
	CWid            int64            `json:"__cWid"`
	CHei            int64            `json:"__cHei"`
	GridSize        int64            `json:"__gridSize"`
	Opacity         *float64         `json:"__opacity"`
	PxTotalOffsetX  int64            `json:"__pxTotalOffsetX"`
	PxTotalOffsetY  int64            `json:"__pxTotalOffsetY"`
	TilesetRelPath  *string          `json:"__tilesetRelPath"`
	Visible         *bool            `json:"visible"`
	IntGridCsv      []int64          `json:"intGridCsv"`
	GridTiles       []TileInstance   `json:"gridTiles"`
	AutoLayerTiles  []TileInstance   `json:"autoLayerTiles"`
	EntityInstances []EntityInstance `json:"entityInstances"`
}

type TileInstance struct {
	Px  [2]int64 `json:"px"`
	Src [2]int64 `json:"src"`
	A   float64  `json:"a"`
	T   int64    `json:"t"`
	F   int64    `json:"f"`
}

type EntityInstance struct {
	Identifier string     `json:"__identifier"`
	Grid       [2]int64   `json:"__grid"`
	Pivot      [2]float64 `json:"__pivot"`
	Tags       []string   `json:"__tags"`
	WorldX     *int64     `json:"__worldX"`
	WorldY     *int64     `json:"__worldY"`
	Iid        string     `json:"iid"`
	Px         [2]int64   `json:"px"`
	Width      int64      `json:"width"`
	Height     int64      `json:"height"`
}
