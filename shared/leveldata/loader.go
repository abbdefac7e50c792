package leveldata

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/automoto/ldtk/shared/ldtkjson"
)

// LoadProject loads the project at path from the local filesystem. textures
// pairs each caller texture with its path relative to the project file; the
// same slice must be passed to DrawLevel later.
func LoadProject[T any](projectPath string, textures []Texture[T]) (*Resources, error) {
	fsys, name := splitPath(projectPath)
	return LoadProjectFS(fsys, name, textures)
}

// LoadProjectRaw decodes the project at path without resolving anything.
func LoadProjectRaw(projectPath string) (*ldtkjson.Project, error) {
	fsys, name := splitPath(projectPath)
	return LoadProjectRawFS(fsys, name)
}

// LoadProjectRawFS is LoadProjectRaw for an fs.FS, so callers can pass
// embed.FS or os.DirFS.
func LoadProjectRawFS(fsys fs.FS, name string) (*ldtkjson.Project, error) {
	return ldtkjson.DecodeFile(fsys, name)
}

// TexturePaths lists the tileset image paths a project references, in
// definition order. These are the paths LoadProject binds textures by.
// Tilesets without a path (embedded atlases) are left out.
func TexturePaths(doc *ldtkjson.Project) []string {
	var paths []string
	for _, ts := range doc.Defs.Tilesets {
		if ts.RelPath == nil {
			continue
		}
		paths = append(paths, *ts.RelPath)
	}
	return paths
}

// LoadProjectFS loads, resolves and validates a project. It returns either a
// complete Resources or an error, never a partial result.
func LoadProjectFS[T any](fsys fs.FS, name string, textures []Texture[T]) (*Resources, error) {
	doc, err := LoadProjectRawFS(fsys, name)
	if err != nil {
		return nil, err
	}

	levels, err := loadExternalLevels(fsys, path.Dir(name), doc.Levels)
	if err != nil {
		return nil, err
	}

	tilesets, err := bindTilesets(doc.Defs.Tilesets, textures)
	if err != nil {
		return nil, err
	}

	layerDefs := make(map[string]*LayerDef, len(doc.Defs.Layers))
	for i := range doc.Defs.Layers {
		def, err := ConvertLayerDef(&doc.Defs.Layers[i])
		if err != nil {
			return nil, fmt.Errorf("layer definition %s: %w", doc.Defs.Layers[i].Identifier, err)
		}
		if _, ok := layerDefs[def.Identifier]; ok {
			return nil, &DuplicateError{Kind: "layer definition", Key: def.Identifier}
		}
		layerDefs[def.Identifier] = def
	}

	if doc.WorldLayout == nil {
		return nil, ErrNullWorldLayout
	}
	layout := *doc.WorldLayout

	res := &Resources{
		Layout:    layout,
		Levels:    make(map[Coord]*Level, len(levels)),
		Tilesets:  tilesets,
		LayerDefs: layerDefs,
	}

	for i := range levels {
		coord := levelCoord(layout, i, &levels[i])
		if prev, ok := res.Levels[coord]; ok {
			return nil, &DuplicateError{
				Kind: "level coordinate",
				Key:  fmt.Sprintf("%s (%s and %s)", coord, prev.Identifier, levels[i].Identifier),
			}
		}
		res.Levels[coord] = ConvertLevel(&levels[i])
	}

	if err := res.validateRefs(); err != nil {
		return nil, err
	}

	return res, nil
}

// levelCoord assigns the canonical coordinate for the i-th level.
func levelCoord(layout WorldLayout, i int, lvl *ldtkjson.Level) Coord {
	switch layout {
	case ldtkjson.LayoutLinearHorizontal:
		return Coord{X: int64(i)}
	case ldtkjson.LayoutLinearVertical:
		return Coord{Y: int64(i)}
	default:
		return Coord{X: lvl.WorldX, Y: lvl.WorldY}
	}
}

func bindTilesets[T any](defs []ldtkjson.TilesetDefinition, textures []Texture[T]) (map[string]*Tileset, error) {
	tilesets := make(map[string]*Tileset, len(defs))
	for i := range defs {
		def := &defs[i]
		// Embedded atlases have no path and cannot be bound to a texture.
		if def.RelPath == nil {
			continue
		}
		relPath := *def.RelPath

		texIndex := -1
		for j := range textures {
			if textures[j].Path == relPath {
				texIndex = j
				break
			}
		}
		if texIndex < 0 {
			return nil, &TextureNotFoundError{Tileset: def.Identifier, RelPath: relPath}
		}
		if _, ok := tilesets[relPath]; ok {
			return nil, &DuplicateError{Kind: "tileset", Key: relPath}
		}

		tilesets[relPath] = &Tileset{
			TextureIndex: texIndex,
			RelPath:      relPath,
			GridWidth:    def.CWid,
			GridHeight:   def.CHei,
			Padding:      def.Padding,
			Spacing:      def.Spacing,
			TileGridSize: def.TileGridSize,
			Identifier:   def.Identifier,
			UID:          def.UID,
		}
	}
	return tilesets, nil
}

// loadExternalLevels returns levels with layer instances read from their
// .ldtkl files where the project stores them separately. The decoded document
// is left untouched.
func loadExternalLevels(fsys fs.FS, dir string, levels []ldtkjson.Level) ([]ldtkjson.Level, error) {
	out := make([]ldtkjson.Level, len(levels))
	copy(out, levels)

	for i := range out {
		lvl := &out[i]
		if lvl.LayerInstances != nil || lvl.ExternalRelPath == nil {
			continue
		}
		ext, err := ldtkjson.DecodeLevelFile(fsys, path.Join(dir, *lvl.ExternalRelPath))
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", lvl.Identifier, err)
		}
		lvl.LayerInstances = ext.LayerInstances
	}
	return out, nil
}

func (r *Resources) validateRefs() error {
	for _, c := range r.Coords() {
		lvl := r.Levels[c]
		for i := range lvl.Layers {
			layer := &lvl.Layers[i]
			if _, ok := r.LayerDefs[layer.LayerDefID]; !ok {
				return &UnresolvedRefError{Level: lvl.Identifier, Layer: layer.LayerDefID, Kind: "layer definition", Ref: layer.LayerDefID}
			}
			if layer.TilesetID == "" {
				continue
			}
			if _, ok := r.Tilesets[layer.TilesetID]; !ok {
				return &UnresolvedRefError{Level: lvl.Identifier, Layer: layer.LayerDefID, Kind: "tileset", Ref: layer.TilesetID}
			}
		}
	}
	return nil
}

func splitPath(projectPath string) (fs.FS, string) {
	return os.DirFS(filepath.Dir(projectPath)), filepath.Base(projectPath)
}
