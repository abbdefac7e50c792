package leveldata

import (
	"errors"
	"fmt"
)

var (
	// ErrNullWorldLayout is returned for projects that declare no world layout.
	ErrNullWorldLayout = errors.New("null world layouts are unsupported")

	// ErrLevelNotFound matches any *LevelNotFoundError.
	ErrLevelNotFound = errors.New("level not found")
)

// UnknownLayerTypeError means a layer definition carries a type outside the
// closed set. This should not happen unless the project was modified outside
// the editor.
type UnknownLayerTypeError struct {
	LayerType string
}

func (e *UnknownLayerTypeError) Error() string {
	return fmt.Sprintf("invalid layer type %q", e.LayerType)
}

// TextureNotFoundError means no caller-supplied texture matches a tileset path.
type TextureNotFoundError struct {
	Tileset string
	RelPath string
}

func (e *TextureNotFoundError) Error() string {
	return fmt.Sprintf("no texture bound for tileset %s (%s)", e.Tileset, e.RelPath)
}

type LevelNotFoundError struct {
	Coord Coord
}

func (e *LevelNotFoundError) Error() string {
	return fmt.Sprintf("no level at coordinate %s", e.Coord)
}

func (e *LevelNotFoundError) Is(target error) bool {
	return target == ErrLevelNotFound
}

// DuplicateError means two project items share a key that must be unique.
type DuplicateError struct {
	Kind string // "tileset", "layer definition", "level coordinate"
	Key  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s %s", e.Kind, e.Key)
}

// UnresolvedRefError means a layer instance refers to a layer definition or
// tileset that the project does not define.
type UnresolvedRefError struct {
	Level string
	Layer string
	Kind  string // "layer definition" or "tileset"
	Ref   string
}

func (e *UnresolvedRefError) Error() string {
	return fmt.Sprintf("level %s layer %s: unresolved %s %q", e.Level, e.Layer, e.Kind, e.Ref)
}

type LayerIndexError struct {
	Index int
	Count int
}

func (e *LayerIndexError) Error() string {
	return fmt.Sprintf("layer index %d out of range [0, %d)", e.Index, e.Count)
}

// TextureIndexError means a draw call received a texture slice that does not
// match the one the project was loaded with.
type TextureIndexError struct {
	Tileset string
	Index   int
	Count   int
}

func (e *TextureIndexError) Error() string {
	return fmt.Sprintf("tileset %s: texture index %d out of range [0, %d)", e.Tileset, e.Index, e.Count)
}
