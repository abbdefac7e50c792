package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/automoto/ldtk/shared/ldtkjson"
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

type openFunc func(name string) (io.ReadCloser, error)

// LoadProjectTextures loads every tileset image of the project at
// projectPath. Image paths are relative to the project file.
func LoadProjectTextures(projectPath string) ([]leveldata.Texture[*ebiten.Image], error) {
	doc, err := leveldata.LoadProjectRaw(projectPath)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(projectPath)
	return loadTextures(doc, func(rel string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(dir, filepath.FromSlash(rel)))
	})
}

// LoadProjectTexturesFS is LoadProjectTextures reading from fsys.
func LoadProjectTexturesFS(fsys fs.FS, name string) ([]leveldata.Texture[*ebiten.Image], error) {
	doc, err := leveldata.LoadProjectRawFS(fsys, name)
	if err != nil {
		return nil, err
	}
	dir := path.Dir(name)
	return loadTextures(doc, func(rel string) (io.ReadCloser, error) {
		return fsys.Open(path.Join(dir, rel))
	})
}

func loadTextures(doc *ldtkjson.Project, open openFunc) ([]leveldata.Texture[*ebiten.Image], error) {
	paths := leveldata.TexturePaths(doc)
	textures := make([]leveldata.Texture[*ebiten.Image], 0, len(paths))
	for _, rel := range paths {
		img, err := decodeImage(open, rel)
		if err != nil {
			return nil, err
		}
		textures = append(textures, leveldata.Texture[*ebiten.Image]{
			Handle: ebiten.NewImageFromImage(img),
			Path:   rel,
		})
	}
	return textures, nil
}

func decodeImage(open openFunc, rel string) (image.Image, error) {
	f, err := open(rel)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", rel, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", rel, err)
	}
	return img, nil
}
