package components

import (
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// LevelData is the loaded project plus the level currently on screen.
type LevelData struct {
	ProjectPath string
	Resources   *leveldata.Resources
	Textures    []leveldata.Texture[*ebiten.Image]
	Current     leveldata.Coord
}

// CurrentLevel returns the level at Current, or nil if the project has none
// there (for example after a reload removed it).
func (l *LevelData) CurrentLevel() *leveldata.Level {
	if l.Resources == nil {
		return nil
	}
	lvl, err := l.Resources.Level(l.Current)
	if err != nil {
		return nil
	}
	return lvl
}

var Level = donburi.NewComponentType[LevelData]()
