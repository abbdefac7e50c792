package scenes

import (
	"fmt"

	"github.com/automoto/ldtk/shared/leveldata"
)

// StartLevel picks the first level to show. An explicit coordinate wins,
// then a level identifier, then the saved coordinate if it still exists,
// then the first coordinate in Coords order.
func StartLevel(res *leveldata.Resources, explicit *leveldata.Coord, identifier string, saved *leveldata.Coord) (leveldata.Coord, error) {
	if explicit != nil {
		if _, err := res.Level(*explicit); err != nil {
			return leveldata.Coord{}, err
		}
		return *explicit, nil
	}
	if identifier != "" {
		c, _, err := res.LevelByIdentifier(identifier)
		return c, err
	}
	if saved != nil {
		if _, err := res.Level(*saved); err == nil {
			return *saved, nil
		}
	}
	coords := res.Coords()
	if len(coords) == 0 {
		return leveldata.Coord{}, fmt.Errorf("project has no levels")
	}
	return coords[0], nil
}
