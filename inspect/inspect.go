// Package inspect prints loaded projects for the ldtkinfo command.
package inspect

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/automoto/ldtk/shared/leveldata"
)

// Summary writes the project layout followed by one row per level in
// Coords order.
func Summary(w io.Writer, res *leveldata.Resources) error {
	fmt.Fprintf(w, "layout: %s\n", res.Layout)
	fmt.Fprintf(w, "tilesets: %d, layer definitions: %d, levels: %d\n",
		len(res.Tilesets), len(res.LayerDefs), len(res.Levels))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COORD\tLEVEL\tSIZE\tLAYERS\tENTITIES")
	for _, c := range res.Coords() {
		lvl := res.Levels[c]
		entities, err := res.Entities(c)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%s\t%d\n",
			c, lvl.Identifier, lvl.Width, lvl.Height, layerNames(lvl), len(entities))
	}
	return tw.Flush()
}

func layerNames(lvl *leveldata.Level) string {
	names := make([]string, 0, len(lvl.Layers))
	for _, layer := range lvl.Layers {
		names = append(names, layer.LayerDefID)
	}
	return strings.Join(names, ",")
}

// Entities writes every entity of the level at c in query order.
func Entities(w io.Writer, res *leveldata.Resources, c leveldata.Coord) error {
	entities, err := res.Entities(c)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IDENTIFIER\tIID\tGRID\tPX\tWORLD\tSIZE\tTAGS")
	for _, e := range entities {
		world := "-"
		if e.World != nil {
			world = fmt.Sprintf("%d,%d", e.World.X, e.World.Y)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d,%d\t%d,%d\t%s\t%dx%d\t%s\n",
			e.Identifier, e.Iid, e.Grid.X, e.Grid.Y, e.Px.X, e.Px.Y, world,
			e.Width, e.Height, strings.Join(e.Tags, ","))
	}
	return tw.Flush()
}

// Collision writes the rectangles generated for value on the named int-grid
// layer of the level at c, then their count.
func Collision(w io.Writer, res *leveldata.Resources, c leveldata.Coord, layer string, value int64) error {
	lvl, err := res.Level(c)
	if err != nil {
		return err
	}
	idx, err := lvl.LayerIndex(layer)
	if err != nil {
		return err
	}
	rects, err := lvl.CollisionRects(idx, value)
	if err != nil {
		return err
	}

	for _, r := range rects {
		fmt.Fprintf(w, "%g %g %g %g\n", r.X, r.Y, r.W, r.H)
	}
	fmt.Fprintf(w, "%d rects with value %d on %s\n", len(rects), value, layer)
	return nil
}
