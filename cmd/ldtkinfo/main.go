package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/automoto/ldtk/inspect"
	"github.com/automoto/ldtk/shared/leveldata"
)

func main() {
	projectPath := flag.String("project", "", "LDtk project file (.ldtk)")
	levelFlag := flag.String("level", "0,0", "level coordinate as X,Y")
	layer := flag.String("layer", "Collisions", "int-grid layer for the collision command")
	value := flag.Int64("value", 1, "int-grid value that counts as solid")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: ldtkinfo -project file.ldtk [flags] summary|entities|collision\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *projectPath == "" || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	doc, err := leveldata.LoadProjectRaw(*projectPath)
	if err != nil {
		log.Fatalf("Failed to read project: %v", err)
	}
	// Texture handles are never drawn here; binding by path is enough.
	var textures []leveldata.Texture[string]
	for _, p := range leveldata.TexturePaths(doc) {
		textures = append(textures, leveldata.Texture[string]{Handle: p, Path: p})
	}
	res, err := leveldata.LoadProject(*projectPath, textures)
	if err != nil {
		log.Fatalf("Failed to load project: %v", err)
	}

	coord, err := leveldata.ParseCoord(*levelFlag)
	if err != nil {
		log.Fatalf("Bad -level: %v", err)
	}

	switch cmd := flag.Arg(0); cmd {
	case "summary":
		err = inspect.Summary(os.Stdout, res)
	case "entities":
		err = inspect.Entities(os.Stdout, res, coord)
	case "collision":
		err = inspect.Collision(os.Stdout, res, coord, *layer, *value)
	default:
		log.Fatalf("Unknown command %q", cmd)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}
