package main

import (
	"flag"
	"log"

	"github.com/automoto/ldtk/assets"
	"github.com/automoto/ldtk/config"
	"github.com/automoto/ldtk/scenes"
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/automoto/ldtk/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(opts scenes.ViewerOptions) *Game {
	return &Game{
		scene: scenes.NewViewerScene(opts),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding viewer settings")
	projectPath := flag.String("project", "", "LDtk project file (.ldtk)")
	levelFlag := flag.String("level", "", "start level coordinate as X,Y")
	debug := flag.Bool("debug", false, "show collision rectangles and spawn points")
	watch := flag.Bool("watch", false, "reload the project when it changes on disk")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *projectPath != "" {
		config.C.ProjectPath = *projectPath
	}
	if *watch {
		config.C.WatchProject = true
	}
	if config.C.ProjectPath == "" {
		log.Fatalf("No project given: use -project or set project in the config file")
	}

	var explicit *leveldata.Coord
	if *levelFlag != "" {
		c, err := leveldata.ParseCoord(*levelFlag)
		if err != nil {
			log.Fatalf("Bad -level: %v", err)
		}
		explicit = &c
	}

	textures, err := assets.LoadProjectTextures(config.C.ProjectPath)
	if err != nil {
		log.Fatalf("Failed to load textures: %v", err)
	}
	res, err := leveldata.LoadProject(config.C.ProjectPath, textures)
	if err != nil {
		log.Fatalf("Failed to load project: %v", err)
	}
	log.Printf("Loaded project: %d levels, %d tilesets, %d layer definitions, %s layout",
		len(res.Levels), len(res.Tilesets), len(res.LayerDefs), res.Layout)

	// Failures are logged by InitPersistence; the viewer runs without saving.
	_ = systems.InitPersistence()
	var saved *leveldata.Coord
	if c, ok := systems.LoadLastLevel(config.C.ProjectPath); ok {
		saved = &c
	}

	start, err := scenes.StartLevel(res, explicit, config.C.StartLevel, saved)
	if err != nil {
		log.Fatalf("Failed to pick start level: %v", err)
	}

	var reloads <-chan string
	if config.C.WatchProject {
		w, err := assets.WatchProject(config.C.ProjectPath)
		if err != nil {
			log.Printf("Warning: Could not watch project: %v", err)
		} else {
			defer w.Close()
			reloads = w.Events
		}
	}

	ebiten.SetWindowTitle("ldtk - " + config.C.ProjectPath)
	ebiten.SetWindowSize(int(float64(config.C.Width)*config.C.Scale), int(float64(config.C.Height)*config.C.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame(scenes.ViewerOptions{
		ProjectPath: config.C.ProjectPath,
		Resources:   res,
		Textures:    textures,
		Start:       start,
		Reloads:     reloads,
		ShowDebug:   *debug,
	})
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
