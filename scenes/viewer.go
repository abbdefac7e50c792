package scenes

import (
	"sync"

	"github.com/automoto/ldtk/components"
	cfg "github.com/automoto/ldtk/config"
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/automoto/ldtk/systems"
	"github.com/automoto/ldtk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewerOptions is everything the viewer scene needs from main.
type ViewerOptions struct {
	ProjectPath string
	Resources   *leveldata.Resources
	Textures    []leveldata.Texture[*ebiten.Image]
	Start       leveldata.Coord
	// Reloads may be nil when the project is not watched.
	Reloads   <-chan string
	ShowDebug bool
}

type ViewerScene struct {
	ecs  *ecs.ECS
	opts ViewerOptions
	once sync.Once
}

func NewViewerScene(opts ViewerOptions) *ViewerScene {
	return &ViewerScene{opts: opts}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

func (vs *ViewerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateNavigation)
	ecs.AddSystem(systems.UpdateReload)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	vs.ecs = ecs

	viewer := factory.CreateViewer(ecs, vs.opts.Reloads)
	factory.CreateCamera(ecs)

	if _, err := factory.CreateLevel(ecs, vs.opts.ProjectPath, vs.opts.Resources, vs.opts.Textures, vs.opts.Start); err != nil {
		panic("failed to create level: " + err.Error())
	}
	if err := systems.GoToLevel(ecs, vs.opts.Start, true); err != nil {
		panic("failed to show level: " + err.Error())
	}

	components.Viewer.Get(viewer).ShowDebug = vs.opts.ShowDebug || cfg.Debug.ShowCollision
}
