package systems

import (
	"encoding/json"
	"errors"
	"log"

	cfg "github.com/automoto/ldtk/config"
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/quasilyte/gdata"
)

// SavedView is the viewer state stored on disk between runs.
type SavedView struct {
	Project string `json:"project"`
	X       int64  `json:"x"`
	Y       int64  `json:"y"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for viewer state storage
func InitPersistence() error {
	if cfg.Persistence.AppName == "" {
		err := errors.New("no app name configured")
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadLastLevel returns the coordinate last viewed in project. It reports
// false when nothing was saved for this project.
func LoadLastLevel(project string) (leveldata.Coord, bool) {
	if !gdataInitialized || gdataManager == nil {
		return leveldata.Coord{}, false
	}

	data, err := gdataManager.LoadItem(cfg.Persistence.LastKey)
	if err != nil {
		log.Printf("Warning: Could not load last level: %v", err)
		return leveldata.Coord{}, false
	}
	if data == nil {
		return leveldata.Coord{}, false
	}

	var saved SavedView
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved view: %v", err)
		return leveldata.Coord{}, false
	}
	if saved.Project != project {
		return leveldata.Coord{}, false
	}
	return leveldata.Coord{X: saved.X, Y: saved.Y}, true
}

// SaveLastLevel records coord as the last level viewed in project.
func SaveLastLevel(project string, coord leveldata.Coord) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(SavedView{Project: project, X: coord.X, Y: coord.Y})
	if err != nil {
		log.Printf("Warning: Could not serialize view: %v", err)
		return
	}
	if err := gdataManager.SaveItem(cfg.Persistence.LastKey, data); err != nil {
		log.Printf("Warning: Could not save last level: %v", err)
	}
}
