package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

// Config holds general viewer configuration. Fields can be overridden from a
// YAML file with Load.
type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`

	ProjectPath string `yaml:"project"`
	// StartLevel is a level identifier; empty means the first level.
	StartLevel string `yaml:"start_level"`

	// CollisionLayer is the int-grid layer walls are generated from, and
	// SolidValue the int-grid value that counts as solid.
	CollisionLayer string `yaml:"collision_layer"`
	SolidValue     int64  `yaml:"solid_value"`

	WatchProject bool `yaml:"watch_project"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	PanDuration float32 // Seconds to pan between levels
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowCollision bool // Draw walls and spawn points over the level
}

// PersistenceConfig names the gdata store used for viewer state.
type PersistenceConfig struct {
	AppName string
	LastKey string
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Debug DebugConfig
var Persistence PersistenceConfig

// Default is the only ECS render layer.
const Default ecs.LayerID = 0

// Shared RGBA color constants
var (
	Background = color.RGBA{R: 24, G: 20, B: 37, A: 255}
	WallColor  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	SpawnColor = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	WorldColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:          640,
		Height:         360,
		Scale:          2,
		CollisionLayer: "Collisions",
		SolidValue:     1,
	}

	Camera = CameraConfig{
		PanDuration: 0.4,
	}

	Persistence = PersistenceConfig{
		AppName: "ldtk-viewer",
		LastKey: "last_level",
	}
}

// Load overlays the YAML file at path onto C. Keys missing from the file keep
// their current values.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, C); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if C.Width <= 0 || C.Height <= 0 {
		return fmt.Errorf("invalid screen size: %dx%d", C.Width, C.Height)
	}
	if C.Scale <= 0 {
		C.Scale = 1
	}
	return nil
}
