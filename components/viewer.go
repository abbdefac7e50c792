package components

import "github.com/yohamta/donburi"

// ViewerData is viewer-wide state that is not tied to a level.
type ViewerData struct {
	ShowDebug bool
	Status    string

	// Reloads holds project paths changed on disk, filled by the file watcher.
	Reloads <-chan string
	// ReloadRequested is set by input and consumed by UpdateReload.
	ReloadRequested bool
}

var Viewer = donburi.NewComponentType[ViewerData]()
