package assets

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/automoto/ldtk/shared/ldtkjson"
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/fsnotify/fsnotify"
)

// debounce drops repeated events for the same file; editors usually write a
// project in several steps.
const debounce = 100 * time.Millisecond

// Watcher reports changes to LDtk project and level files.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the directory of projectPath and every directory in
// extra (external level folders).
func NewWatcher(projectPath string, extra ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := append([]string{filepath.Dir(projectPath)}, extra...)
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// WatchProject watches the project file and the folders holding its
// external levels.
func WatchProject(projectPath string) (*Watcher, error) {
	doc, err := leveldata.LoadProjectRaw(projectPath)
	if err != nil {
		return nil, err
	}
	return NewWatcher(projectPath, LevelDirs(projectPath, doc)...)
}

// LevelDirs lists the distinct directories of the project's external level
// files, other than the project's own directory, sorted.
func LevelDirs(projectPath string, doc *ldtkjson.Project) []string {
	base := filepath.Dir(projectPath)
	seen := map[string]bool{base: true}
	var dirs []string
	for _, lvl := range doc.Levels {
		if lvl.ExternalRelPath == nil {
			continue
		}
		dir := filepath.Dir(filepath.Join(base, filepath.FromSlash(*lvl.ExternalRelPath)))
		if seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsProjectFile(event.Name) && !IsTextureFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// IsProjectFile reports whether path is an LDtk project or external level.
func IsProjectFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".ldtk" || ext == ".ldtkl"
}

func IsTextureFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}
