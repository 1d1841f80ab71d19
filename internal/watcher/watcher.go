package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// tagFileExt marks the files whose changes schedule a curation run.
const tagFileExt = ".txt"

// Settings control the watch loop timing and filtering.
type Settings struct {
	Debounce        time.Duration // quiet period before a run triggers
	StableThreshold time.Duration // tag file size must hold this long
	IgnorePatterns  []string      // glob patterns that never trigger
}

// DefaultSettings returns the standard watch timing.
func DefaultSettings() Settings {
	return Settings{
		Debounce:        2 * time.Second,
		StableThreshold: time.Second,
		IgnorePatterns:  DefaultIgnorePatterns(),
	}
}

// DatasetHandler is invoked with a dataset directory once its activity has
// settled. It typically re-runs curation over that directory.
type DatasetHandler func(datasetDir string)

// Summary contains stats from one watch session.
type Summary struct {
	Triggers      int // curation runs fired
	EventsSkipped int // events dropped by the ignore filter
	Duration      time.Duration
}

// Watcher monitors dataset directories and fires the handler after changes
// settle. New folders created under a dataset directory are picked up and
// watched automatically.
type Watcher struct {
	settings  Settings
	handler   DatasetHandler
	fsWatcher *fsnotify.Watcher
	filter    *FileFilter
	debouncer *Debouncer
	stability *StabilityChecker
	roots     []string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	start  time.Time

	mu            sync.Mutex
	triggers      int
	eventsSkipped int
}

// New creates a Watcher. Zero-valued settings fields fall back to the
// defaults.
func New(settings Settings, handler DatasetHandler) *Watcher {
	defaults := DefaultSettings()
	if settings.Debounce <= 0 {
		settings.Debounce = defaults.Debounce
	}
	if settings.StableThreshold <= 0 {
		settings.StableThreshold = defaults.StableThreshold
	}
	w := &Watcher{
		settings:  settings,
		handler:   handler,
		filter:    NewFileFilter(settings.IgnorePatterns),
		stability: NewStabilityChecker(settings.StableThreshold),
	}
	w.debouncer = NewDebouncer(settings.Debounce, w.fire)
	return w
}

// Start begins watching the dataset directories. Existing dataset folders
// are watched too so tag file changes inside them are seen.
func (w *Watcher) Start(dirs []string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fsWatcher = fsw

	for _, dir := range dirs {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			fsw.Close()
			return err
		}
		if err := fsw.Add(absDir); err != nil {
			fsw.Close()
			return err
		}
		w.roots = append(w.roots, absDir)

		entries, err := os.ReadDir(absDir)
		if err != nil {
			fsw.Close()
			return err
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if err := fsw.Add(filepath.Join(absDir, entry.Name())); err != nil {
				fsw.Close()
				return err
			}
		}
	}

	w.start = time.Now()
	w.ctx, w.cancel = context.WithCancel(context.Background())

	w.wg.Add(1)
	go w.processEvents()
	return nil
}

// Stop shuts the watcher down and returns the session summary.
func (w *Watcher) Stop() *Summary {
	if w.cancel != nil {
		w.cancel()
	}
	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}
	w.wg.Wait()
	w.debouncer.CancelAll()

	w.mu.Lock()
	defer w.mu.Unlock()
	return &Summary{
		Triggers:      w.triggers,
		EventsSkipped: w.eventsSkipped,
		Duration:      time.Since(w.start),
	}
}

// fire is the debouncer callback.
func (w *Watcher) fire(dir string) {
	select {
	case <-w.ctx.Done():
		return
	default:
	}

	w.mu.Lock()
	w.triggers++
	w.mu.Unlock()

	if w.handler != nil {
		w.handler(dir)
	}
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; keep going.
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	root := w.rootOf(event.Name)
	if root == "" {
		return
	}

	if w.filter.ShouldIgnore(event.Name) {
		w.mu.Lock()
		w.eventsSkipped++
		w.mu.Unlock()
		return
	}

	// A new folder dropped into a dataset directory gets watched so its
	// tag files are seen, then schedules a run.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Lstat(event.Name); err == nil && info.IsDir() {
			if filepath.Dir(event.Name) == root {
				w.fsWatcher.Add(event.Name)
			}
			w.debouncer.Add(root)
			return
		}
	}

	if strings.EqualFold(filepath.Ext(event.Name), tagFileExt) {
		if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
			// Wait for the writer to finish before scheduling.
			w.wg.Add(1)
			go func(path string) {
				defer w.wg.Done()
				if err := w.stability.WaitForStable(w.ctx, path); err != nil {
					return
				}
				w.debouncer.Add(root)
			}(event.Name)
			return
		}
		w.debouncer.Add(root)
		return
	}

	// Renames and removals of folders still warrant a run.
	if event.Op.Has(fsnotify.Rename) || event.Op.Has(fsnotify.Remove) {
		w.debouncer.Add(root)
	}
}

// rootOf returns the watched dataset directory containing the path, or ""
// when the path is outside every root.
func (w *Watcher) rootOf(path string) string {
	for _, root := range w.roots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return root
		}
	}
	return ""
}

// IsRunning reports whether the watch loop is active.
func (w *Watcher) IsRunning() bool {
	if w.ctx == nil {
		return false
	}
	select {
	case <-w.ctx.Done():
		return false
	default:
		return w.fsWatcher != nil
	}
}
