package codebase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeFunc is called after the watcher re-parsed or dropped a file. file is
// nil when the file was removed.
type ChangeFunc func(path string, file *FileInfo)

// Watcher keeps a codebase in sync with the workspace files on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	codebase *Codebase
	onChange ChangeFunc

	// Skip reports paths the watcher must leave alone, such as files open in
	// an editor whose buffer is newer than the disk.
	Skip func(path string) bool

	// A change re-parses the file once it has been quiet for debounce.
	mu          sync.Mutex
	pending     map[string]*time.Timer
	debounce    time.Duration
	watchedDirs map[string]bool
}

func NewWatcher(c *Codebase, onChange ChangeFunc) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:     fsWatcher,
		codebase:    c,
		onChange:    onChange,
		pending:     make(map[string]*time.Timer),
		debounce:    100 * time.Millisecond,
		watchedDirs: make(map[string]bool),
	}, nil
}

// Start watches the given roots, or the codebase root when none are given,
// until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context, roots ...string) error {
	if len(roots) == 0 {
		roots = []string{w.codebase.RootDir()}
	}
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			root = filepath.Dir(root)
		}
		if err := w.watchDirRecursive(root); err != nil {
			return err
		}
		log.Infof("watching %s", root)
	}

	go w.eventLoop(ctx)
	return nil
}

// Close stops watching and cancels pending re-parses.
func (w *Watcher) Close() error {
	w.mu.Lock()
	for _, t := range w.pending {
		t.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

// watchDirRecursive adds a directory and its subdirectories to the watch list
func (w *Watcher) watchDirRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		w.mu.Lock()
		seen := w.watchedDirs[path]
		w.watchedDirs[path] = true
		w.mu.Unlock()
		if seen {
			return nil
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) eventLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := w.watchDirRecursive(path); err != nil {
				log.Errorf("failed to watch %s: %v", path, err)
			}
			return
		}
	}

	if !w.codebase.Config().HasExtension(path) {
		return
	}
	if w.Skip != nil && w.Skip(path) {
		return
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.cancel(path)
		w.codebase.RemoveFile(path)
		log.Debugf("removed %s", path)
		w.notify(path, nil)

	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		w.schedule(path)
	}
}

// schedule re-parses path after debounce, restarting the delay when the
// file changes again before it elapses.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		if w.Skip != nil && w.Skip(path) {
			return
		}
		f, err := w.codebase.ScanFile(path)
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		log.Debugf("reparsed %s", path)
		w.notify(path, f)
	})
}

func (w *Watcher) cancel(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[path]; ok {
		t.Stop()
		delete(w.pending, path)
	}
}

func (w *Watcher) notify(path string, f *FileInfo) {
	if w.onChange != nil {
		w.onChange(path, f)
	}
}
