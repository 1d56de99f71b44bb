// Package watcher monitors a corpus file for changes so the pipeline can
// re-ingest and re-mine automatically.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last filesystem
// event before invoking the callback. Editors typically emit bursts of
// writes (or a rename-replace) when saving; one settled callback per save
// is what the pipeline wants.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors a single corpus file via fsnotify and invokes a callback
// once changes settle. The parent directory is watched rather than the file
// itself so rename-replace saves keep being observed.
type Watcher struct {
	path     string
	onChange func()
	fsw      *fsnotify.Watcher
	stopCh   chan struct{}
	wg       sync.WaitGroup

	// Debounce overrides DefaultDebounce when set before Start.
	Debounce time.Duration
}

// New creates a watcher for the given corpus file. The callback runs on the
// watcher's goroutine; it should return before the next save is expected.
func New(path string, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("watcher: onChange callback cannot be nil")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve corpus path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		path:     abs,
		onChange: onChange,
		fsw:      fsw,
		stopCh:   make(chan struct{}),
		Debounce: DefaultDebounce,
	}, nil
}

// Start begins watching the corpus file's directory and dispatching debounced
// change callbacks.
func (w *Watcher) Start() error {
	if err := w.fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.wg.Add(1)
	go w.run()

	return nil
}

// run consumes filesystem events until stopped, collapsing bursts of events
// on the corpus file into one callback per quiet period.
func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.Debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.Debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: %v\n", err)

		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Stop halts the watcher. Pending debounced callbacks are dropped.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
