package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events a single save produces
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads the store when its file changes and forwards new themes
// to an Applier. It implements service.Service
type Watcher struct {
	store    *Store
	applier  Applier
	logger   *zap.Logger
	debounce time.Duration

	mu      sync.Mutex
	current Theme

	fsw    *fsnotify.Watcher
	cancel context.CancelFunc
	done   chan struct{}
}

// NewWatcher creates a watcher; current is the theme the host starts with
func NewWatcher(store *Store, applier Applier, current Theme, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		store:    store,
		applier:  applier,
		logger:   logger.Named("theme"),
		debounce: DefaultDebounce,
		current:  current,
	}
}

// SetDebounce overrides the debounce window, must precede Start
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Note records a theme the host applied itself so its own save is not echoed back
func (w *Watcher) Note(t Theme) {
	w.mu.Lock()
	w.current = t
	w.mu.Unlock()
}

// Current returns the last theme seen or noted
func (w *Watcher) Current() Theme {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Name implements service.Service
func (w *Watcher) Name() string {
	return "theme"
}

// Dependencies implements service.Service
func (w *Watcher) Dependencies() []string {
	return nil
}

// Init implements service.Service, creating the store directory and the fsnotify watcher
func (w *Watcher) Init(args ...any) error {
	if err := os.MkdirAll(w.store.Dir(), 0o755); err != nil {
		return fmt.Errorf("theme watcher: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	// Watch the directory, saves replace the file by rename
	if err := fsw.Add(w.store.Dir()); err != nil {
		fsw.Close()
		return fmt.Errorf("watch %s: %w", w.store.Dir(), err)
	}
	w.fsw = fsw
	return nil
}

// Start implements service.Service
func (w *Watcher) Start() error {
	if w.fsw == nil {
		return fmt.Errorf("theme watcher: Start before Init")
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	w.logger.Info("watching theme preference", zap.String("path", w.store.Path()))
	go w.run(ctx)
	return nil
}

// Stop implements service.Service, idempotent
func (w *Watcher) Stop() error {
	if w.cancel != nil {
		w.cancel()
		<-w.done
		w.cancel = nil
	}
	if w.fsw != nil {
		err := w.fsw.Close()
		w.fsw = nil
		return err
	}
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	debounceTimer := time.NewTimer(w.debounce)
	if !debounceTimer.Stop() {
		<-debounceTimer.C
	}
	defer debounceTimer.Stop()

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				debounceTimer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", zap.Error(err))

		case <-debounceTimer.C:
			w.reload()

		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.store.Path()) {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0
}

// reload applies the stored theme when it differs from the current one
func (w *Watcher) reload() {
	t, ok, err := w.store.Load()
	if err != nil {
		w.logger.Warn("theme reload failed", zap.Error(err))
		return
	}
	if !ok {
		return
	}

	w.mu.Lock()
	changed := t != w.current
	w.current = t
	w.mu.Unlock()

	if changed {
		w.logger.Info("theme changed on disk", zap.Stringer("theme", t))
		w.applier.ApplyTheme(t)
	}
}
