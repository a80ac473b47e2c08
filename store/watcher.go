package store

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher observes a store directory and reports which component's context
// file changed. Rapid successive writes to the same file are debounced.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	dir      string
	log      *zap.Logger
	onChange func(component string)

	debounce    map[string]time.Time
	debounceDur time.Duration

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewWatcher builds a watcher over the store's directory. onChange is called
// from the watcher goroutine with the component whose file changed.
func NewWatcher(s *Store, onChange func(component string), opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:         fsw,
		dir:         s.Dir(),
		log:         s.log,
		onChange:    onChange,
		debounce:    make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	for _, o := range opts {
		o(w)
	}
	return w, nil
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce overrides the debounce window applied per file.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounceDur = d }
}

// Start begins watching. It is non-blocking; events are handled on a
// goroutine until Stop is called or ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	// Only mark running once the directory is watched; a failed Start must
	// leave the watcher stoppable and restartable.
	if err := w.fsw.Add(w.dir); err != nil {
		return err
	}
	w.running = true
	w.log.Debug("watching settings directory", zap.String("dir", w.dir))
	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.fsw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !strings.HasSuffix(ev.Name, fileExt) {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) {
		return
	}

	w.mu.Lock()
	now := time.Now()
	if last, ok := w.debounce[ev.Name]; ok && now.Sub(last) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.debounce[ev.Name] = now
	w.mu.Unlock()

	component := strings.TrimSuffix(filepath.Base(ev.Name), fileExt)
	w.log.Debug("context file changed",
		zap.String("component", component),
		zap.String("op", ev.Op.String()))
	w.onChange(component)
}
