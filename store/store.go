package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	domctx "github.com/reoring/domctx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MaxSavedContexts caps how many contexts are kept per component; Save
// drops the oldest beyond this.
const MaxSavedContexts = 50

const fileExt = ".json"

// Store keeps one context file per component under a base directory.
// Context lists are ordered most recently used first, so pruning cuts from
// the tail.
type Store struct {
	dir string
	log *zap.Logger

	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a logger. Defaults to zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New opens a store rooted at dir, creating the directory when missing.
func New(dir string, opts ...Option) (*Store, error) {
	s := &Store{dir: dir, log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: creating %s: %w", dir, err)
	}
	return s, nil
}

// Dir returns the base directory of the store.
func (s *Store) Dir() string { return s.dir }

// Load reads the saved contexts of one component. A missing file is an
// empty list, not an error.
func (s *Store) Load(component string) ([]*domctx.Context, error) {
	path := s.path(component)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: reading %s: %w", path, err)
	}
	ctxs, err := DecodeContexts(data)
	if err != nil {
		return nil, fmt.Errorf("store: decoding %s: %w", path, err)
	}
	s.log.Debug("loaded contexts",
		zap.String("component", component),
		zap.Int("count", len(ctxs)))
	return ctxs, nil
}

// Save writes the contexts of one component, pruning to MaxSavedContexts
// and replacing the file atomically.
func (s *Store) Save(component string, ctxs []*domctx.Context) error {
	if len(ctxs) > MaxSavedContexts {
		s.log.Info("pruning saved contexts",
			zap.String("component", component),
			zap.Int("dropped", len(ctxs)-MaxSavedContexts))
		ctxs = ctxs[:MaxSavedContexts]
	}
	data, err := EncodeContexts(ctxs)
	if err != nil {
		return fmt.Errorf("store: encoding %s: %w", component, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	path := s.path(component)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("store: replacing %s: %w", path, err)
	}
	s.log.Debug("saved contexts",
		zap.String("component", component),
		zap.Int("count", len(ctxs)))
	return nil
}

// Components lists every component with a saved context file, sorted.
func (s *Store) Components() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("store: listing %s: %w", s.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll reads every component's contexts concurrently.
func (s *Store) LoadAll() (map[string][]*domctx.Context, error) {
	names, err := s.Components()
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	out := make(map[string][]*domctx.Context, len(names))
	var g errgroup.Group
	for _, name := range names {
		name := name
		g.Go(func() error {
			ctxs, err := s.Load(name)
			if err != nil {
				return err
			}
			mu.Lock()
			out[name] = ctxs
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) path(component string) string {
	return filepath.Join(s.dir, sanitize(component)+fileExt)
}

// sanitize keeps component names safe as file names.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, name)
}
