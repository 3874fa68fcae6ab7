package source

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/logger"
	"github.com/j2inn/haystack-core-sub001/namespace"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after a change before rebuilding.
const DefaultDebounce = 250 * time.Millisecond

// ReloadCallback is called with each rebuilt namespace.
type ReloadCallback func(*namespace.Namespace) error

// Watcher rebuilds a namespace when its def files change and publishes it to
// a holder. Readers holding the previous namespace are unaffected.
type Watcher struct {
	paths  []string
	base   *hval.Grid
	opts   []namespace.Option
	holder *namespace.Holder

	watcher        *fsnotify.Watcher
	watched        map[string]bool // cleaned file paths, or directories
	callbacks      []ReloadCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	logger         *zap.SugaredLogger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period. Values <= 0 keep the default.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debouncePeriod = d
		}
	}
}

// WithBase sets rows loaded ahead of the watched files, such as the bundled ontology.
func WithBase(g *hval.Grid) WatcherOption {
	return func(w *Watcher) { w.base = g }
}

// WithNamespaceOptions sets the options used for every rebuild.
func WithNamespaceOptions(opts ...namespace.Option) WatcherOption {
	return func(w *Watcher) { w.opts = opts }
}

// NewWatcher watches paths, which may be def files or directories of them.
// Files are watched through their parent directory so editors that replace
// files on save are still seen.
func NewWatcher(holder *namespace.Holder, paths []string, opts ...WatcherOption) (*Watcher, error) {
	if holder == nil {
		return nil, errors.Wrap(errors.ErrInvalidArgument, "watcher needs a holder")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		paths:          paths,
		base:           hval.NewGrid(),
		holder:         holder,
		watcher:        fw,
		watched:        make(map[string]bool),
		debouncePeriod: DefaultDebounce,
		logger:         logger.ComponentLogger("source.watcher"),
	}
	for _, opt := range opts {
		opt(w)
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		clean := filepath.Clean(p)
		w.watched[clean] = true
		dir := clean
		if info, err := os.Stat(clean); err == nil && !info.IsDir() {
			dir = filepath.Dir(clean)
		}
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}
	return w, nil
}

// OnReload registers a callback run after each successful rebuild.
func (w *Watcher) OnReload(callback ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start watches for changes until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.watchLoop(ctx)
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if !w.tracks(event.Name) {
				continue
			}
			w.logger.Debugw("Def file changed",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("Def watcher error", logger.FieldError, err)
		}
	}
}

// tracks reports whether a changed path belongs to the watched set.
func (w *Watcher) tracks(name string) bool {
	clean := filepath.Clean(name)
	if w.watched[clean] {
		return true
	}
	if !w.watched[filepath.Dir(clean)] {
		return false
	}
	_, err := FormatOf(clean)
	return err == nil
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if _, err := w.Reload(); err != nil {
			w.logger.Errorw("Def reload failed", logger.FieldError, err)
		}
	})
}

// Reload rebuilds the namespace now, publishes it and runs the callbacks.
// On a load error the holder keeps its current namespace.
func (w *Watcher) Reload() (*namespace.Namespace, error) {
	start := time.Now()
	ns, err := Build(w.base, w.paths, w.opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rebuild namespace")
	}
	w.holder.Store(ns)

	w.logger.Infow("Namespace reloaded",
		logger.FieldCount, ns.Len(),
		logger.FieldFiles, w.paths,
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	w.mu.RLock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(ns); err != nil {
			w.logger.Warnw("Reload callback error", logger.FieldError, err)
		}
	}
	return ns, nil
}

// Stop stops watching.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
