package resolver

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/letp-labs/simdb/pkg/log"
)

// debounceDelay is the wait after a file change before reloading, so that
// editors writing the database in several steps trigger one reload.
var debounceDelay = 100 * time.Millisecond

// Watcher keeps a Resolver current while the sim database file changes on
// disk. It is meant for long-running benches: the database is reloaded on
// write, and lookups always see a fully parsed snapshot. A reload that
// fails to parse keeps the previous database.
type Watcher struct {
	path string
	opts []Option

	mu       sync.RWMutex
	resolver *Resolver

	dmu      sync.Mutex
	debounce *time.Timer

	logger log.Logger
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Watch loads the sim database at path and starts watching it for
// changes. The initial load must succeed; later reload failures are
// logged and the previous database stays in effect. Close the watcher to
// release the underlying file watch.
func Watch(ctx context.Context, path string, opts ...Option) (*Watcher, error) {
	r, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     path,
		opts:     opts,
		resolver: r,
		logger:   r.logger,
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors replace the file and the
	// watch would be lost with it.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go w.watchLoop(watchCtx, fw)

	return w, nil
}

// Resolve answers a lookup against the current database snapshot.
func (w *Watcher) Resolve(iccid, imsi string) (SimInfo, bool) {
	w.mu.RLock()
	r := w.resolver
	w.mu.RUnlock()
	return r.Resolve(iccid, imsi)
}

// Resolver returns the current resolver snapshot.
func (w *Watcher) Resolver() *Resolver {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.resolver
}

// Close stops watching the database file.
func (w *Watcher) Close() error {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	return nil
}

func (w *Watcher) watchLoop(ctx context.Context, fw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fw.Close()

	base := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceReload()

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("sim database watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) debounceReload() {
	w.dmu.Lock()
	defer w.dmu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	r, err := Open(w.path, w.opts...)
	if err != nil {
		w.logger.Error("sim database reload failed, keeping previous",
			log.String("path", w.path),
			log.Err(err))
		return
	}

	w.mu.Lock()
	w.resolver = r
	w.mu.Unlock()

	w.logger.Info("sim database reloaded", log.String("path", w.path))
}
