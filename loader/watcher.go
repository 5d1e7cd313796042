package loader

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/keychord/bindings"
)

// Watcher reloads a bindings file when it changes on disk.
//
// The file's directory is watched rather than the file itself so that
// editors replacing the file via rename are still observed. Reload bursts
// are debounced.
type Watcher struct {
	path string
	fw   *fsnotify.Watcher

	reloads  chan []bindings.Binding
	errs     chan error
	done     chan struct{}
	wg       sync.WaitGroup
	debounce time.Duration

	closeOnce sync.Once
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the quiet period after a change before reloading.
// The default is 100ms.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) { w.debounce = d }
}

// Watch starts watching a bindings file. The initial content is NOT loaded;
// call LoadFile first if current state is needed.
func Watch(path string, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		fw:       fw,
		reloads:  make(chan []bindings.Binding, 1),
		errs:     make(chan error, 8),
		done:     make(chan struct{}),
		debounce: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Reloads delivers the file's bindings after each observed change.
func (w *Watcher) Reloads() <-chan []bindings.Binding {
	return w.reloads
}

// Errors delivers watch and reload failures.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.reportError(err)

		case <-timerC:
			timer = nil
			timerC = nil
			bs, err := LoadFile(w.path)
			if err != nil {
				w.reportError(err)
				continue
			}
			select {
			case w.reloads <- bs:
			default:
				// Replace an unconsumed stale reload with the newer one.
				select {
				case <-w.reloads:
				default:
				}
				select {
				case w.reloads <- bs:
				default:
				}
			}
		}
	}
}

func (w *Watcher) reportError(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
