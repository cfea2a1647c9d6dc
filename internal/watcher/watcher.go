// Package watcher reports changes to a single configuration file on disk.
//
// A Watcher monitors the file's parent directory through fsnotify, so it
// keeps working when an editor replaces the file by rename. Rapid change
// bursts are debounced into one event. The delivered operation reflects
// the state of the file when the burst settles: OpWrite if it exists,
// OpRemove if it is gone.
package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Op is the operation reported for the watched file.
type Op int

const (
	// OpWrite indicates the file exists with possibly new content.
	OpWrite Op = iota

	// OpRemove indicates the file no longer exists.
	OpRemove
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Event describes a settled change to the watched file.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string

	// Op is the operation that settled.
	Op Op

	// Time is when the event was emitted.
	Time time.Time
}

// Watcher monitors one file for changes.
type Watcher struct {
	fsw    *fsnotify.Watcher
	target string
	delay  time.Duration

	events chan Event
	errs   chan error

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long a change burst must be quiet before an
// event is emitted.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// New creates a watcher for the file at path. The parent directory must
// exist; the file itself may not exist yet.
func New(path string, opts ...Option) (*Watcher, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		target:  target,
		delay:   200 * time.Millisecond,
		events:  make(chan Event, 16),
		errs:    make(chan error, 16),
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.target
}

// Events returns the channel of settled change events. It is closed by
// Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watch errors. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()

	close(w.events)
	close(w.errs)
	return err
}

// processLoop converts raw fsnotify events into debounced file events.
// All sends happen here so Close can safely close the channels after
// the loop exits.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	armed := false

	for {
		select {
		case <-w.closeCh:
			timer.Stop()
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				timer.Stop()
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if armed && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.delay)
			armed = true

		case <-timer.C:
			armed = false
			w.emit()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				timer.Stop()
				return
			}
			w.sendError(err)
		}
	}
}

// relevant reports whether a raw event concerns the watched file's
// content. Chmod-only events are ignored.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.target {
		return false
	}
	return ev.Op.Has(fsnotify.Create) ||
		ev.Op.Has(fsnotify.Write) ||
		ev.Op.Has(fsnotify.Remove) ||
		ev.Op.Has(fsnotify.Rename)
}

// emit classifies the settled state of the file and sends one event.
func (w *Watcher) emit() {
	op := OpWrite
	if _, err := os.Stat(w.target); err != nil {
		if !os.IsNotExist(err) {
			w.sendError(err)
			return
		}
		op = OpRemove
	}

	event := Event{Path: w.target, Op: op, Time: time.Now()}
	select {
	case w.events <- event:
	case <-w.closeCh:
	default:
		// Channel full, drop event
	}
}

// sendError sends an error to the output channel.
func (w *Watcher) sendError(err error) {
	select {
	case w.errs <- err:
	case <-w.closeCh:
	default:
		// Channel full, drop error
	}
}
