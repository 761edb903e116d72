package shaders

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/flame/internal/logger"
)

// Watcher reports edits to shader files in an override directory. Events
// arrive on fsnotify's goroutine; Changed is polled from the frame loop.
type Watcher struct {
	fsw   *fsnotify.Watcher
	dirty chan struct{}
	done  chan struct{}
	log   *zap.Logger
}

// Watch starts watching dir.
func Watch(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:   fsw,
		dirty: make(chan struct{}, 1),
		done:  make(chan struct{}),
		log:   logger.Named("shaders"),
	}
	go w.loop()

	w.log.Info("watching shader directory", zap.String("dir", dir))
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !IsShaderFile(ev.Name) || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("shader changed", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			w.mark()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", zap.Error(err))
		}
	}
}

// mark coalesces bursts of events into one pending reload.
func (w *Watcher) mark() {
	select {
	case w.dirty <- struct{}{}:
	default:
	}
}

// Changed reports whether any shader file changed since the last call.
// It never blocks.
func (w *Watcher) Changed() bool {
	select {
	case <-w.dirty:
		return true
	default:
		return false
	}
}

// Close stops the watcher and waits for its goroutine.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
