package kb

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounceDelay is used when no debounce delay is given.
const defaultDebounceDelay = 500 * time.Millisecond

// Watcher reloads the knowledge base when its documents change on disk.
// Reloads are debounced; readers keep resolving against the previous
// snapshot until the swap completes.
type Watcher struct {
	kb       *KB
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
}

// NewWatcher creates a watcher over the knowledge base directory.
func NewWatcher(k *KB, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = defaultDebounceDelay
	}

	if err := fsw.Add(k.config.Path); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &Watcher{
		kb:       k,
		debounce: debounce,
		watcher:  fsw,
		logger:   logger,
	}, nil
}

// Start watches for document changes until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("knowledge base change detected",
				slog.String("path", event.Name),
				slog.String("op", event.Op.String()))

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if err := w.kb.Reload(); err != nil {
				// Keep serving the previous snapshot on a bad reload.
				w.logger.Error("knowledge base reload failed",
					slog.String("error", err.Error()))
				continue
			}
			w.logger.Info("knowledge base reloaded",
				slog.Int("slugs", len(w.kb.Slugs())))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("knowledge base watch error",
				slog.String("error", err.Error()))
		}
	}
}

// relevant filters events down to document writes and removals.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	for _, pattern := range w.kb.config.Patterns {
		if ok, _ := filepath.Match(filepath.Base(pattern), name); ok {
			return true
		}
	}
	return false
}
