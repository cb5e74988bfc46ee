package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last write before
// reloading. Editors and os.WriteFile produce several events per save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a configuration file whenever it is written and hands the
// new configuration, with the difficulty preset re-applied, to a callback.
// Bursts of events within Debounce collapse into one reload. Invalid files
// are logged and skipped.
type Watcher struct {
	Debounce time.Duration


	path     string
	preset   DifficultyPreset
	watcher  *fsnotify.Watcher
	logger   *log.Logger
	onChange func(SnakeConfig)
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors replacing the file by rename are noticed too.
func NewWatcher(path string, preset DifficultyPreset, logger *log.Logger, onChange func(SnakeConfig)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	if logger == nil {
		logger = log.Default()
	}

	return &Watcher{
		Debounce: DefaultDebounce,
		path:     abs,
		preset:   preset,
		watcher:  fw,
		logger:   logger,
		onChange: onChange,
	}, nil
}

// Run dispatches reloads until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				debounce.Reset(w.Debounce)
			}
		case <-debounce.C:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("ignoring config change", "path", w.path, "error", err)
		return
	}
	ApplySnakePreset(&cfg, w.preset)
	w.logger.Info("config reloaded", "path", w.path)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

// Close stops the watcher. Run returns once its channels drain.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
