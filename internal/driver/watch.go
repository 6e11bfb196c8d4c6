package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces the burst of events an editor save produces.
const debounce = 150 * time.Millisecond

// Watch generates once, then reloads the store and generates again whenever
// the pattern or neighbor file changes, until ctx is done. onResult receives
// every generation, or the load error when a changed file does not parse; a
// broken file does not stop the watch.
//
// The parent directories are watched, not the files, so editors that replace
// files by rename keep working.
func (r *Runner) Watch(ctx context.Context, onResult func(Result, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("driver: watcher: %w", err)
	}
	defer w.Close()

	targets := map[string]bool{}
	for _, p := range []string{r.Config.Patterns, r.Config.Neighbors} {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
	}
	dirs := map[string]bool{}
	for p := range targets {
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("driver: watch %s: %w", dir, err)
		}
	}

	r.reload(ctx, onResult)

	var fire <-chan time.Time
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(ev.Name)
			if !targets[abs] || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			r.log().Debug("fixture changed", "file", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.log().Warn("watch error", "err", err)
		case <-fire:
			fire = nil
			r.reload(ctx, onResult)
		}
	}
}

// reload rebuilds the store from disk and runs one generation.
func (r *Runner) reload(ctx context.Context, onResult func(Result, error)) {
	store, err := LoadStore(r.Config)
	if err != nil {
		r.log().Warn("fixture reload failed", "err", err)
		onResult(Result{}, err)
		return
	}
	r.Store = store
	onResult(r.Generate(ctx))
}
