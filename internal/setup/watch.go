package setup

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"nativecheck/internal/system"
)

// DefaultDebounce coalesces bursts of filesystem events, e.g. a linker
// writing the library in several steps.
const DefaultDebounce = 250 * time.Millisecond

// Watch runs the check once, then again each time bin/ or the godot-cpp
// checkout changes, until ctx is done. onResult receives every run. The
// returned Result is the last one observed.
func Watch(ctx context.Context, c Checker, debounce time.Duration, onResult func(Result)) (Result, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return Result{}, fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	watched := map[string]bool{}
	// watch adds the targets for r and reports whether any were new.
	watch := func(r Result) bool {
		added := false
		for _, dir := range watchTargets(c, r) {
			if watched[dir] {
				continue
			}
			if err := w.Add(dir); err != nil {
				// not there yet; a parent is watched and will pick it up
				continue
			}
			watched[dir] = true
			added = true
			system.Logger.Debug("watching", "dir", dir)
		}
		return added
	}

	var fire <-chan time.Time
	// Targets are registered before each check; directories first known
	// from the result (the toolkit) get one more check once watched.
	run := func() Result {
		watch(Result{})
		res := c.Run()
		onResult(res)
		if watch(res) {
			fire = time.After(debounce)
		}
		return res
	}

	last := run()
	for {
		select {
		case <-ctx.Done():
			return last, nil
		case ev, ok := <-w.Events:
			if !ok {
				return last, nil
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				delete(watched, ev.Name)
			}
			fire = time.After(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return last, nil
			}
			system.Logger.Warn("watch error", "err", err)
		case <-fire:
			fire = nil
			system.Logger.Info("change detected, re-running checks")
			last = run()
		}
	}
}

// watchTargets lists the directories whose contents decide the result.
// Parents are included so that directories created later are noticed.
func watchTargets(c Checker, r Result) []string {
	out := []string{c.Root, filepath.Join(c.Root, OutputDirName)}
	for _, cand := range c.Locator.Candidates() {
		out = append(out, filepath.Dir(cand), cand)
	}
	if r.Toolkit != nil {
		tk := r.Toolkit.Path
		out = append(out,
			tk,
			filepath.Dir(filepath.Join(tk, coreHeader)),
		)
		for _, rel := range generatedHeaders {
			out = append(out, filepath.Dir(filepath.Join(tk, rel)))
		}
	}
	return out
}
