package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// watch re-renders inputs whose files change. Events are collected until
// the debounce interval passes without new ones, then the patterns are
// resolved again so newly created matching files are picked up too.
func (a *App) watch(ctx context.Context, inputs []inputFile) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer fsw.Close()

	for _, dir := range watchDirs(inputs, a.cfg.Inputs) {
		if err := fsw.Add(dir); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("cannot watch directory")
			continue
		}
		log.Debug().Str("dir", dir).Msg("watching directory")
	}

	debounce := a.cfg.WatchDebounce
	if debounce <= 0 {
		debounce = watchDebounceDefault
	}
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := map[string]fsnotify.Op{}
	log.Info().Dur("debounce", debounce).Msg("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			pending[absPath(event.Name)] |= event.Op
			if event.Has(fsnotify.Create) && recursivePatterns(a.cfg.Inputs) {
				watchNewDir(fsw, event.Name, pending)
			}
			timer.Reset(debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")

		case <-timer.C:
			a.flushPending(pending)
			pending = map[string]fsnotify.Op{}
		}
	}
}

// flushPending renders every current input named in pending.
func (a *App) flushPending(pending map[string]fsnotify.Op) {
	inputs, err := a.resolveInputs()
	if err != nil {
		log.Error().Err(err).Msg("resolve inputs")
		return
	}
	rendered := 0
	for _, in := range inputs {
		op, ok := pending[absPath(in.path)]
		if !ok {
			continue
		}
		log.Debug().Str("input", in.path).Str("op", op.String()).Msg("change detected")
		if err := a.renderFile(in); err == nil {
			rendered++
		}
	}
	if rendered == 0 {
		return
	}
	if err := a.flushMetrics(); err != nil {
		log.Warn().Err(err).Msg("metrics")
	}
}

// watchNewDir starts watching a directory created under a "**" pattern,
// along with its subdirectories. Files already inside are marked pending
// since they may have been written before the watch was added.
func watchNewDir(fsw *fsnotify.Watcher, path string, pending map[string]fsnotify.Op) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			pending[absPath(p)] |= fsnotify.Create
			return nil
		}
		if err := fsw.Add(p); err != nil {
			log.Warn().Err(err).Str("dir", p).Msg("cannot watch directory")
			return nil
		}
		log.Debug().Str("dir", p).Msg("watching new directory")
		return nil
	})
}

func recursivePatterns(patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(p, "**") {
			return true
		}
	}
	return false
}

// watchDirs lists the parent directory of every input plus the static base
// of every glob pattern, without duplicates. Patterns containing "**" also
// contribute every existing directory below their base.
func watchDirs(inputs []inputFile, patterns []string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(dir string) {
		dir = absPath(dir)
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	for _, in := range inputs {
		add(filepath.Dir(in.path))
	}
	for _, p := range patterns {
		base := globBase(p)
		add(base)
		if !strings.Contains(p, "**") {
			continue
		}
		_ = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				add(path)
			}
			return nil
		})
	}
	return out
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
