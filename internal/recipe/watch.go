package recipe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/nosoynormal/vermutcalc/internal/logging"
)

// Watch reloads the recipe at path each time it is written and calls
// onChange with the new input or the load error. It runs until ctx is
// cancelled. Each save is one recalculation request.
//
// The parent directory is watched rather than the file, so saves that
// rename a temporary file over path keep being seen.
func Watch(ctx context.Context, path string, onChange func(Input, error)) error {
	log := logging.FromContext(ctx)

	target := filepath.Clean(path)
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	log.Debug().Ctx(ctx).Str("path", path).Msg("watching recipe for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			// A rename over the path arrives as Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			// A truncated file is an editor mid-save; the following Write carries the content.
			if info, statErr := os.Stat(target); statErr == nil && info.Size() == 0 {
				log.Debug().Ctx(ctx).Str("path", path).Msg("skipping empty recipe")
				continue
			}

			in, loadErr := Load(path)
			if loadErr != nil {
				log.Warn().Ctx(ctx).Err(loadErr).Str("path", path).Msg("recipe reload failed")
			} else {
				log.Debug().Ctx(ctx).Str("path", path).Msg("recipe reloaded")
			}
			onChange(in, loadErr)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Ctx(ctx).Err(watchErr).Msg("recipe watcher error")
		}
	}
}
