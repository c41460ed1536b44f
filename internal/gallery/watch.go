package gallery

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports file additions and removals under the gallery's
// directories. Changes are coalesced: at most one notification is pending.
type Watcher struct {
	changes chan struct{}
	errs    chan error
	done    chan struct{}
}

// Changes is signalled after files were created, removed or renamed.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Errors carries watcher errors. It is never closed while watching.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Done is closed once the watcher has shut down.
func (w *Watcher) Done() <-chan struct{} { return w.done }

// Watch starts watching every directory in the gallery's paths, including
// subdirectories, until ctx is cancelled.
func (g *Gallery) Watch(ctx context.Context) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	for _, p := range g.paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return fw.Add(path)
			}
			return nil
		})
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
	}

	w := &Watcher{
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	log := g.log
	go func() {
		defer close(w.done)
		defer fw.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					continue
				}
				log.Debug().Str("op", ev.Op.String()).Str("file", ev.Name).Msg("fsnotify gallery change detected")
				if ev.Has(fsnotify.Create) {
					if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
						if err := fw.Add(ev.Name); err != nil {
							log.Warn().Err(err).Str("dir", ev.Name).Msg("failed to watch new directory")
						}
					}
				}
				select {
				case w.changes <- struct{}{}:
				default:
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				select {
				case w.errs <- err:
				default:
					log.Warn().Err(err).Msg("watcher error dropped")
				}
			}
		}
	}()
	return w, nil
}
