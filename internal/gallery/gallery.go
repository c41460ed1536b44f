// Package gallery is the item collection behind the lightbox viewer. It
// discovers image files, tracks the current item and answers the viewer's
// navigation requests.
package gallery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/phanxgames/lightbox"
)

// ErrNoItems is returned when a scan finds nothing to show.
var ErrNoItems = errors.New("no images found")

// Item is one displayable file.
type Item struct {
	// ID identifies the item for zoom resets. It is the cleaned absolute path.
	ID   string
	Path string
	Name string
}

// Gallery is an ordered list of items with a cursor. It implements
// lightbox.Host; navigation requests move the cursor.
//
// A Gallery is used from the game loop goroutine only. Watch reports
// changes on a channel and leaves the rescan to the caller.
type Gallery struct {
	paths    []string
	patterns []string
	log      zerolog.Logger

	items  []Item
	index  int
	closed bool
}

var _ lightbox.Host = (*Gallery)(nil)

// New scans paths and returns a gallery positioned on the first item.
func New(paths, patterns []string, log zerolog.Logger) (*Gallery, error) {
	items, err := Scan(paths, patterns)
	if err != nil {
		return nil, err
	}
	return &Gallery{
		paths:    paths,
		patterns: patterns,
		log:      log.With().Str("component", "gallery").Logger(),
		items:    items,
	}, nil
}

// FromItems builds a gallery over a fixed item list.
func FromItems(items []Item, log zerolog.Logger) (*Gallery, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return &Gallery{
		items: append([]Item(nil), items...),
		log:   log.With().Str("component", "gallery").Logger(),
	}, nil
}

// Scan lists the files named by paths. Directories are searched with the
// doublestar patterns; files are taken as given. Results keep the order of
// paths, each directory's matches sorted by relative path.
func Scan(paths, patterns []string) ([]Item, error) {
	var items []Item
	seen := make(map[string]bool)
	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}
		abs = filepath.Clean(abs)
		if seen[abs] {
			return nil
		}
		seen[abs] = true
		items = append(items, Item{ID: abs, Path: abs, Name: filepath.Base(abs)})
		return nil
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", p, err)
		}
		if !info.IsDir() {
			if err := add(p); err != nil {
				return nil, err
			}
			continue
		}
		matches, err := globDir(p, patterns)
		if err != nil {
			return nil, err
		}
		for _, rel := range matches {
			if err := add(filepath.Join(p, filepath.FromSlash(rel))); err != nil {
				return nil, err
			}
		}
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("scan %s: %w", strings.Join(paths, ", "), ErrNoItems)
	}
	return items, nil
}

// globDir returns the slash-separated paths under dir matching any pattern,
// sorted and without duplicates.
func globDir(dir string, patterns []string) ([]string, error) {
	fsys := os.DirFS(dir)
	set := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q in %s: %w", pattern, dir, err)
		}
		for _, m := range matches {
			set[m] = true
		}
	}
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

// Rescan re-reads the gallery's paths. The current item stays selected if it
// still exists; otherwise the cursor keeps its position, clamped to the new
// length. When nothing is left the previous list is kept and ErrNoItems is
// returned.
func (g *Gallery) Rescan() error {
	if len(g.paths) == 0 {
		return nil
	}
	items, err := Scan(g.paths, g.patterns)
	if err != nil {
		return err
	}
	current := g.Current().ID
	index := -1
	for i, it := range items {
		if it.ID == current {
			index = i
			break
		}
	}
	if index < 0 {
		index = min(g.index, len(items)-1)
	}
	g.log.Debug().Int("before", len(g.items)).Int("after", len(items)).Msg("rescanned")
	g.items = items
	g.index = index
	return nil
}

// Len returns the number of items.
func (g *Gallery) Len() int { return len(g.items) }

// Index returns the cursor position.
func (g *Gallery) Index() int { return g.index }

// Current returns the item under the cursor.
func (g *Gallery) Current() Item { return g.items[g.index] }

// HasPrevious reports whether there is an item before the current one.
func (g *Gallery) HasPrevious() bool { return g.index > 0 }

// HasNext reports whether there is an item after the current one.
func (g *Gallery) HasNext() bool { return g.index < len(g.items)-1 }

// Select moves the cursor to i, clamped to the list.
func (g *Gallery) Select(i int) {
	g.index = max(0, min(i, len(g.items)-1))
}

// IsClosed reports whether the viewer asked to close.
func (g *Gallery) IsClosed() bool { return g.closed }

// Reopen clears the closed flag.
func (g *Gallery) Reopen() { g.closed = false }

// NavigatePrevious implements lightbox.Host.
func (g *Gallery) NavigatePrevious(viewerID string) {
	if !g.HasPrevious() {
		return
	}
	g.index--
	g.log.Debug().Str("viewer", viewerID).Str("item", g.Current().Name).Msg("previous")
}

// NavigateNext implements lightbox.Host.
func (g *Gallery) NavigateNext(viewerID string) {
	if !g.HasNext() {
		return
	}
	g.index++
	g.log.Debug().Str("viewer", viewerID).Str("item", g.Current().Name).Msg("next")
}

// Closed implements lightbox.Host.
func (g *Gallery) Closed(viewerID string) {
	g.closed = true
	g.log.Debug().Str("viewer", viewerID).Msg("closed")
}
