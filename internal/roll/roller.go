// Package roll manages which image of an ordered set is current and
// whether it needs to be reloaded from disk. It knows nothing about
// windows or textures; the ui package drives it once per frame.
package roll

import (
	"os"
	"path/filepath"

	"imgroll/internal/scan"
)

// Direction selects how Advance moves through the roll.
type Direction int

const (
	Refresh Direction = iota
	Next
	Prev
)

// loadMark records which item the caller last decoded. The zero value
// means nothing has been decoded yet, so the first frame always loads.
type loadMark struct {
	index int
	valid bool
}

// Roller steps through an ordered set of images, wrapping at both
// ends. An empty roll turns every operation into a no-op.
type Roller struct {
	items scan.Items
	index int
	mark  loadMark
}

// New creates a Roller over the given items. The first item is
// current.
func New(items scan.Items) *Roller {
	return &Roller{items: items}
}

// Len returns the number of images in the roll.
func (r *Roller) Len() int {
	return len(r.items)
}

// Index returns the position of the current image.
func (r *Roller) Index() int {
	return r.index
}

// Current returns the current item, or false when the roll is empty.
func (r *Roller) Current() (scan.Item, bool) {
	if len(r.items) == 0 {
		return scan.Item{}, false
	}
	return r.items[r.index], true
}

// CurrentName returns the display name of the current image, or ""
// when the roll is empty.
func (r *Roller) CurrentName() string {
	if len(r.items) == 0 {
		return ""
	}
	return r.items[r.index].Name
}

// Advance moves the current index one step in the given direction,
// wrapping around the roll. Refresh leaves the index alone. Advance
// never loads anything; the caller observes NeedsLoad afterwards.
func (r *Roller) Advance(d Direction) {
	n := len(r.items)
	if n == 0 {
		return
	}
	switch d {
	case Prev:
		r.index = (r.index - 1 + n) % n
	case Next:
		r.index = (r.index + 1) % n
	}
}

// NeedsLoad reports whether the current image differs from the one
// last marked loaded, i.e. whether the caller must decode before the
// next draw.
func (r *Roller) NeedsLoad() bool {
	return len(r.items) > 0 && (!r.mark.valid || r.mark.index != r.index)
}

// MarkLoaded records that the caller decoded the current image.
func (r *Roller) MarkLoaded() {
	r.mark = loadMark{index: r.index, valid: true}
}

// Reset replaces the roll wholesale. selected becomes the current
// index when it is in range, otherwise the roll starts at 0. The load
// mark is cleared so the next frame reloads even if the index value
// did not change.
func (r *Roller) Reset(items scan.Items, selected int) {
	r.items = items
	r.index = 0
	if selected > 0 && selected < len(items) {
		r.index = selected
	}
	r.mark = loadMark{}
}

// ResetFromPath rebuilds the roll from the directory containing path
// (path itself when it is a directory). If path is one of the matched
// files, it becomes the current image. Returns the number of matches;
// zero matches leave the roller completely untouched so a stray drop
// cannot empty the viewer.
func (r *Roller) ResetFromPath(path string) (int, error) {
	path = filepath.Clean(path)
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	dir := path
	if !fi.IsDir() {
		dir = filepath.Dir(path)
	}
	items, err := scan.Dir(dir)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}
	selected := 0
	for i, it := range items {
		if it.Path == path {
			selected = i
			break
		}
	}
	r.Reset(items, selected)
	return len(items), nil
}
