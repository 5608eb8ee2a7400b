// Package scan finds the image files that make up a roll.
package scan

import (
	"os"
	"path/filepath"
)

// Ext is the only file extension the viewer accepts. The match is
// exact and case sensitive.
const Ext = ".png"

// Item is a single image in a roll. Path is its location on disk;
// items sourced from a drag-and-drop carry their raw file contents in
// Data instead, because the host path is not available there.
type Item struct {
	Path string
	Name string
	Data []byte
}

type Items []Item

// FromPaths wraps caller-supplied file paths as Items, in the given
// order.
func FromPaths(paths []string) Items {
	items := make(Items, 0, len(paths))
	for _, p := range paths {
		items = append(items, Item{Path: p, Name: filepath.Base(p)})
	}
	return items
}

// Dir lists the image files directly inside dir, in os.ReadDir order.
// Subdirectories are not descended into.
func Dir(dir string) (Items, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var items Items
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Ext {
			continue
		}
		items = append(items, Item{
			Path: filepath.Join(dir, e.Name()),
			Name: e.Name(),
		})
	}
	return items, nil
}
