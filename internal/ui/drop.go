package ui

import (
	"io/fs"
	"path"

	"imgroll/internal/scan"
)

// collectDrop reads image entries out of the transient file system
// that delivers a drag-and-drop. The file system is only readable
// during the Update that received it and never exposes host paths, so
// file contents are copied out immediately into Data-backed items.
//
// A dropped directory contributes its immediate children matching
// scan.Ext; dropped files contribute themselves. The returned index
// selects the first dropped file among the matches.
func collectDrop(files fs.FS) (scan.Items, int, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, 0, err
	}
	var items scan.Items
	selected := -1
	for _, e := range entries {
		if e.IsDir() {
			children, err := fs.ReadDir(files, e.Name())
			if err != nil {
				continue
			}
			for _, c := range children {
				if c.IsDir() || path.Ext(c.Name()) != scan.Ext {
					continue
				}
				data, err := fs.ReadFile(files, path.Join(e.Name(), c.Name()))
				if err != nil {
					continue
				}
				items = append(items, scan.Item{Name: c.Name(), Data: data})
			}
			continue
		}
		if path.Ext(e.Name()) != scan.Ext {
			continue
		}
		data, err := fs.ReadFile(files, e.Name())
		if err != nil {
			continue
		}
		if selected < 0 {
			selected = len(items)
		}
		items = append(items, scan.Item{Name: e.Name(), Data: data})
	}
	if selected < 0 {
		selected = 0
	}
	return items, selected, nil
}
