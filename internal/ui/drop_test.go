package ui

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"imgroll/internal/scan"
)

func dropNames(items scan.Items) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestCollectDropDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"shots/b.png":        {Data: []byte("b")},
		"shots/a.png":        {Data: []byte("a")},
		"shots/skip.jpg":     {Data: []byte("j")},
		"shots/deeper/c.png": {Data: []byte("c")}, // nested, not scanned
	}
	items, selected, err := collectDrop(fsys)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.png", "b.png"}
	if diff := cmp.Diff(want, dropNames(items)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if selected != 0 {
		t.Errorf("selected = %d, want 0", selected)
	}
	if string(items[1].Data) != "b" {
		t.Errorf("item bytes not copied out, got %q", items[1].Data)
	}
	if items[0].Path != "" {
		t.Errorf("drop-sourced item has a path: %q", items[0].Path)
	}
}

func TestCollectDropFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"one.png":   {Data: []byte("1")},
		"two.png":   {Data: []byte("2")},
		"notes.txt": {Data: []byte("t")},
	}
	items, selected, err := collectDrop(fsys)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"one.png", "two.png"}
	if diff := cmp.Diff(want, dropNames(items)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if selected != 0 {
		t.Errorf("selected = %d, want 0", selected)
	}
}

func TestCollectDropNoMatches(t *testing.T) {
	fsys := fstest.MapFS{
		"readme.md":     {Data: []byte("m")},
		"docs/plan.txt": {Data: []byte("p")},
	}
	items, _, err := collectDrop(fsys)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("unsupported drop yielded %d items", len(items))
	}
}
