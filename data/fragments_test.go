package data

import (
	"os"
	"path/filepath"
	"testing"

	"floorgen/components"
)

const pondYAML = `
name: pond
rows:
  - "~~."
  - "~~."
effects:
  - {x: 2, y: 1, effect: 4}
`

func TestParseFragment(t *testing.T) {
	f, err := ParseFragment([]byte(pondYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Width != 3 || f.Height != 2 {
		t.Fatalf("expected 3x2, got %dx%d", f.Width, f.Height)
	}
	tile, ok := f.At(0, 0)
	if !ok || tile.Terrain != components.TerrainWater {
		t.Fatalf("expected water at 0,0, got %v", tile)
	}
	tile, _ = f.At(2, 1)
	if !tile.HasEffect(4) {
		t.Fatalf("expected effect 4 at 2,1")
	}
	if _, ok := f.At(3, 0); ok {
		t.Fatalf("expected out-of-fragment lookup to fail")
	}
}

func TestParseFragmentRejectsRaggedRows(t *testing.T) {
	if _, err := ParseFragment([]byte("rows: [\"~~\", \"~\"]")); err == nil {
		t.Fatalf("expected ragged rows to be rejected")
	}
	if _, err := ParseFragment([]byte("rows: [\"~Q\"]")); err == nil {
		t.Fatalf("expected unknown glyph to be rejected")
	}
}

func TestFragmentTransposed(t *testing.T) {
	f, _ := ParseFragment([]byte(pondYAML))
	tr := f.Transposed()
	if tr.Width != 2 || tr.Height != 3 {
		t.Fatalf("expected 2x3, got %dx%d", tr.Width, tr.Height)
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			a, _ := f.At(x, y)
			b, _ := tr.At(y, x)
			if a.Terrain != b.Terrain {
				t.Fatalf("mismatch at %d,%d", x, y)
			}
		}
	}
}

type countingSource struct {
	FragmentMap
	calls int
}

func (s *countingSource) GetMapFragment(name string) (*Fragment, error) {
	s.calls++
	return s.FragmentMap.GetMapFragment(name)
}

func TestFragmentCacheLoadsOncePerName(t *testing.T) {
	f, _ := ParseFragment([]byte(pondYAML))
	src := &countingSource{FragmentMap: FragmentMap{"pond": f}}
	cache := NewFragmentCache(src)
	for i := 0; i < 5; i++ {
		got, err := cache.Get("pond")
		if err != nil || got != f {
			t.Fatalf("unexpected lookup result %v (%v)", got, err)
		}
	}
	if src.calls != 1 || cache.Loads() != 1 {
		t.Fatalf("expected a single load, got %d calls", src.calls)
	}
	if _, err := cache.Get("lake"); err == nil {
		t.Fatalf("expected missing fragment error")
	}
}

func TestDirFragmentSource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pit.yaml"), []byte("rows: [\"  \", \"  \"]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := DirFragmentSource{Dir: dir}.GetMapFragment("pit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name != "pit" || f.Width != 2 || f.Height != 2 {
		t.Fatalf("unexpected fragment %+v", f)
	}
	if _, err := (DirFragmentSource{Dir: dir}).GetMapFragment("missing"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
