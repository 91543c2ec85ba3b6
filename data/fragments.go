package data

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"floorgen/components"
)

// Fragment is a pre-authored rectangular map snippet stamped onto floors
type Fragment struct {
	Name   string
	Width  int
	Height int
	Tiles  [][]components.Tile
}

// At returns the fragment tile at local coordinates
func (f *Fragment) At(x, y int) (components.Tile, bool) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return components.Tile{}, false
	}
	return f.Tiles[y][x], true
}

// Transposed returns a copy with width and height swapped
func (f *Fragment) Transposed() *Fragment {
	t := &Fragment{
		Name:   f.Name,
		Width:  f.Height,
		Height: f.Width,
		Tiles:  make([][]components.Tile, f.Width),
	}
	for y := 0; y < t.Height; y++ {
		t.Tiles[y] = make([]components.Tile, t.Width)
		for x := 0; x < t.Width; x++ {
			t.Tiles[y][x] = f.Tiles[x][y]
		}
	}
	return t
}

// FragmentSource looks fragments up by name
type FragmentSource interface {
	GetMapFragment(name string) (*Fragment, error)
}

// FragmentMap is an in-memory FragmentSource
type FragmentMap map[string]*Fragment

func (m FragmentMap) GetMapFragment(name string) (*Fragment, error) {
	if f, ok := m[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("fragment %q: %w", name, ErrUnknownDescriptor)
}

// DirFragmentSource loads <Dir>/<name>.yaml on every call
type DirFragmentSource struct {
	Dir string
}

func (s DirFragmentSource) GetMapFragment(name string) (*Fragment, error) {
	raw, err := os.ReadFile(filepath.Join(s.Dir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to read fragment %q: %w", name, err)
	}
	f, err := ParseFragment(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragment %q: %w", name, err)
	}
	if f.Name == "" {
		f.Name = name
	}
	return f, nil
}

type fragmentYAML struct {
	Name    string   `yaml:"name"`
	Rows    []string `yaml:"rows"`
	Effects []struct {
		X      int `yaml:"x"`
		Y      int `yaml:"y"`
		Effect int `yaml:"effect"`
	} `yaml:"effects"`
}

// ParseFragment decodes a fragment from YAML. Rows are terrain glyph strings.
func ParseFragment(raw []byte) (*Fragment, error) {
	var doc fragmentYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if len(doc.Rows) == 0 {
		return nil, fmt.Errorf("fragment has no rows")
	}

	f := &Fragment{
		Name:   doc.Name,
		Height: len(doc.Rows),
		Tiles:  make([][]components.Tile, len(doc.Rows)),
	}
	for y, row := range doc.Rows {
		glyphs := []rune(row)
		if y == 0 {
			f.Width = len(glyphs)
		} else if len(glyphs) != f.Width {
			return nil, fmt.Errorf("row %d has width %d, expected %d", y, len(glyphs), f.Width)
		}
		f.Tiles[y] = make([]components.Tile, f.Width)
		for x, g := range glyphs {
			terrain, ok := components.TerrainFromGlyph(g)
			if !ok {
				return nil, fmt.Errorf("row %d: unknown terrain glyph %q", y, g)
			}
			f.Tiles[y][x] = components.Tile{Terrain: terrain}
		}
	}
	for _, e := range doc.Effects {
		if e.X < 0 || e.X >= f.Width || e.Y < 0 || e.Y >= f.Height {
			return nil, fmt.Errorf("effect at %d,%d outside fragment", e.X, e.Y)
		}
		f.Tiles[e.Y][e.X].Effect = components.NewTileEffect(e.Effect)
	}
	return f, nil
}

// FragmentCache memoizes fragment lookups by name for one generation run
type FragmentCache struct {
	source FragmentSource
	cache  map[string]*Fragment
	loads  int
}

// NewFragmentCache wraps a source with a per-run cache
func NewFragmentCache(source FragmentSource) *FragmentCache {
	return &FragmentCache{
		source: source,
		cache:  make(map[string]*Fragment),
	}
}

// Get returns the named fragment, loading it from the source the first time
func (c *FragmentCache) Get(name string) (*Fragment, error) {
	if f, ok := c.cache[name]; ok {
		return f, nil
	}
	if c.source == nil {
		return nil, fmt.Errorf("fragment %q: no fragment source configured", name)
	}
	f, err := c.source.GetMapFragment(name)
	if err != nil {
		return nil, err
	}
	c.loads++
	c.cache[name] = f
	return f, nil
}

// Loads returns how many times the underlying source was hit
func (c *FragmentCache) Loads() int {
	return c.loads
}
