package data

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Catalog is an in-memory Source, usually loaded from YAML files
type Catalog struct {
	Tiles   map[int]*TileDescriptor
	Items   map[int]*ItemDescriptor
	Species map[int]*SpeciesDescriptor
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		Tiles:   make(map[int]*TileDescriptor),
		Items:   make(map[int]*ItemDescriptor),
		Species: make(map[int]*SpeciesDescriptor),
	}
}

// LoadCatalog reads tiles.yaml, items.yaml and species.yaml from dir.
// Missing files are skipped.
func LoadCatalog(dir string) (*Catalog, error) {
	c := NewCatalog()
	loaders := []struct {
		file string
		load func([]byte) error
	}{
		{"tiles.yaml", c.LoadTiles},
		{"items.yaml", c.LoadItems},
		{"species.yaml", c.LoadSpecies},
	}
	for _, l := range loaders {
		raw, err := os.ReadFile(filepath.Join(dir, l.file))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", l.file, err)
		}
		if err := l.load(raw); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", l.file, err)
		}
	}
	return c, nil
}

// LoadTiles parses a YAML list of tile descriptors
func (c *Catalog) LoadTiles(raw []byte) error {
	var tiles []tileDescriptorYAML
	if err := yaml.Unmarshal(raw, &tiles); err != nil {
		return err
	}
	for _, t := range tiles {
		if t.Name == "" {
			return fmt.Errorf("tile %d missing name", t.ID)
		}
		c.AddTile(t.descriptor())
	}
	return nil
}

// LoadItems parses a YAML list of item descriptors
func (c *Catalog) LoadItems(raw []byte) error {
	var items []*ItemDescriptor
	if err := yaml.Unmarshal(raw, &items); err != nil {
		return err
	}
	for _, item := range items {
		if item.Name == "" {
			return fmt.Errorf("item %d missing name", item.ID)
		}
		if item.MaxStack < 1 {
			item.MaxStack = 1
		}
		c.AddItem(item)
	}
	return nil
}

// LoadSpecies parses a YAML list of species descriptors
func (c *Catalog) LoadSpecies(raw []byte) error {
	var species []*SpeciesDescriptor
	if err := yaml.Unmarshal(raw, &species); err != nil {
		return err
	}
	for _, s := range species {
		if s.Name == "" {
			return fmt.Errorf("species %d missing name", s.ID)
		}
		c.AddSpecies(s)
	}
	return nil
}

// AddTile registers a tile descriptor
func (c *Catalog) AddTile(desc *TileDescriptor) { c.Tiles[desc.ID] = desc }

// AddItem registers an item descriptor
func (c *Catalog) AddItem(desc *ItemDescriptor) { c.Items[desc.ID] = desc }

// AddSpecies registers a species descriptor
func (c *Catalog) AddSpecies(desc *SpeciesDescriptor) { c.Species[desc.ID] = desc }

func (c *Catalog) TileDescriptor(id int) (*TileDescriptor, error) {
	if desc, ok := c.Tiles[id]; ok {
		return desc, nil
	}
	return nil, fmt.Errorf("tile %d: %w", id, ErrUnknownDescriptor)
}

func (c *Catalog) ItemDescriptor(id int) (*ItemDescriptor, error) {
	if desc, ok := c.Items[id]; ok {
		return desc, nil
	}
	return nil, fmt.Errorf("item %d: %w", id, ErrUnknownDescriptor)
}

func (c *Catalog) SpeciesDescriptor(id int) (*SpeciesDescriptor, error) {
	if desc, ok := c.Species[id]; ok {
		return desc, nil
	}
	return nil, fmt.Errorf("species %d: %w", id, ErrUnknownDescriptor)
}
