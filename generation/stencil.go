package generation

import (
	"fmt"

	"floorgen/components"
)

// BlobStencil decides whether a candidate blob footprint may be drawn.
// isValid reports, per map cell, whether the blob would paint it.
type BlobStencil interface {
	Test(m *components.Map, footprint components.Rect, isValid func(components.Loc) bool) bool
}

// AllowAllStencil accepts every footprint
type AllowAllStencil struct{}

func (AllowAllStencil) Test(*components.Map, components.Rect, func(components.Loc) bool) bool {
	return true
}

// AllCellsStencil accepts a footprint only when every cell of it is paintable
type AllCellsStencil struct{}

func (AllCellsStencil) Test(_ *components.Map, footprint components.Rect, isValid func(components.Loc) bool) bool {
	for _, loc := range footprint.Locs() {
		if !isValid(loc) {
			return false
		}
	}
	return true
}

// NoBorderStencil rejects footprints that would paint the map's outer edge
type NoBorderStencil struct{}

func (NoBorderStencil) Test(m *components.Map, footprint components.Rect, isValid func(components.Loc) bool) bool {
	for _, loc := range footprint.Locs() {
		if !isValid(loc) {
			continue
		}
		if loc.X <= 0 || loc.Y <= 0 || loc.X >= m.Width-1 || loc.Y >= m.Height-1 {
			return false
		}
	}
	return true
}

// StencilByName maps config names to stencils
func StencilByName(name string) (BlobStencil, error) {
	switch name {
	case "", "allow":
		return AllowAllStencil{}, nil
	case "all_cells":
		return AllCellsStencil{}, nil
	case "no_border":
		return NoBorderStencil{}, nil
	}
	return nil, fmt.Errorf("unknown stencil %q", name)
}
