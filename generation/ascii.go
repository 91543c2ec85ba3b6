package generation

import (
	"strings"

	"floorgen/components"
)

// EntityGlyphs maps entity positions to their display runes.
// Leaders show as M, bosses as B, other monsters as m and items as !.
func (ctx *MapContext) EntityGlyphs() map[components.Loc]rune {
	glyphs := make(map[components.Loc]rune)
	for _, entity := range ctx.World.GetAllEntities() {
		c, ok := ctx.World.GetComponent(entity.ID, components.Position)
		if !ok {
			continue
		}
		loc := c.(*components.PositionComponent).Loc()
		switch {
		case entity.HasTag("boss"):
			glyphs[loc] = 'B'
		case entity.HasTag("leader"):
			glyphs[loc] = 'M'
		case entity.HasTag("monster"):
			glyphs[loc] = 'm'
		case entity.HasTag("item"):
			glyphs[loc] = '!'
		}
	}
	return glyphs
}

// TileGlyph returns the rune for the tile at loc: its effect's glyph when it
// has one, its terrain glyph otherwise
func (ctx *MapContext) TileGlyph(loc components.Loc) rune {
	tile := ctx.Map.Tile(loc)
	if tile == nil {
		return ' '
	}
	if tile.Effect != nil {
		if desc, err := ctx.Data.TileDescriptor(tile.Effect.ID); err == nil {
			return desc.Glyph
		}
		return '?'
	}
	return tile.Terrain.Glyph()
}

// RenderASCII draws the floor one row per line, entities over tiles
func (ctx *MapContext) RenderASCII() string {
	entities := ctx.EntityGlyphs()
	var sb strings.Builder
	for y := 0; y < ctx.Map.Height; y++ {
		for x := 0; x < ctx.Map.Width; x++ {
			loc := components.Loc{X: x, Y: y}
			if r, ok := entities[loc]; ok {
				sb.WriteRune(r)
				continue
			}
			sb.WriteRune(ctx.TileGlyph(loc))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
