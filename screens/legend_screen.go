package screens

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"floorgen/components"
	"floorgen/generation"
)

// LegendScreen is a popup listing the glyphs on the current floor
type LegendScreen struct {
	title      string
	content    string
	width      int
	height     int
	background color.Color
	closed     bool
}

// NewLegendScreen builds the legend for ctx
func NewLegendScreen(ctx *generation.MapContext) *LegendScreen {
	lines := LegendLines(ctx)
	return &LegendScreen{
		title:      "Legend",
		content:    strings.Join(lines, "\n"),
		width:      260,
		height:     50 + 16*len(lines),
		background: color.RGBA{0, 0, 0, 200},
	}
}

// LegendLines describes every terrain, effect and entity glyph in use
func LegendLines(ctx *generation.MapContext) []string {
	terrains := map[components.Terrain]bool{}
	effects := map[int]bool{}
	ctx.Map.ForEach(func(_ components.Loc, tile *components.Tile) {
		terrains[tile.Terrain] = true
		if tile.Effect != nil {
			effects[tile.Effect.ID] = true
		}
	})

	var lines []string
	for t := components.TerrainFloor; t <= components.TerrainChasm; t++ {
		if terrains[t] {
			lines = append(lines, fmt.Sprintf("%c  %s", t.Glyph(), t))
		}
	}

	ids := make([]int, 0, len(effects))
	for id := range effects {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		desc, err := ctx.Data.TileDescriptor(id)
		if err != nil {
			lines = append(lines, fmt.Sprintf("?  unknown effect %d", id))
			continue
		}
		lines = append(lines, fmt.Sprintf("%c  %s", desc.Glyph, desc.Name))
	}

	lines = append(lines, "B  boss", "M  team leader", "m  monster", "!  item")
	return lines
}

func (s *LegendScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.closed = true
	}
	return nil
}

func (s *LegendScreen) Closed() bool {
	return s.closed
}

func (s *LegendScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := float32(bounds.Dx()-s.width) / 2
	y := float32(bounds.Dy()-s.height) / 2

	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 1, color.White, false)

	titleX := (s.width - len(s.title)*6) / 2 // Approximate text width
	ebitenutil.DebugPrintAt(screen, s.title, int(x)+titleX, int(y)+10)
	ebitenutil.DebugPrintAt(screen, s.content, int(x)+10, int(y)+30)
}

func (s *LegendScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
