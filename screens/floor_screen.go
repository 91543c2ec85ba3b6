package screens

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"floorgen/components"
	"floorgen/config"
	"floorgen/ecs"
	"floorgen/generation"
)

var terrainColors = map[components.Terrain]color.RGBA{
	components.TerrainFloor: {60, 60, 70, 255},
	components.TerrainWall:  {20, 20, 25, 255},
	components.TerrainWater: {40, 90, 200, 255},
	components.TerrainLava:  {210, 70, 20, 255},
	components.TerrainGrass: {50, 140, 60, 255},
	components.TerrainTree:  {20, 90, 30, 255},
	components.TerrainChasm: {0, 0, 0, 255},
}

var (
	effectColor = color.RGBA{230, 200, 60, 255}
	bossColor   = color.RGBA{230, 40, 200, 255}
	leaderColor = color.RGBA{240, 60, 60, 255}
	mobColor    = color.RGBA{200, 120, 120, 255}
	itemColor   = color.RGBA{120, 230, 230, 255}
)

// FloorScreen shows a generated floor and regenerates it on demand
type FloorScreen struct {
	builder *generation.FloorBuilder
	stack   *ScreenStack
	log     *slog.Logger

	seed    int64
	ctx     *generation.MapContext
	err     error
	applied []string
	camX    int
	camY    int
}

// NewFloorScreen generates the floor for seed and returns a screen showing it
func NewFloorScreen(builder *generation.FloorBuilder, stack *ScreenStack, seed int64, log *slog.Logger) *FloorScreen {
	s := &FloorScreen{builder: builder, stack: stack, log: log}
	s.regenerate(seed)
	return s
}

func (s *FloorScreen) regenerate(seed int64) {
	ctx, steps, err := s.builder.Build(seed)
	if err != nil {
		s.err = err
		s.applied = nil
		return
	}
	ctx.Log = s.log
	s.seed = ctx.Seed

	var applied []string
	ctx.World.GetEventManager().Subscribe(generation.StepAppliedEventType, func(e ecs.Event) {
		applied = append(applied, e.(generation.StepAppliedEvent).Name)
	})
	err = generation.RunPipeline(steps, ctx)
	s.applied = applied
	if err != nil {
		s.log.Warn("floor generation failed", "seed", ctx.Seed, "after", s.lastStep(), "error", err)
		s.err = err
		s.ctx = nil
		return
	}
	s.log.Info("floor generated", "seed", ctx.Seed, "rooms", len(ctx.Rooms), "teams", len(ctx.Teams), "items", len(ctx.Items))
	s.err = nil
	s.ctx = ctx
}

// lastStep names the last step that completed for the current seed
func (s *FloorScreen) lastStep() string {
	if len(s.applied) == 0 {
		return "none"
	}
	return s.applied[len(s.applied)-1]
}

func (s *FloorScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.regenerate(s.seed + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.regenerate(s.seed - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.regenerate(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) && s.ctx != nil {
		s.stack.Push(NewLegendScreen(s.ctx))
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.camY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.camY++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		s.camX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		s.camX++
	}
	s.clampCamera()
	return nil
}

// clampCamera keeps the viewport inside the floor
func (s *FloorScreen) clampCamera() {
	if s.ctx == nil {
		return
	}
	maxX := max(0, s.ctx.Map.Width-config.ScreenWidth)
	maxY := max(0, s.ctx.Map.Height-config.ScreenHeight)
	s.camX = min(max(s.camX, 0), maxX)
	s.camY = min(max(s.camY, 0), maxY)
}

func (s *FloorScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	if s.ctx == nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("seed %d failed after %s: %v\n[N]ext [P]rev [R]andom", s.seed, s.lastStep(), s.err))
		return
	}

	ts := float32(config.TileSize)
	for y := 0; y < config.ScreenHeight; y++ {
		for x := 0; x < config.ScreenWidth; x++ {
			loc := components.Loc{X: x + s.camX, Y: y + s.camY}
			tile := s.ctx.Map.Tile(loc)
			if tile == nil {
				continue
			}
			px, py := float32(x)*ts, float32(y)*ts
			vector.DrawFilledRect(screen, px, py, ts, ts, terrainColors[tile.Terrain], false)
			if tile.Effect != nil {
				vector.DrawFilledRect(screen, px+ts/4, py+ts/4, ts/2, ts/2, effectColor, false)
			}
		}
	}

	for loc, glyph := range s.ctx.EntityGlyphs() {
		x, y := loc.X-s.camX, loc.Y-s.camY
		if x < 0 || y < 0 || x >= config.ScreenWidth || y >= config.ScreenHeight {
			continue
		}
		cx, cy := float32(x)*ts+ts/2, float32(y)*ts+ts/2
		vector.DrawFilledCircle(screen, cx, cy, ts/3, glyphColor(glyph), true)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("seed %d  steps %d  rooms %d  teams %d  items %d\n[N]ext [P]rev [R]andom [H]elp [F]ullscreen",
		s.seed, len(s.applied), len(s.ctx.Rooms), len(s.ctx.Teams), len(s.ctx.Items)))
}

func glyphColor(glyph rune) color.RGBA {
	switch glyph {
	case 'B':
		return bossColor
	case 'M':
		return leaderColor
	case 'm':
		return mobColor
	}
	return itemColor
}

func (s *FloorScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetWindowSize()
}
