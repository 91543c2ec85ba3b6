package generation

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"floorgen/components"
	"floorgen/config"
	"floorgen/data"
)

func generate(t *testing.T, cfg *config.FloorConfig, seed int64) *MapContext {
	t.Helper()
	ctx, steps, err := NewFloorBuilder(cfg, testCatalog(), testFragments()).Build(seed)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	ctx.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := RunPipeline(steps, ctx); err != nil {
		t.Fatalf("seed %d: %v", seed, err)
	}
	return ctx
}

func TestDefaultFloorGenerates(t *testing.T) {
	cfg := config.DefaultFloorConfig()
	for seed := int64(1); seed <= 10; seed++ {
		ctx := generate(t, cfg, seed)

		if !ctx.HasEntrance || len(ctx.Exits) != 1 {
			t.Fatalf("seed %d: missing stairs", seed)
		}
		if ctx.Seed != seed {
			t.Fatalf("seed %d: context seed %d", seed, ctx.Seed)
		}
		for _, team := range ctx.Teams {
			if len(team.Members) == 0 {
				t.Fatalf("seed %d: empty team kept", seed)
			}
			for _, member := range team.Members {
				c, ok := ctx.World.GetComponent(member.ID, components.Position)
				if !ok || !ctx.IsRoomTerrain(c.(*components.PositionComponent).Loc()) {
					t.Fatalf("seed %d: member %d not on floor", seed, member.ID)
				}
			}
		}
		ctx.Map.ForEach(func(loc components.Loc, tile *components.Tile) {
			if !tile.HasEffect(tileCompass) {
				return
			}
			if _, ok := tile.Effect.State(components.DestinationStateTag); !ok {
				t.Fatalf("seed %d: compass at %v not pointed", seed, loc)
			}
		})
	}
}

func TestFloorGenerationIsDeterministic(t *testing.T) {
	cfg := config.DefaultFloorConfig()
	a := generate(t, cfg, 1234)
	b := generate(t, cfg, 1234)
	if a.RenderASCII() != b.RenderASCII() {
		t.Fatalf("same seed produced different floors")
	}
	if a.World.EntityCount() != b.World.EntityCount() {
		t.Fatalf("entity counts differ: %d vs %d", a.World.EntityCount(), b.World.EntityCount())
	}
}

func TestRenderASCIIShape(t *testing.T) {
	cfg := config.DefaultFloorConfig()
	ctx := generate(t, cfg, 99)
	rows := strings.Split(strings.TrimSuffix(ctx.RenderASCII(), "\n"), "\n")
	if len(rows) != cfg.Height {
		t.Fatalf("expected %d rows, got %d", cfg.Height, len(rows))
	}
	for i, row := range rows {
		if len([]rune(row)) != cfg.Width {
			t.Fatalf("row %d has %d runes", i, len([]rune(row)))
		}
	}
	if ctx.TileGlyph(ctx.Entrance) != '<' || ctx.TileGlyph(ctx.Exits[0]) != '>' {
		t.Fatalf("stairs glyphs wrong")
	}
}

func TestBuildRejectsBadConfig(t *testing.T) {
	cases := map[string]func(*config.FloorConfig){
		"filter":  func(c *config.FloorConfig) { c.Items.Filter = "Width +" },
		"feature": func(c *config.FloorConfig) { c.Teams.Spawners[1].Leader[0].Type = "wings" },
		"tag":     func(c *config.FloorConfig) { c.RoomTags[0].Tag = "shop" },
		"stencil": func(c *config.FloorConfig) { c.Patterns.Stencil = "diagonal" },
	}
	for name, mutate := range cases {
		cfg := config.DefaultFloorConfig()
		mutate(cfg)
		if _, _, err := NewFloorBuilder(cfg, testCatalog(), testFragments()).Build(1); err == nil {
			t.Fatalf("%s: expected build error", name)
		}
	}
}

func TestGenerateReportsMissingDescriptors(t *testing.T) {
	cfg := config.DefaultFloorConfig()
	cfg.Stairs.ExitEffect = 77
	_, err := NewFloorBuilder(cfg, testCatalog(), testFragments()).Generate(3)
	if err == nil || !strings.Contains(err.Error(), "seed 3") {
		t.Fatalf("expected seeded stairs error, got %v", err)
	}
}

func TestShippedAssetsGenerate(t *testing.T) {
	cfg, err := config.LoadFloorConfig("../assets/floor.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	catalog, err := data.LoadCatalog("../assets")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	builder := NewFloorBuilder(cfg, catalog, data.DirFragmentSource{Dir: "../assets/fragments"})
	for seed := int64(1); seed <= 5; seed++ {
		ctx, steps, err := builder.Build(seed)
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		ctx.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
		if err := RunPipeline(steps, ctx); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if ctx.Fragments.Loads() > 2 {
			t.Fatalf("seed %d: fragments loaded %d times", seed, ctx.Fragments.Loads())
		}
	}
}
