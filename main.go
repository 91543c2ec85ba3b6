package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"floorgen/config"
	"floorgen/data"
	"floorgen/generation"
	"floorgen/screens"
)

func main() {
	configPath := flag.String("config", "", "floor config YAML (defaults when empty)")
	dataDir := flag.String("data", "assets", "directory holding tiles.yaml, items.yaml, species.yaml and fragments/")
	seed := flag.Int64("seed", 0, "generation seed, 0 for the config seed or a random one")
	retries := flag.Int("retries", 3, "extra attempts with the next seed when generation fails")
	verbose := flag.Bool("v", false, "log every generation step")
	view := flag.Bool("view", false, "open the floor previewer instead of printing the floor")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	builder, err := newBuilder(*configPath, *dataDir)
	if err != nil {
		logger.Error("setup failed", "error", err)
		os.Exit(1)
	}
	if *seed == 0 {
		*seed = builder.Config.Seed
	}

	if *view {
		if err := runViewer(builder, *seed, logger); err != nil {
			logger.Error("viewer failed", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, err := generate(builder, *seed, *retries, logger)
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
	fmt.Print(ctx.RenderASCII())
	logger.Info("floor generated",
		"seed", ctx.Seed,
		"rooms", len(ctx.Rooms),
		"teams", len(ctx.Teams),
		"items", len(ctx.Items),
		"entrance", ctx.Entrance,
		"exits", ctx.Exits,
	)
}

func newBuilder(configPath, dataDir string) (*generation.FloorBuilder, error) {
	cfg := config.DefaultFloorConfig()
	if configPath != "" {
		loaded, err := config.LoadFloorConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	catalog, err := data.LoadCatalog(dataDir)
	if err != nil {
		return nil, err
	}
	fragments := data.DirFragmentSource{Dir: filepath.Join(dataDir, "fragments")}
	return generation.NewFloorBuilder(cfg, catalog, fragments), nil
}

// generate runs the pipeline, moving to the next seed after each failure
func generate(builder *generation.FloorBuilder, seed int64, retries int, logger *slog.Logger) (*generation.MapContext, error) {
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		ctx, err := builder.Generate(seed)
		if err == nil {
			return ctx, nil
		}
		logger.Warn("attempt failed", "attempt", attempt, "error", err)
		lastErr = err
		if seed != 0 {
			seed++
		}
	}
	return nil, lastErr
}

func runViewer(builder *generation.FloorBuilder, seed int64, logger *slog.Logger) error {
	stack := screens.NewScreenStack()
	stack.Push(screens.NewFloorScreen(builder, stack, seed, logger))

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Floor Previewer")
	return ebiten.RunGame(stack)
}
