package generation

import (
	"fmt"
	"time"

	"floorgen/config"
	"floorgen/data"
	"floorgen/spawners"
)

// FloorBuilder turns a floor config into a context and the ordered step list
type FloorBuilder struct {
	Config    *config.FloorConfig
	Data      data.Source
	Fragments data.FragmentSource
}

func NewFloorBuilder(cfg *config.FloorConfig, source data.Source, fragments data.FragmentSource) *FloorBuilder {
	return &FloorBuilder{Config: cfg, Data: source, Fragments: fragments}
}

// Build creates a fresh context for seed and the steps that generate the floor.
// A zero seed picks one from the clock.
func (b *FloorBuilder) Build(seed int64) (*MapContext, []Step, error) {
	cfg := b.Config
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx := NewMapContext(seed, cfg.Width, cfg.Height, b.Data, b.Fragments)
	for i, sc := range cfg.Teams.Spawners {
		spawner, err := buildTeamSpawner(sc)
		if err != nil {
			return nil, nil, fmt.Errorf("team spawner %d: %w", i, err)
		}
		if err := ctx.TeamSpawners.Add(spawner, sc.Weight); err != nil {
			return nil, nil, fmt.Errorf("team spawner %d: %w", i, err)
		}
	}

	steps, err := b.steps()
	if err != nil {
		return nil, nil, err
	}
	return ctx, steps, nil
}

func (b *FloorBuilder) steps() ([]Step, error) {
	cfg := b.Config
	steps := []Step{
		&RoomLayoutStep{
			MaxDepth:      cfg.Layout.MaxDepth,
			MinNodeSize:   cfg.Layout.MinNodeSize,
			IsolateChance: cfg.Layout.IsolateChance,
		},
		&StairsStep{EntranceEffect: cfg.Stairs.EntranceEffect, ExitEffect: cfg.Stairs.ExitEffect},
		&ConnectivityStep{},
	}

	for i, tc := range cfg.RoomTags {
		filter, err := compileFilter(tc.Filter)
		if err != nil {
			return nil, fmt.Errorf("room tag %d: %w", i, err)
		}
		comp, err := RoomComponentByName(tc.Tag)
		if err != nil {
			return nil, fmt.Errorf("room tag %d: %w", i, err)
		}
		steps = append(steps, &RoomTagStep{Filter: filter, Component: comp, Chance: tc.Chance})
	}

	stencil, err := StencilByName(cfg.Patterns.Stencil)
	if err != nil {
		return nil, err
	}
	patterns := spawners.NewSpawnTable[string]()
	for _, f := range cfg.Patterns.Fragments {
		if err := patterns.Add(f.Name, f.Weight); err != nil {
			return nil, fmt.Errorf("fragment %q: %w", f.Name, err)
		}
	}
	steps = append(steps, &BlobStep{Amount: randRange(cfg.Patterns.Amount), Patterns: patterns, Stencil: stencil})

	for i, ec := range cfg.Effects {
		filter, err := compileFilter(ec.Filter)
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		steps = append(steps, &EffectPlacementStep{Effect: ec.Effect, Amount: randRange(ec.Amount), Filter: filter})
	}

	if cfg.Detours.LockEffect != 0 {
		filter, err := compileFilter(cfg.Detours.Filter)
		if err != nil {
			return nil, fmt.Errorf("detours: %w", err)
		}
		items, err := itemTable(cfg.Detours.Items)
		if err != nil {
			return nil, fmt.Errorf("detours: %w", err)
		}
		steps = append(steps, &DetourStep{
			Amount:     randRange(cfg.Detours.Amount),
			Length:     cfg.Detours.Length,
			LockEffect: cfg.Detours.LockEffect,
			Filter:     filter,
			Items:      items,
		})
	}

	if cfg.Compass.Effect != 0 {
		steps = append(steps, &CompassStep{CompassEffect: cfg.Compass.Effect})
	}

	teamFilter, err := compileFilter(cfg.Teams.Filter)
	if err != nil {
		return nil, fmt.Errorf("teams: %w", err)
	}
	steps = append(steps, &TeamSpawnStep{Filter: teamFilter, PerRoom: randRange(cfg.Teams.PerRoom)})

	itemFilter, err := compileFilter(cfg.Items.Filter)
	if err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	items, err := itemTable(cfg.Items.Table)
	if err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	steps = append(steps, &ItemSpawnStep{Amount: randRange(cfg.Items.Amount), Filter: itemFilter, Items: items})

	return steps, nil
}

// compileFilter returns nil, which passes every room, for an empty expression
func compileFilter(src string) (RoomFilter, error) {
	if src == "" {
		return nil, nil
	}
	return NewExprFilter(src)
}

func randRange(r config.Range) spawners.RandRange {
	return spawners.RandRange{Min: r.Min, Max: r.Max}
}

func itemTable(entries []config.ItemEntry) (*spawners.SpawnTable[spawners.ItemSpawn], error) {
	table := spawners.NewSpawnTable[spawners.ItemSpawn]()
	for _, e := range entries {
		if err := table.Add(spawners.ItemSpawn{ItemID: e.ID, Amount: e.Amount}, e.Weight); err != nil {
			return nil, fmt.Errorf("item %d: %w", e.ID, err)
		}
	}
	return table, nil
}

func buildTeamSpawner(sc config.TeamSpawnerConfig) (spawners.TeamSpawner, error) {
	slots := make([]*spawners.SpawnTable[*spawners.MobSpawn], 0, len(sc.Slots))
	for i, slot := range sc.Slots {
		table, err := mobTable(slot)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		slots = append(slots, table)
	}

	switch sc.Kind {
	case "table":
		if len(slots) != 1 {
			return nil, fmt.Errorf("table teams take exactly one slot, got %d", len(slots))
		}
		return &spawners.TableTeamSpawner{Size: randRange(sc.Size), Table: slots[0], Explorer: sc.Explorer}, nil
	case "boss_band":
		leader, err := buildFeatures(sc.Leader)
		if err != nil {
			return nil, fmt.Errorf("leader: %w", err)
		}
		return &spawners.BossBandSpawner{
			Size:           randRange(sc.Size),
			Slots:          slots,
			LeaderFeatures: leader,
			Explorer:       sc.Explorer,
		}, nil
	}
	return nil, fmt.Errorf("unknown team spawner kind %q", sc.Kind)
}

func mobTable(entries []config.MobEntry) (*spawners.SpawnTable[*spawners.MobSpawn], error) {
	table := spawners.NewSpawnTable[*spawners.MobSpawn]()
	for _, e := range entries {
		features, err := buildFeatures(e.Features)
		if err != nil {
			return nil, fmt.Errorf("species %d: %w", e.Species, err)
		}
		mob := &spawners.MobSpawn{Species: e.Species, Form: e.Form, Level: e.Level, Features: features}
		if err := table.Add(mob, e.Weight); err != nil {
			return nil, fmt.Errorf("species %d: %w", e.Species, err)
		}
	}
	return table, nil
}

func buildFeatures(configs []config.FeatureConfig) ([]spawners.SpawnFeature, error) {
	var features []spawners.SpawnFeature
	for _, fc := range configs {
		switch fc.Type {
		case "level":
			features = append(features, spawners.LevelFeature{Bonus: fc.Value})
		case "stats":
			features = append(features, spawners.StatBoostFeature{Health: fc.Health, Attack: fc.Attack, Defense: fc.Defense})
		case "held_item":
			features = append(features, spawners.HeldItemFeature{ItemID: fc.Item})
		case "boss":
			features = append(features, spawners.BossFeature{})
		default:
			return nil, fmt.Errorf("unknown spawn feature %q", fc.Type)
		}
	}
	return features, nil
}

// Generate builds and runs a floor for seed
func (b *FloorBuilder) Generate(seed int64) (*MapContext, error) {
	ctx, steps, err := b.Build(seed)
	if err != nil {
		return nil, err
	}
	if err := RunPipeline(steps, ctx); err != nil {
		return nil, fmt.Errorf("seed %d: %w", ctx.Seed, err)
	}
	return ctx, nil
}
