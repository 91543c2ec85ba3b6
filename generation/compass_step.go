package generation

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"floorgen/components"
	"floorgen/data"
)

// CompassStep points every compass tile at the eligible effect tiles and the exits
type CompassStep struct {
	CompassEffect int
}

func (s *CompassStep) Apply(ctx *MapContext) error {
	var compasses []components.Loc
	ctx.Map.ForEach(func(loc components.Loc, tile *components.Tile) {
		if tile.HasEffect(s.CompassEffect) {
			compasses = append(compasses, loc)
		}
	})
	if len(compasses) == 0 {
		return nil
	}

	desc, err := ctx.Data.TileDescriptor(s.CompassEffect)
	if err != nil {
		return fmt.Errorf("compass at %d,%d: %w", compasses[0].X, compasses[0].Y, err)
	}
	behavior := findBehavior[*data.CompassBehavior](desc)
	if behavior == nil {
		return &ConfigError{TileID: s.CompassEffect, Loc: compasses[0], Reason: "compass tile has no compass behavior"}
	}

	dests := compassDestinations(ctx, behavior)
	for _, loc := range compasses {
		ctx.Map.Tile(loc).Effect.SetState(&components.DestinationState{Locs: slices.Clone(dests)})
	}
	ctx.Log.Debug("compasses pointed", "count", len(compasses), "destinations", len(dests))
	return nil
}

// compassDestinations collects eligible effect tiles in row-major order, then
// any exits not already listed
func compassDestinations(ctx *MapContext, behavior *data.CompassBehavior) []components.Loc {
	eligible := mapset.New[int]()
	for _, id := range behavior.Eligible {
		eligible.Put(id)
	}

	seen := mapset.New[components.Loc]()
	dests := []components.Loc{}
	add := func(loc components.Loc) {
		if seen.Has(loc) {
			return
		}
		seen.Put(loc)
		dests = append(dests, loc)
	}

	ctx.Map.ForEach(func(loc components.Loc, tile *components.Tile) {
		if tile.Effect != nil && eligible.Has(tile.Effect.ID) {
			add(loc)
		}
	})
	for _, exit := range ctx.Exits {
		add(exit)
	}
	return dests
}
