package generation

import (
	"errors"
	"fmt"

	"floorgen/components"
	"floorgen/data"
)

var ErrNoRooms = errors.New("floor has no rooms")

// StairsStep places the entrance in the first connected room and the exit in the last
type StairsStep struct {
	EntranceEffect int
	ExitEffect     int
}

func (s *StairsStep) Apply(ctx *MapContext) error {
	var connected []*RoomPlan
	for _, room := range ctx.Rooms {
		if !room.HasComponent(components.NoConnectTag) {
			connected = append(connected, room)
		}
	}
	if len(connected) == 0 {
		return ErrNoRooms
	}
	for _, id := range []int{s.EntranceEffect, s.ExitEffect} {
		desc, err := ctx.Data.TileDescriptor(id)
		if err != nil {
			return fmt.Errorf("stairs: %w", err)
		}
		if findBehavior[*data.StairsBehavior](desc) == nil {
			return &ConfigError{TileID: id, Reason: "stairs effect has no stairs behavior"}
		}
	}

	first := connected[0]
	entrance, ok := s.place(ctx, first, s.EntranceEffect)
	if !ok {
		return fmt.Errorf("no free cell for the entrance in room at %d,%d", first.Bounds.X, first.Bounds.Y)
	}
	ctx.Entrance = entrance
	ctx.HasEntrance = true

	last := connected[len(connected)-1]
	exit, ok := s.place(ctx, last, s.ExitEffect)
	if !ok {
		return fmt.Errorf("no free cell for the exit in room at %d,%d", last.Bounds.X, last.Bounds.Y)
	}
	ctx.Exits = append(ctx.Exits, exit)

	ctx.Log.Debug("stairs placed", "entrance", entrance, "exit", exit)
	return nil
}

func (s *StairsStep) place(ctx *MapContext, room *RoomPlan, effect int) (components.Loc, bool) {
	cells := ctx.FreeCells(room.Bounds)
	if len(cells) == 0 {
		return components.Loc{}, false
	}
	loc := pickLoc(ctx.RNG, cells)
	ctx.Map.SetEffect(loc, components.NewTileEffect(effect))
	return loc, true
}
