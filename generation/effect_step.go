package generation

import (
	"fmt"

	"floorgen/components"
	"floorgen/spawners"
)

// EffectPlacementStep scatters Effect tiles on free cells of filtered rooms
type EffectPlacementStep struct {
	Effect int
	Amount spawners.RandRange
	Filter RoomFilter
}

func (s *EffectPlacementStep) Apply(ctx *MapContext) error {
	if _, err := ctx.Data.TileDescriptor(s.Effect); err != nil {
		return fmt.Errorf("effect placement: %w", err)
	}
	rooms := FilterRooms(ctx.Rooms, s.Filter)
	if len(rooms) == 0 {
		return nil
	}

	amount := s.Amount.Pick(ctx.RNG)
	placed := 0
	for i := 0; i < amount; i++ {
		room := rooms[ctx.RNG.Intn(len(rooms))]
		cells := ctx.FreeCells(room.Bounds)
		if len(cells) == 0 {
			continue
		}
		ctx.Map.SetEffect(pickLoc(ctx.RNG, cells), components.NewTileEffect(s.Effect))
		placed++
	}
	ctx.Log.Debug("effects placed", "effect", s.Effect, "wanted", amount, "placed", placed)
	return nil
}
