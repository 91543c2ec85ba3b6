package generation

import (
	"fmt"

	"floorgen/spawners"
)

// ItemSpawnStep scatters loose items over free cells of filtered rooms
type ItemSpawnStep struct {
	Amount spawners.RandRange
	Filter RoomFilter
	Items  *spawners.SpawnTable[spawners.ItemSpawn]
}

func (s *ItemSpawnStep) Apply(ctx *MapContext) error {
	amount := s.Amount.Pick(ctx.RNG)
	if amount <= 0 {
		return nil
	}
	if s.Items == nil || !s.Items.CanPick() {
		return fmt.Errorf("floor items: %w", spawners.ErrEmptySpawnSource)
	}
	rooms := FilterRooms(ctx.Rooms, s.Filter)
	if len(rooms) == 0 {
		return nil
	}

	env := ctx.SpawnEnv()
	placed := 0
	for i := 0; i < amount; i++ {
		room := rooms[ctx.RNG.Intn(len(rooms))]
		cells := ctx.FreeCells(room.Bounds)
		if len(cells) == 0 {
			continue
		}
		loc := pickLoc(ctx.RNG, cells)
		spawn, err := s.Items.Pick(ctx.RNG)
		if err != nil {
			return err
		}
		item, err := spawn.Spawn(env, loc)
		if err != nil {
			return fmt.Errorf("floor item: %w", err)
		}
		ctx.PlaceEntity(item, loc)
		ctx.Items = append(ctx.Items, item)
		placed++
	}
	ctx.Log.Debug("items placed", "wanted", amount, "placed", placed)
	return nil
}
