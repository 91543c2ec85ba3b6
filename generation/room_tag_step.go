package generation

import (
	"fmt"

	"floorgen/components"
)

// RoomTagStep attaches Component to rooms passing Filter.
// Chance is a percent roll per room; 0 tags every passing room.
type RoomTagStep struct {
	Filter    RoomFilter
	Component components.RoomComponent
	Chance    int
}

func (s *RoomTagStep) Apply(ctx *MapContext) error {
	tagged := 0
	for _, room := range FilterRooms(ctx.Rooms, s.Filter) {
		if s.Chance > 0 && ctx.RNG.Intn(100) >= s.Chance {
			continue
		}
		room.SetComponent(s.Component)
		tagged++
	}
	ctx.Log.Debug("rooms tagged", "tag", s.Component.RoomTag(), "count", tagged)
	return nil
}

// RoomComponentByName maps config tag names to room components
func RoomComponentByName(name string) (components.RoomComponent, error) {
	switch components.RoomTag(name) {
	case components.BossRoomTag:
		return components.BossRoomComponent{}, nil
	case components.NoConnectTag:
		return components.NoConnectComponent{}, nil
	case components.NoEventTag:
		return components.NoEventComponent{}, nil
	}
	return nil, fmt.Errorf("unknown room tag %q", name)
}
