package generation

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"floorgen/components"
)

var ErrNoEntrance = errors.New("connectivity needs an entrance")

// ConnectivityStep flood-fills room floor from the entrance and marks every
// room Main when reached and Disconnected otherwise. Other flags are kept.
type ConnectivityStep struct{}

func (s *ConnectivityStep) Apply(ctx *MapContext) error {
	if !ctx.HasEntrance {
		return ErrNoEntrance
	}
	reached := floodFill(ctx, ctx.Entrance)

	mainCount := 0
	for _, room := range ctx.Rooms {
		flags := room.Connectivity() &^ (components.ConnectivityMain | components.ConnectivityDisconnected)
		if roomReached(room, reached) {
			flags |= components.ConnectivityMain
			mainCount++
		} else {
			flags |= components.ConnectivityDisconnected
		}
		room.SetConnectivity(flags)
	}
	ctx.Log.Debug("connectivity computed", "main", mainCount, "rooms", len(ctx.Rooms))
	return nil
}

// floodFill returns every room-floor cell 4-connected to start
func floodFill(ctx *MapContext, start components.Loc) mapset.Set[components.Loc] {
	reached := mapset.New[components.Loc]()
	if !ctx.IsRoomTerrain(start) {
		return reached
	}
	reached.Put(start)
	queue := []components.Loc{start}
	for len(queue) > 0 {
		loc := queue[0]
		queue = queue[1:]
		for _, dir := range Directions {
			next := dir.Step(loc, 1)
			if reached.Has(next) || !ctx.IsRoomTerrain(next) {
				continue
			}
			reached.Put(next)
			queue = append(queue, next)
		}
	}
	return reached
}

func roomReached(room *RoomPlan, reached mapset.Set[components.Loc]) bool {
	for _, loc := range room.Bounds.Locs() {
		if reached.Has(loc) {
			return true
		}
	}
	return false
}
