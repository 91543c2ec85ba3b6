package generation

import (
	"fmt"

	"floorgen/components"
	"floorgen/data"
	"floorgen/spawners"
)

// DetourStep carves short dead-end alcoves off room walls, seals each with a
// locked door, and fills the alcove with items. Length counts the alcove cells
// behind the door and must be positive.
type DetourStep struct {
	Amount     spawners.RandRange
	Length     int
	LockEffect int
	Filter     RoomFilter
	Items      *spawners.SpawnTable[spawners.ItemSpawn]
}

func (s *DetourStep) Apply(ctx *MapContext) error {
	if s.Length < 1 {
		return fmt.Errorf("detour length %d: alcove needs at least one cell", s.Length)
	}
	desc, err := ctx.Data.TileDescriptor(s.LockEffect)
	if err != nil {
		return fmt.Errorf("detour lock: %w", err)
	}
	if findBehavior[*data.LockBehavior](desc) == nil {
		return &ConfigError{TileID: s.LockEffect, Reason: "lock effect has no lock behavior"}
	}

	// alcoves added below are rooms too; only the original rooms are candidates
	rooms := FilterRooms(ctx.Rooms, s.Filter)
	if len(rooms) == 0 {
		ctx.Log.Debug("no rooms for detours")
		return nil
	}

	amount := s.Amount.Pick(ctx.RNG)
	carved := 0
	for i := 0; i < amount; i++ {
		room := rooms[ctx.RNG.Intn(len(rooms))]
		ray, ok := s.chooseRay(ctx, room)
		if !ok {
			continue
		}
		if err := s.carve(ctx, ray); err != nil {
			return err
		}
		carved++
	}
	ctx.Log.Debug("detours carved", "wanted", amount, "carved", carved)
	return nil
}

// chooseRay picks a floor cell in room and a ray from it that ends at a carvable wall
func (s *DetourStep) chooseRay(ctx *MapContext, room *RoomPlan) (Ray, bool) {
	var floor []components.Loc
	for _, loc := range room.Bounds.Locs() {
		if ctx.IsRoomTerrain(loc) {
			floor = append(floor, loc)
		}
	}
	if len(floor) == 0 {
		return Ray{}, false
	}
	origin := pickLoc(ctx.RNG, floor)

	rays := CastRays(ctx.Map, origin, ctx.IsRoomTerrain, TerrainTest(ctx.Map, components.TerrainWall))
	var candidates []Ray
	for _, ray := range rays {
		if ray.HitWall && s.canCarve(ctx, ray) {
			candidates = append(candidates, ray)
		}
	}
	if len(candidates) == 0 {
		return Ray{}, false
	}
	return candidates[ctx.RNG.Intn(len(candidates))], true
}

// canCarve requires the door and the whole alcove to be solid wall away from
// the map edge, with wall on both sides and past the far end
func (s *DetourStep) canCarve(ctx *MapContext, ray Ray) bool {
	m := ctx.Map
	isWall := func(loc components.Loc) bool {
		if loc.X <= 0 || loc.Y <= 0 || loc.X >= m.Width-1 || loc.Y >= m.Height-1 {
			return false
		}
		tile := m.Tile(loc)
		return tile.Terrain == components.TerrainWall && tile.Effect == nil
	}
	left, right := ray.Dir.Perpendicular()
	for k := 0; k <= s.Length; k++ {
		loc := ray.Dir.Step(ray.Boundary, k)
		if !isWall(loc) || !isWall(left.Step(loc, 1)) || !isWall(right.Step(loc, 1)) {
			return false
		}
	}
	return isWall(ray.Dir.Step(ray.Boundary, s.Length+1))
}

func (s *DetourStep) carve(ctx *MapContext, ray Ray) error {
	door := ray.Boundary
	lock := components.NewTileEffect(s.LockEffect)
	lock.SetState(&components.LockedTilesState{})
	ctx.Map.SetTerrain(door, ctx.RoomTerrain)
	ctx.Map.SetEffect(door, lock)

	alcove := make([]components.Loc, 0, s.Length)
	for k := 1; k <= s.Length; k++ {
		loc := ray.Dir.Step(door, k)
		ctx.Map.SetTerrain(loc, ctx.RoomTerrain)
		alcove = append(alcove, loc)
	}

	plan := NewRoomPlan(spanRect(alcove[0], alcove[len(alcove)-1]))
	plan.SetConnectivity(components.ConnectivityKeyVault)
	plan.SetComponent(components.NoConnectComponent{})
	plan.SetComponent(components.NoEventComponent{})
	ctx.Rooms = append(ctx.Rooms, plan)

	if s.Items == nil || !s.Items.CanPick() {
		return nil
	}
	env := ctx.SpawnEnv()
	for _, loc := range alcove {
		spawn, err := s.Items.Pick(ctx.RNG)
		if err != nil {
			return err
		}
		item, err := spawn.Spawn(env, loc)
		if err != nil {
			return fmt.Errorf("detour item: %w", err)
		}
		ctx.PlaceEntity(item, loc)
		ctx.Items = append(ctx.Items, item)
	}
	return nil
}

// spanRect returns the smallest rect covering a and b
func spanRect(a, b components.Loc) components.Rect {
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	return components.Rect{X: x0, Y: y0, Width: x1 - x0 + 1, Height: y1 - y0 + 1}
}

// findBehavior returns the descriptor's first behavior of type T
func findBehavior[T data.InteractionBehavior](desc *data.TileDescriptor) T {
	var zero T
	for _, b := range desc.Behaviors {
		if typed, ok := b.(T); ok {
			return typed
		}
	}
	return zero
}
