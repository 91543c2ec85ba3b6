package generation

import (
	"log/slog"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"floorgen/components"
	"floorgen/data"
	"floorgen/ecs"
	"floorgen/spawners"
)

// MapContext is the shared state every generation step reads and mutates.
// It is created once per run and owned by that run; steps never copy it.
type MapContext struct {
	Map         *components.Map
	RNG         *rand.Rand
	Seed        int64
	RoomTerrain components.Terrain

	Rooms       []*RoomPlan
	Entrance    components.Loc
	HasEntrance bool
	Exits       []components.Loc

	// TeamSpawners holds the floor's weighted team templates
	TeamSpawners *spawners.SpawnTable[spawners.TeamSpawner]

	World *ecs.World
	Teams []*spawners.Team
	Items []*ecs.Entity

	Data      data.Source
	Fragments *data.FragmentCache
	Log       *slog.Logger

	occupied mapset.Set[components.Loc]
}

// NewMapContext creates a context with a wall-filled map and an RNG seeded with seed
func NewMapContext(seed int64, width, height int, source data.Source, fragments data.FragmentSource) *MapContext {
	return &MapContext{
		Map:          components.NewMap(width, height),
		RNG:          rand.New(rand.NewSource(seed)),
		Seed:         seed,
		RoomTerrain:  components.TerrainFloor,
		TeamSpawners: spawners.NewSpawnTable[spawners.TeamSpawner](),
		World:        ecs.NewWorld(),
		Data:         source,
		Fragments:    data.NewFragmentCache(fragments),
		Log:          slog.Default(),
		occupied:     mapset.New[components.Loc](),
	}
}

// SpawnEnv exposes the context's world, data and RNG to spawners
func (ctx *MapContext) SpawnEnv() *spawners.SpawnEnv {
	return &spawners.SpawnEnv{
		World: ctx.World,
		Data:  ctx.Data,
		RNG:   ctx.RNG,
	}
}

// IsRoomTerrain reports whether loc is in bounds and carved as room floor
func (ctx *MapContext) IsRoomTerrain(loc components.Loc) bool {
	return ctx.Map.IsTerrain(loc, ctx.RoomTerrain)
}

// IsOccupied reports whether an entity has been placed at loc
func (ctx *MapContext) IsOccupied(loc components.Loc) bool {
	return ctx.occupied.Has(loc)
}

// FreeCells returns the room-floor cells of rect that have no effect and no entity,
// in row-major order
func (ctx *MapContext) FreeCells(rect components.Rect) []components.Loc {
	var cells []components.Loc
	for _, loc := range rect.Locs() {
		tile := ctx.Map.Tile(loc)
		if tile == nil || tile.Terrain != ctx.RoomTerrain || tile.Effect != nil {
			continue
		}
		if ctx.occupied.Has(loc) {
			continue
		}
		cells = append(cells, loc)
	}
	return cells
}

// PlaceEntity positions an entity and marks its cell occupied
func (ctx *MapContext) PlaceEntity(entity *ecs.Entity, loc components.Loc) {
	ctx.World.AddComponent(entity.ID, components.Position, &components.PositionComponent{X: loc.X, Y: loc.Y})
	ctx.occupied.Put(loc)
}

// RoomAt returns the first room whose bounds contain loc
func (ctx *MapContext) RoomAt(loc components.Loc) *RoomPlan {
	for _, room := range ctx.Rooms {
		if room.Bounds.Contains(loc) {
			return room
		}
	}
	return nil
}

func pickLoc(rng *rand.Rand, locs []components.Loc) components.Loc {
	return locs[rng.Intn(len(locs))]
}
