package generation

import (
	"io"
	"log/slog"

	"floorgen/components"
	"floorgen/data"
)

const (
	tileExit     = 1
	tileEntrance = 2
	tileLock     = 3
	tileCompass  = 4
	tileTrap     = 5
	tileBroken   = 6
)

func testCatalog() *data.Catalog {
	catalog := data.NewCatalog()
	catalog.AddTile(&data.TileDescriptor{ID: tileExit, Name: "Stairs Down", Glyph: '>',
		Behaviors: []data.InteractionBehavior{&data.StairsBehavior{Down: true}}})
	catalog.AddTile(&data.TileDescriptor{ID: tileEntrance, Name: "Stairs Up", Glyph: '<',
		Behaviors: []data.InteractionBehavior{&data.StairsBehavior{}}})
	catalog.AddTile(&data.TileDescriptor{ID: tileLock, Name: "Sealed Door", Glyph: '+',
		Behaviors: []data.InteractionBehavior{&data.LockBehavior{KeyItem: 12}}})
	catalog.AddTile(&data.TileDescriptor{ID: tileCompass, Name: "Compass", Glyph: '%',
		Behaviors: []data.InteractionBehavior{&data.CompassBehavior{Eligible: []int{tileExit, tileTrap}}}})
	catalog.AddTile(&data.TileDescriptor{ID: tileTrap, Name: "Trap", Glyph: '*',
		Behaviors: []data.InteractionBehavior{&data.TrapBehavior{Damage: 3}}})
	catalog.AddTile(&data.TileDescriptor{ID: tileBroken, Name: "Broken Compass", Glyph: '%'})

	catalog.AddItem(&data.ItemDescriptor{ID: 10, Name: "Apple", MaxStack: 3})
	catalog.AddItem(&data.ItemDescriptor{ID: 11, Name: "Stick", MaxStack: 10})
	catalog.AddItem(&data.ItemDescriptor{ID: 12, Name: "Key", MaxStack: 1})

	catalog.AddSpecies(&data.SpeciesDescriptor{ID: 1, Name: "Rat", Health: 8, Attack: 2, Defense: 1})
	catalog.AddSpecies(&data.SpeciesDescriptor{ID: 2, Name: "Bat", Health: 6, Attack: 3})
	catalog.AddSpecies(&data.SpeciesDescriptor{ID: 3, Name: "Ogre", Health: 30, Attack: 6, Defense: 4})
	return catalog
}

func solidFragment(name string, width, height int, terrain components.Terrain) *data.Fragment {
	frag := &data.Fragment{Name: name, Width: width, Height: height, Tiles: make([][]components.Tile, height)}
	for y := range frag.Tiles {
		frag.Tiles[y] = make([]components.Tile, width)
		for x := range frag.Tiles[y] {
			frag.Tiles[y][x] = components.Tile{Terrain: terrain}
		}
	}
	return frag
}

func testFragments() data.FragmentMap {
	return data.FragmentMap{
		"pond":     solidFragment("pond", 3, 3, components.TerrainWater),
		"lava_pit": solidFragment("lava_pit", 4, 2, components.TerrainLava),
	}
}

// testContext returns a wall-filled context with a silent logger
func testContext(seed int64, width, height int) *MapContext {
	ctx := NewMapContext(seed, width, height, testCatalog(), testFragments())
	ctx.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctx
}

// addRoom carves rect as room floor and registers it with the given connectivity
func addRoom(ctx *MapContext, rect components.Rect, flags components.Connectivity) *RoomPlan {
	ctx.Map.Fill(rect, ctx.RoomTerrain)
	room := NewRoomPlan(rect)
	if flags != components.ConnectivityNone {
		room.SetConnectivity(flags)
	}
	ctx.Rooms = append(ctx.Rooms, room)
	return room
}
