package generation

import (
	"fmt"

	"floorgen/ecs"
	"floorgen/spawners"
)

// TeamSpawnStep spawns teams from the context's team spawners into filtered rooms.
// Members that find no free cell are removed from the world.
type TeamSpawnStep struct {
	Filter  RoomFilter
	PerRoom spawners.RandRange
}

func (s *TeamSpawnStep) Apply(ctx *MapContext) error {
	env := ctx.SpawnEnv()
	for _, room := range FilterRooms(ctx.Rooms, s.Filter) {
		count := s.PerRoom.Pick(ctx.RNG)
		if count <= 0 {
			continue
		}
		if ctx.TeamSpawners == nil || !ctx.TeamSpawners.CanPick() {
			return fmt.Errorf("team spawners: %w", spawners.ErrEmptySpawnSource)
		}
		for i := 0; i < count; i++ {
			spawner, err := ctx.TeamSpawners.Pick(ctx.RNG)
			if err != nil {
				return err
			}
			teams, err := spawner.SpawnTeams(env)
			if err != nil {
				return fmt.Errorf("room at %d,%d: %w", room.Bounds.X, room.Bounds.Y, err)
			}
			for _, team := range teams {
				if placeTeam(ctx, room, team) {
					ctx.Teams = append(ctx.Teams, team)
				}
			}
		}
	}
	ctx.Log.Debug("teams spawned", "teams", len(ctx.Teams))
	return nil
}

// placeTeam positions members on free cells of room, leader first, and drops
// the members that do not fit. It reports whether anyone was placed.
func placeTeam(ctx *MapContext, room *RoomPlan, team *spawners.Team) bool {
	cells := ctx.FreeCells(room.Bounds)
	placed := make([]*ecs.Entity, 0, len(team.Members))
	for _, member := range team.Members {
		if len(cells) == 0 {
			ctx.World.RemoveEntity(member.ID)
			continue
		}
		i := ctx.RNG.Intn(len(cells))
		ctx.PlaceEntity(member, cells[i])
		cells = append(cells[:i], cells[i+1:]...)
		placed = append(placed, member)
	}
	team.Members = placed
	return len(placed) > 0
}
