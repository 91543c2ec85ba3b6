package spawners

import (
	"math/rand"

	"floorgen/data"
	"floorgen/ecs"
)

// SpawnEnv carries what spawners need to instantiate entities.
// RNG is the generation run's stream; spawners never create their own.
type SpawnEnv struct {
	World *ecs.World
	Data  data.Source
	RNG   *rand.Rand
}
