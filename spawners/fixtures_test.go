package spawners

import (
	"math/rand"

	"floorgen/data"
	"floorgen/ecs"
)

func testEnv(seed int64) *SpawnEnv {
	catalog := data.NewCatalog()
	catalog.AddSpecies(&data.SpeciesDescriptor{ID: 1, Name: "Rat", Health: 8, Attack: 2, Defense: 1})
	catalog.AddSpecies(&data.SpeciesDescriptor{ID: 2, Name: "Bat", Health: 6, Attack: 3})
	catalog.AddSpecies(&data.SpeciesDescriptor{ID: 3, Name: "Ogre", Health: 30, Attack: 6, Defense: 4})
	catalog.AddItem(&data.ItemDescriptor{ID: 10, Name: "Apple", MaxStack: 3})
	return &SpawnEnv{
		World: ecs.NewWorld(),
		Data:  catalog,
		RNG:   rand.New(rand.NewSource(seed)),
	}
}
