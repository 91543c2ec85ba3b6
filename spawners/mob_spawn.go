package spawners

import (
	"fmt"

	"floorgen/components"
	"floorgen/ecs"
)

const healthPerLevel = 2

// MobSpawn is a monster template stored in spawn tables
type MobSpawn struct {
	Species  int
	Form     int
	Level    int
	Features []SpawnFeature
}

// Copy returns a deep copy, so a variant can gain features without touching the table entry
func (m *MobSpawn) Copy() *MobSpawn {
	c := &MobSpawn{
		Species: m.Species,
		Form:    m.Form,
		Level:   m.Level,
	}
	if m.Features != nil {
		c.Features = make([]SpawnFeature, len(m.Features))
		for i, f := range m.Features {
			c.Features[i] = f.Clone()
		}
	}
	return c
}

// Spawn instantiates the monster in env.World and applies its features in order.
// On failure the half-built entity is removed.
func (m *MobSpawn) Spawn(env *SpawnEnv) (*ecs.Entity, error) {
	species, err := env.Data.SpeciesDescriptor(m.Species)
	if err != nil {
		return nil, err
	}

	entity := env.World.CreateEntity()
	env.World.TagEntity(entity.ID, "monster")

	env.World.AddComponent(entity.ID, components.Species, &components.SpeciesComponent{
		Species: m.Species,
		Form:    m.Form,
	})
	maxHealth := species.Health + m.Level*healthPerLevel
	env.World.AddComponent(entity.ID, components.Stats, &components.StatsComponent{
		Level:     m.Level,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Attack:    species.Attack,
		Defense:   species.Defense,
	})
	env.World.AddComponent(entity.ID, components.Name, &components.NameComponent{Name: species.Name})

	for _, feature := range m.Features {
		if err := feature.ApplyFeature(env, entity); err != nil {
			env.World.RemoveEntity(entity.ID)
			return nil, fmt.Errorf("species %d: %w", m.Species, err)
		}
	}
	return entity, nil
}
