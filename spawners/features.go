package spawners

import (
	"fmt"

	"floorgen/components"
	"floorgen/ecs"
)

// SpawnFeature modifies a monster right after it is instantiated
type SpawnFeature interface {
	ApplyFeature(env *SpawnEnv, entity *ecs.Entity) error
	// Clone returns an independent copy of the feature
	Clone() SpawnFeature
}

// LevelFeature raises the monster's level and scales its stats with it
type LevelFeature struct {
	Bonus int
}

func (f LevelFeature) ApplyFeature(env *SpawnEnv, entity *ecs.Entity) error {
	stats, err := statsOf(env, entity)
	if err != nil {
		return err
	}
	stats.Level += f.Bonus
	stats.MaxHealth += f.Bonus * healthPerLevel
	stats.Health = stats.MaxHealth
	return nil
}

func (f LevelFeature) Clone() SpawnFeature { return f }

// StatBoostFeature adds flat stat bonuses
type StatBoostFeature struct {
	Health, Attack, Defense int
}

func (f StatBoostFeature) ApplyFeature(env *SpawnEnv, entity *ecs.Entity) error {
	stats, err := statsOf(env, entity)
	if err != nil {
		return err
	}
	stats.MaxHealth += f.Health
	stats.Health = stats.MaxHealth
	stats.Attack += f.Attack
	stats.Defense += f.Defense
	return nil
}

func (f StatBoostFeature) Clone() SpawnFeature { return f }

// HeldItemFeature gives the monster an item to carry
type HeldItemFeature struct {
	ItemID int
}

func (f HeldItemFeature) ApplyFeature(env *SpawnEnv, entity *ecs.Entity) error {
	if _, err := env.Data.ItemDescriptor(f.ItemID); err != nil {
		return fmt.Errorf("held item: %w", err)
	}
	env.World.AddComponent(entity.ID, components.HeldItem, &components.HeldItemComponent{ItemID: f.ItemID})
	return nil
}

func (f HeldItemFeature) Clone() SpawnFeature { return f }

// BossFeature marks the monster as a boss
type BossFeature struct{}

func (f BossFeature) ApplyFeature(env *SpawnEnv, entity *ecs.Entity) error {
	env.World.AddComponent(entity.ID, components.Boss, &components.BossComponent{})
	env.World.TagEntity(entity.ID, "boss")
	return nil
}

func (f BossFeature) Clone() SpawnFeature { return f }

func statsOf(env *SpawnEnv, entity *ecs.Entity) (*components.StatsComponent, error) {
	comp, ok := env.World.GetComponent(entity.ID, components.Stats)
	if !ok {
		return nil, fmt.Errorf("entity %d has no stats", entity.ID)
	}
	return comp.(*components.StatsComponent), nil
}
