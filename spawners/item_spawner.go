package spawners

import (
	"floorgen/components"
	"floorgen/ecs"
)

// ItemSpawn is an item template stored in spawn tables
type ItemSpawn struct {
	ItemID int
	Amount int
}

// Spawn creates a floor item at loc. The amount is clamped to [1, MaxStack].
func (s ItemSpawn) Spawn(env *SpawnEnv, loc components.Loc) (*ecs.Entity, error) {
	desc, err := env.Data.ItemDescriptor(s.ItemID)
	if err != nil {
		return nil, err
	}

	amount := s.Amount
	if amount < 1 {
		amount = 1
	}
	if desc.MaxStack > 0 && amount > desc.MaxStack {
		amount = desc.MaxStack
	}

	item := env.World.CreateEntity()
	env.World.TagEntity(item.ID, "item")
	env.World.AddComponent(item.ID, components.Position, &components.PositionComponent{X: loc.X, Y: loc.Y})
	env.World.AddComponent(item.ID, components.Item, &components.ItemComponent{ItemID: s.ItemID, Amount: amount})
	env.World.AddComponent(item.ID, components.Name, &components.NameComponent{Name: desc.Name})
	return item, nil
}
