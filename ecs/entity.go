package ecs

// EntityID is a unique identifier for an entity within one World
type EntityID uint64

// Entity represents a spawned object (monster, item) in the generated floor
type Entity struct {
	ID EntityID
	// Tags can be used for quick identification (e.g., "monster", "item", "leader")
	Tags map[string]bool
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}

// AddTag adds a tag to the entity
func (e *Entity) AddTag(tag string) {
	e.Tags[tag] = true
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}

// RemoveTag removes a tag from the entity
func (e *Entity) RemoveTag(tag string) {
	delete(e.Tags, tag)
}
