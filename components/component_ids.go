package components

import (
	"floorgen/ecs"
)

// Component IDs for spawned entities
const (
	Position ecs.ComponentID = iota
	Species
	Stats
	Name
	Item
	HeldItem
	TeamMember
	Boss
)
