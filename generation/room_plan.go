package generation

import (
	"sort"

	"floorgen/components"
)

// RoomPlan is a planned room: its bounds plus at most one component per tag
type RoomPlan struct {
	Bounds     components.Rect
	components map[components.RoomTag]components.RoomComponent
}

func NewRoomPlan(bounds components.Rect) *RoomPlan {
	return &RoomPlan{
		Bounds:     bounds,
		components: make(map[components.RoomTag]components.RoomComponent),
	}
}

// SetComponent stores c, replacing any component with the same tag
func (r *RoomPlan) SetComponent(c components.RoomComponent) {
	r.components[c.RoomTag()] = c
}

func (r *RoomPlan) Component(tag components.RoomTag) (components.RoomComponent, bool) {
	c, ok := r.components[tag]
	return c, ok
}

func (r *RoomPlan) HasComponent(tag components.RoomTag) bool {
	_, ok := r.components[tag]
	return ok
}

// Tags returns the room's component tags in sorted order
func (r *RoomPlan) Tags() []components.RoomTag {
	tags := make([]components.RoomTag, 0, len(r.components))
	for tag := range r.components {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Connectivity returns the room's connectivity flags, or ConnectivityNone if unset
func (r *RoomPlan) Connectivity() components.Connectivity {
	if c, ok := TryGetComponent[components.ConnectivityComponent](r); ok {
		return c.Connectivity
	}
	return components.ConnectivityNone
}

// SetConnectivity replaces the room's connectivity flags
func (r *RoomPlan) SetConnectivity(flags components.Connectivity) {
	r.SetComponent(components.ConnectivityComponent{Connectivity: flags})
}

// TryGetComponent returns the room's component of type T.
// T must be a value type whose zero value reports its tag.
func TryGetComponent[T components.RoomComponent](r *RoomPlan) (T, bool) {
	var zero T
	c, ok := r.components[zero.RoomTag()]
	if !ok {
		return zero, false
	}
	typed, ok := c.(T)
	return typed, ok
}
