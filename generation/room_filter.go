package generation

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"floorgen/components"
)

// RoomFilter decides whether a step may act on a room
type RoomFilter interface {
	PassesFilter(room *RoomPlan) bool
}

// ConnectivityFilter passes rooms sharing at least one flag with Wanted.
// Rooms without a connectivity component never pass.
type ConnectivityFilter struct {
	Wanted components.Connectivity
}

func (f ConnectivityFilter) PassesFilter(room *RoomPlan) bool {
	c, ok := TryGetComponent[components.ConnectivityComponent](room)
	if !ok {
		return false
	}
	return c.Connectivity&f.Wanted != 0
}

// ComponentFilter passes rooms carrying Tag, or lacking it when Negate is set
type ComponentFilter struct {
	Tag    components.RoomTag
	Negate bool
}

func (f ComponentFilter) PassesFilter(room *RoomPlan) bool {
	return room.HasComponent(f.Tag) != f.Negate
}

// AllFilter passes rooms that pass every member
type AllFilter []RoomFilter

func (f AllFilter) PassesFilter(room *RoomPlan) bool {
	for _, inner := range f {
		if !inner.PassesFilter(room) {
			return false
		}
	}
	return true
}

// AnyFilter passes rooms that pass at least one member
type AnyFilter []RoomFilter

func (f AnyFilter) PassesFilter(room *RoomPlan) bool {
	for _, inner := range f {
		if inner.PassesFilter(room) {
			return true
		}
	}
	return false
}

// RoomEnv is the environment room filter expressions are evaluated against
type RoomEnv struct {
	Width  int
	Height int
	Area   int

	room *RoomPlan
}

// Has reports whether the room's connectivity shares a flag with the named flags,
// e.g. Has("Main|KeyVault")
func (e RoomEnv) Has(flags string) bool {
	wanted, ok := components.ParseConnectivity(flags)
	if !ok || e.room == nil {
		return false
	}
	return ConnectivityFilter{Wanted: wanted}.PassesFilter(e.room)
}

// Is reports whether the room carries the component tag
func (e RoomEnv) Is(tag string) bool {
	return e.room != nil && e.room.HasComponent(components.RoomTag(tag))
}

func newRoomEnv(room *RoomPlan) RoomEnv {
	return RoomEnv{
		Width:  room.Bounds.Width,
		Height: room.Bounds.Height,
		Area:   room.Bounds.Area(),
		room:   room,
	}
}

// ExprFilter is a RoomFilter written as a boolean expression over RoomEnv
type ExprFilter struct {
	Source  string
	program *vm.Program
}

// NewExprFilter compiles src; it must evaluate to a bool
func NewExprFilter(src string) (*ExprFilter, error) {
	program, err := expr.Compile(src, expr.Env(RoomEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile room filter %q: %w", src, err)
	}
	return &ExprFilter{Source: src, program: program}, nil
}

func (f *ExprFilter) PassesFilter(room *RoomPlan) bool {
	out, err := expr.Run(f.program, newRoomEnv(room))
	if err != nil {
		return false
	}
	pass, _ := out.(bool)
	return pass
}

// FilterRooms returns the rooms passing filter, keeping their order.
// A nil filter passes every room.
func FilterRooms(rooms []*RoomPlan, filter RoomFilter) []*RoomPlan {
	var out []*RoomPlan
	for _, room := range rooms {
		if filter == nil || filter.PassesFilter(room) {
			out = append(out, room)
		}
	}
	return out
}
