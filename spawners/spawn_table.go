package spawners

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrEmptySpawnSource is returned when something must be drawn from a source with no weight
var ErrEmptySpawnSource = errors.New("empty spawn source")

// SpawnEntry pairs a payload with its spawn weight
type SpawnEntry[T any] struct {
	Item   T
	Weight int
}

// SpawnTable is a weighted random-selection table. Entries keep insertion order;
// a roll selects the first entry whose cumulative weight exceeds it.
type SpawnTable[T any] struct {
	entries    []SpawnEntry[T]
	cumulative []int
	total      int
}

// NewSpawnTable creates an empty table
func NewSpawnTable[T any]() *SpawnTable[T] {
	return &SpawnTable[T]{}
}

// Add appends an entry. Negative weights are rejected.
func (t *SpawnTable[T]) Add(item T, weight int) error {
	if weight < 0 {
		return fmt.Errorf("negative spawn weight %d", weight)
	}
	t.entries = append(t.entries, SpawnEntry[T]{Item: item, Weight: weight})
	t.total += weight
	t.cumulative = append(t.cumulative, t.total)
	return nil
}

// Count returns the number of entries, including zero-weight ones
func (t *SpawnTable[T]) Count() int {
	return len(t.entries)
}

// TotalWeight returns the sum of all weights
func (t *SpawnTable[T]) TotalWeight() int {
	return t.total
}

// CanPick reports whether Pick would succeed
func (t *SpawnTable[T]) CanPick() bool {
	return t.total > 0
}

// Entries returns a copy of the entries in insertion order
func (t *SpawnTable[T]) Entries() []SpawnEntry[T] {
	out := make([]SpawnEntry[T], len(t.entries))
	copy(out, t.entries)
	return out
}

// IndexForRoll maps a roll in [0, TotalWeight) to an entry index, or -1 when out of range
func (t *SpawnTable[T]) IndexForRoll(roll int) int {
	if roll < 0 || roll >= t.total {
		return -1
	}
	for i, c := range t.cumulative {
		if roll < c {
			return i
		}
	}
	return -1
}

// PickIndex draws an entry index
func (t *SpawnTable[T]) PickIndex(rng *rand.Rand) (int, error) {
	if t.total <= 0 {
		return -1, ErrEmptySpawnSource
	}
	return t.IndexForRoll(rng.Intn(t.total)), nil
}

// Pick draws an entry payload
func (t *SpawnTable[T]) Pick(rng *rand.Rand) (T, error) {
	idx, err := t.PickIndex(rng)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.entries[idx].Item, nil
}

// MergeSpawnTables flattens several tables into one, keeping every entry's weight.
// Drawing from the merged table is not equivalent to drawing per table.
func MergeSpawnTables[T any](tables ...*SpawnTable[T]) *SpawnTable[T] {
	merged := NewSpawnTable[T]()
	for _, table := range tables {
		if table == nil {
			continue
		}
		for _, e := range table.entries {
			// weights were validated when added
			_ = merged.Add(e.Item, e.Weight)
		}
	}
	return merged
}
