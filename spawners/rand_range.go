package spawners

import "math/rand"

// RandRange is an integer range with an exclusive upper bound.
// A range whose Max is not above Min always yields Min.
type RandRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Fixed returns a range that always yields n
func Fixed(n int) RandRange {
	return RandRange{Min: n, Max: n}
}

// Pick draws a value from the range
func (r RandRange) Pick(rng *rand.Rand) int {
	if r.Max <= r.Min+1 {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min)
}
