package generation

import "floorgen/components"

// Direction is one of the four cardinal directions
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions in casting order
var Directions = []Direction{North, East, South, West}

// Delta returns the unit step for the direction
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// Step moves loc n cells along the direction
func (d Direction) Step(loc components.Loc, n int) components.Loc {
	dx, dy := d.Delta()
	return loc.Add(dx*n, dy*n)
}

// Perpendicular returns the two directions at right angles to d
func (d Direction) Perpendicular() (Direction, Direction) {
	if d == North || d == South {
		return East, West
	}
	return North, South
}

// CellTest classifies a map cell; it is only called for in-bounds cells
type CellTest func(loc components.Loc) bool

// Ray is the result of walking from Origin until the floor ends.
// Boundary is the first non-floor cell, and HitWall reports whether it is an in-bounds wall.
type Ray struct {
	Origin   components.Loc
	Dir      Direction
	Boundary components.Loc
	Length   int
	HitWall  bool
}

// CastRay walks from origin along dir across floor cells
func CastRay(m *components.Map, origin components.Loc, dir Direction, isFloor, isWall CellTest) Ray {
	loc := dir.Step(origin, 1)
	length := 0
	for m.InBounds(loc) && isFloor(loc) {
		loc = dir.Step(loc, 1)
		length++
	}
	return Ray{
		Origin:   origin,
		Dir:      dir,
		Boundary: loc,
		Length:   length,
		HitWall:  m.InBounds(loc) && isWall(loc),
	}
}

// CastRays casts one ray per cardinal direction
func CastRays(m *components.Map, origin components.Loc, isFloor, isWall CellTest) []Ray {
	rays := make([]Ray, 0, len(Directions))
	for _, dir := range Directions {
		rays = append(rays, CastRay(m, origin, dir, isFloor, isWall))
	}
	return rays
}

// TerrainTest returns a CellTest matching terrain t
func TerrainTest(m *components.Map, t components.Terrain) CellTest {
	return func(loc components.Loc) bool {
		return m.IsTerrain(loc, t)
	}
}
