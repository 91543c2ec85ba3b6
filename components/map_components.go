package components

// Terrain identifies the ground type of a tile. Values are stable IDs shared with
// fragment files and tile descriptors.
type Terrain int

// Terrain types
const (
	TerrainFloor Terrain = iota
	TerrainWall
	TerrainWater
	TerrainLava
	TerrainGrass
	TerrainTree
	TerrainChasm
)

var terrainGlyphs = map[Terrain]rune{
	TerrainFloor: '.',
	TerrainWall:  '#',
	TerrainWater: '~',
	TerrainLava:  '^',
	TerrainGrass: '"',
	TerrainTree:  'T',
	TerrainChasm: ' ',
}

var terrainNames = map[Terrain]string{
	TerrainFloor: "floor",
	TerrainWall:  "wall",
	TerrainWater: "water",
	TerrainLava:  "lava",
	TerrainGrass: "grass",
	TerrainTree:  "tree",
	TerrainChasm: "chasm",
}

func (t Terrain) String() string {
	if n, ok := terrainNames[t]; ok {
		return n
	}
	return "unknown"
}

// Glyph returns the ASCII character used when dumping a map
func (t Terrain) Glyph() rune {
	if g, ok := terrainGlyphs[t]; ok {
		return g
	}
	return '?'
}

// TerrainFromGlyph is the inverse of Glyph, used by fragment files
func TerrainFromGlyph(r rune) (Terrain, bool) {
	for t, g := range terrainGlyphs {
		if g == r {
			return t, true
		}
	}
	return 0, false
}

// Loc is a grid coordinate
type Loc struct {
	X, Y int
}

// Add offsets a location
func (l Loc) Add(dx, dy int) Loc {
	return Loc{X: l.X + dx, Y: l.Y + dy}
}

// Rect is an axis-aligned region of the grid
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether loc lies inside the rectangle
func (r Rect) Contains(loc Loc) bool {
	return loc.X >= r.X && loc.X < r.X+r.Width && loc.Y >= r.Y && loc.Y < r.Y+r.Height
}

// Center returns the middle cell of the rectangle
func (r Rect) Center() Loc {
	return Loc{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Area returns Width*Height
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Locs returns every cell of the rectangle in row-major order
func (r Rect) Locs() []Loc {
	locs := make([]Loc, 0, r.Area())
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			locs = append(locs, Loc{X: x, Y: y})
		}
	}
	return locs
}

// StateTag identifies the kind of state stored on a tile effect
type StateTag int

const (
	// DestinationStateTag holds the locations a compass points at
	DestinationStateTag StateTag = iota
	// LockedTilesStateTag holds the tiles a lock opens up
	LockedTilesStateTag
)

// TileState is a piece of runtime state attached to a tile effect
type TileState interface {
	StateTag() StateTag
}

// DestinationState lists the points of interest a compass tile orients towards
type DestinationState struct {
	Locs []Loc
}

func (*DestinationState) StateTag() StateTag { return DestinationStateTag }

// LockedTilesState lists the tiles unlocked together with a lock tile.
// Detours create it empty; it is filled in at runtime.
type LockedTilesState struct {
	Locs []Loc
}

func (*LockedTilesState) StateTag() StateTag { return LockedTilesStateTag }

// TileEffect is an interactive attachment on a tile (stairs, locks, compasses, traps).
// ID is a tile descriptor ID resolved through the data source.
type TileEffect struct {
	ID     int
	States map[StateTag]TileState
}

// NewTileEffect creates an effect with no state
func NewTileEffect(id int) *TileEffect {
	return &TileEffect{
		ID:     id,
		States: make(map[StateTag]TileState),
	}
}

// SetState stores a state, replacing any state with the same tag
func (e *TileEffect) SetState(state TileState) {
	e.States[state.StateTag()] = state
}

// State returns the state stored under tag
func (e *TileEffect) State(tag StateTag) (TileState, bool) {
	state, ok := e.States[tag]
	return state, ok
}

// Clone copies the effect and its state map. State values are shared.
func (e *TileEffect) Clone() *TileEffect {
	if e == nil {
		return nil
	}
	clone := NewTileEffect(e.ID)
	for tag, state := range e.States {
		clone.States[tag] = state
	}
	return clone
}

// Tile is a single grid cell
type Tile struct {
	Terrain Terrain
	Effect  *TileEffect
}

// HasEffect reports whether the tile carries an effect with the given ID
func (t Tile) HasEffect(id int) bool {
	return t.Effect != nil && t.Effect.ID == id
}

// Map stores the floor's tile grid
type Map struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewMap creates a new map with the given dimensions, filled with walls
func NewMap(width, height int) *Map {
	m := &Map{
		Width:  width,
		Height: height,
		Tiles:  make([][]Tile, height),
	}
	for y := 0; y < height; y++ {
		m.Tiles[y] = make([]Tile, width)
		for x := 0; x < width; x++ {
			m.Tiles[y][x] = Tile{Terrain: TerrainWall}
		}
	}
	return m
}

// InBounds reports whether loc is inside the map
func (m *Map) InBounds(loc Loc) bool {
	return loc.X >= 0 && loc.X < m.Width && loc.Y >= 0 && loc.Y < m.Height
}

// Bounds returns the map rectangle
func (m *Map) Bounds() Rect {
	return Rect{Width: m.Width, Height: m.Height}
}

// Tile returns a pointer to the tile at loc, or nil when out of bounds
func (m *Map) Tile(loc Loc) *Tile {
	if !m.InBounds(loc) {
		return nil
	}
	return &m.Tiles[loc.Y][loc.X]
}

// TerrainAt returns the terrain at loc; ok is false when out of bounds
func (m *Map) TerrainAt(loc Loc) (Terrain, bool) {
	if !m.InBounds(loc) {
		return 0, false
	}
	return m.Tiles[loc.Y][loc.X].Terrain, true
}

// IsTerrain reports whether loc is in bounds and has terrain t
func (m *Map) IsTerrain(loc Loc, t Terrain) bool {
	terrain, ok := m.TerrainAt(loc)
	return ok && terrain == t
}

// SetTerrain sets the terrain at loc; out-of-bounds writes are ignored
func (m *Map) SetTerrain(loc Loc, t Terrain) {
	if m.InBounds(loc) {
		m.Tiles[loc.Y][loc.X].Terrain = t
	}
}

// SetEffect attaches an effect at loc; out-of-bounds writes are ignored
func (m *Map) SetEffect(loc Loc, effect *TileEffect) {
	if m.InBounds(loc) {
		m.Tiles[loc.Y][loc.X].Effect = effect
	}
}

// Fill sets the terrain of every in-bounds cell of rect
func (m *Map) Fill(rect Rect, t Terrain) {
	for _, loc := range rect.Locs() {
		m.SetTerrain(loc, t)
	}
}

// ForEach visits every tile in row-major order
func (m *Map) ForEach(fn func(loc Loc, tile *Tile)) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			fn(Loc{X: x, Y: y}, &m.Tiles[y][x])
		}
	}
}

// Count returns the number of cells with terrain t
func (m *Map) Count(t Terrain) int {
	n := 0
	m.ForEach(func(_ Loc, tile *Tile) {
		if tile.Terrain == t {
			n++
		}
	})
	return n
}
