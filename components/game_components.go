package components

// PositionComponent stores entity position
type PositionComponent struct {
	X, Y int
}

// Loc returns the position as a grid location
func (p *PositionComponent) Loc() Loc {
	return Loc{X: p.X, Y: p.Y}
}

// SpeciesComponent records what a monster was instantiated from
type SpeciesComponent struct {
	Species int
	Form    int
}

// StatsComponent stores entity stats
type StatsComponent struct {
	Level     int
	Health    int
	MaxHealth int
	Attack    int
	Defense   int
}

// NameComponent stores the entity display name
type NameComponent struct {
	Name string
}

// ItemComponent marks a floor item
type ItemComponent struct {
	ItemID int
	Amount int
}

// HeldItemComponent is an item carried by a monster
type HeldItemComponent struct {
	ItemID int
}

// TeamMemberComponent links a monster to its team
type TeamMemberComponent struct {
	Leader   bool
	Explorer bool
}

// BossComponent marks a boss monster
type BossComponent struct{}
