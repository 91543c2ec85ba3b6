package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Range is an integer range with an exclusive upper bound
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloorConfig defines a complete floor: layout, decoration and population
type FloorConfig struct {
	Seed     int64           `yaml:"seed"` // 0 picks a random seed
	Width    int             `yaml:"width"`
	Height   int             `yaml:"height"`
	Layout   LayoutConfig    `yaml:"layout"`
	Stairs   StairsConfig    `yaml:"stairs"`
	RoomTags []RoomTagConfig `yaml:"room_tags"`
	Patterns PatternConfig   `yaml:"patterns"`
	Effects  []EffectConfig  `yaml:"effects"`
	Detours  DetourConfig    `yaml:"detours"`
	Compass  CompassConfig   `yaml:"compass"`
	Teams    TeamConfig      `yaml:"teams"`
	Items    ItemConfig      `yaml:"items"`
}

// LayoutConfig controls BSP room layout
type LayoutConfig struct {
	MaxDepth    int `yaml:"max_depth"`
	MinNodeSize int `yaml:"min_node_size"`
	// IsolateChance is the percent chance a leaf room is left without corridors
	IsolateChance int `yaml:"isolate_chance"`
}

// StairsConfig names the effects used for the entrance and exit
type StairsConfig struct {
	EntranceEffect int `yaml:"entrance_effect"`
	ExitEffect     int `yaml:"exit_effect"`
}

// RoomTagConfig attaches a room component to rooms passing Filter
type RoomTagConfig struct {
	Filter string `yaml:"filter"`
	Tag    string `yaml:"tag"`
	Chance int    `yaml:"chance"` // percent, 0 means always
}

// WeightedName is a fragment name with its spawn weight
type WeightedName struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// PatternConfig controls blob placement
type PatternConfig struct {
	Amount    Range          `yaml:"amount"`
	Stencil   string         `yaml:"stencil"` // allow, all_cells, no_border
	Fragments []WeightedName `yaml:"fragments"`
}

// EffectConfig scatters effect tiles over filtered rooms
type EffectConfig struct {
	Effect int    `yaml:"effect"`
	Amount Range  `yaml:"amount"`
	Filter string `yaml:"filter"`
}

// DetourConfig controls locked side alcoves
type DetourConfig struct {
	Amount     Range       `yaml:"amount"`
	Length     int         `yaml:"length"`
	LockEffect int         `yaml:"lock_effect"`
	Filter     string      `yaml:"filter"`
	Items      []ItemEntry `yaml:"items"`
}

// CompassConfig names the compass effect; 0 disables the compass step
type CompassConfig struct {
	Effect int `yaml:"effect"`
}

// TeamConfig controls monster teams
type TeamConfig struct {
	Filter   string              `yaml:"filter"`
	PerRoom  Range               `yaml:"per_room"`
	Spawners []TeamSpawnerConfig `yaml:"spawners"`
}

// TeamSpawnerConfig defines one team template
type TeamSpawnerConfig struct {
	Kind     string          `yaml:"kind"` // boss_band or table
	Weight   int             `yaml:"weight"`
	Explorer bool            `yaml:"explorer"`
	Size     Range           `yaml:"size"`
	Slots    [][]MobEntry    `yaml:"slots"`
	Leader   []FeatureConfig `yaml:"leader"`
}

// MobEntry is a weighted monster template
type MobEntry struct {
	Species  int             `yaml:"species"`
	Form     int             `yaml:"form"`
	Level    int             `yaml:"level"`
	Weight   int             `yaml:"weight"`
	Features []FeatureConfig `yaml:"features"`
}

// FeatureConfig describes a spawn feature
type FeatureConfig struct {
	Type    string `yaml:"type"` // level, stats, held_item, boss
	Value   int    `yaml:"value"`
	Item    int    `yaml:"item"`
	Health  int    `yaml:"health"`
	Attack  int    `yaml:"attack"`
	Defense int    `yaml:"defense"`
}

// ItemConfig controls loose floor items
type ItemConfig struct {
	Amount Range       `yaml:"amount"`
	Filter string      `yaml:"filter"`
	Table  []ItemEntry `yaml:"table"`
}

// ItemEntry is a weighted item template
type ItemEntry struct {
	ID     int `yaml:"id"`
	Amount int `yaml:"amount"`
	Weight int `yaml:"weight"`
}

// DefaultFloorConfig returns a small standard floor
func DefaultFloorConfig() *FloorConfig {
	return &FloorConfig{
		Width:  60,
		Height: 40,
		Layout: LayoutConfig{MaxDepth: 4, MinNodeSize: 9, IsolateChance: 15},
		Stairs: StairsConfig{EntranceEffect: 2, ExitEffect: 1},
		RoomTags: []RoomTagConfig{
			{Filter: `Has("Disconnected")`, Tag: "no_event"},
		},
		Patterns: PatternConfig{
			Amount:  Range{Min: 2, Max: 5},
			Stencil: "allow",
			Fragments: []WeightedName{
				{Name: "pond", Weight: 3},
				{Name: "lava_pit", Weight: 1},
			},
		},
		Effects: []EffectConfig{
			{Effect: 4, Amount: Range{Min: 1, Max: 2}, Filter: `Has("Main") && !Is("no_event")`},
		},
		Detours: DetourConfig{
			Amount:     Range{Min: 1, Max: 3},
			Length:     2,
			LockEffect: 3,
			Filter:     `Has("Main")`,
			Items:      []ItemEntry{{ID: 10, Amount: 1, Weight: 3}, {ID: 12, Amount: 1, Weight: 1}},
		},
		Compass: CompassConfig{Effect: 4},
		Teams: TeamConfig{
			Filter:  `Has("Main") && !Is("no_event")`,
			PerRoom: Range{Min: 0, Max: 2},
			Spawners: []TeamSpawnerConfig{
				{
					Kind:   "table",
					Weight: 4,
					Size:   Range{Min: 1, Max: 3},
					Slots:  [][]MobEntry{{{Species: 1, Level: 1, Weight: 3}, {Species: 2, Level: 2, Weight: 2}}},
				},
				{
					Kind:   "boss_band",
					Weight: 1,
					Size:   Range{Min: 2, Max: 4},
					Slots: [][]MobEntry{
						{{Species: 3, Level: 4, Weight: 1}},
						{{Species: 1, Level: 3, Weight: 2}, {Species: 2, Level: 3, Weight: 1}},
					},
					Leader: []FeatureConfig{{Type: "boss"}, {Type: "level", Value: 3}},
				},
			},
		},
		Items: ItemConfig{
			Amount: Range{Min: 3, Max: 7},
			Table:  []ItemEntry{{ID: 10, Amount: 1, Weight: 5}, {ID: 11, Amount: 5, Weight: 2}},
		},
	}
}

// LoadFloorConfig reads a YAML floor config. Omitted fields keep their defaults.
func LoadFloorConfig(path string) (*FloorConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read floor config: %w", err)
	}
	return ParseFloorConfig(raw)
}

// ParseFloorConfig decodes YAML over DefaultFloorConfig and validates the result
func ParseFloorConfig(raw []byte) (*FloorConfig, error) {
	cfg := DefaultFloorConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse floor config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks sizes, ranges and weights
func (c *FloorConfig) Validate() error {
	if c.Width < 16 || c.Height < 16 {
		return fmt.Errorf("floor must be at least 16x16, got %dx%d", c.Width, c.Height)
	}
	if c.Layout.MinNodeSize < 6 {
		return fmt.Errorf("layout min_node_size must be at least 6, got %d", c.Layout.MinNodeSize)
	}
	if c.Layout.IsolateChance < 0 || c.Layout.IsolateChance > 100 {
		return fmt.Errorf("layout isolate_chance must be within 0-100, got %d", c.Layout.IsolateChance)
	}
	ranges := map[string]Range{
		"patterns.amount": c.Patterns.Amount,
		"detours.amount":  c.Detours.Amount,
		"teams.per_room":  c.Teams.PerRoom,
		"items.amount":    c.Items.Amount,
	}
	for name, r := range ranges {
		if r.Min < 0 || r.Max < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	for _, f := range c.Patterns.Fragments {
		if f.Weight < 0 {
			return fmt.Errorf("fragment %q has negative weight", f.Name)
		}
	}
	for i, s := range c.Teams.Spawners {
		if s.Kind != "boss_band" && s.Kind != "table" {
			return fmt.Errorf("team spawner %d: unknown kind %q", i, s.Kind)
		}
		if s.Weight < 0 {
			return fmt.Errorf("team spawner %d has negative weight", i)
		}
		if s.Kind == "table" && len(s.Slots) != 1 {
			return fmt.Errorf("team spawner %d: table teams take exactly one slot", i)
		}
	}
	if c.Detours.Length < 1 {
		return fmt.Errorf("detours.length must be at least 1")
	}
	return nil
}
