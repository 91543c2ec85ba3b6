package data

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownDescriptor is returned when a descriptor ID has no definition
var ErrUnknownDescriptor = errors.New("unknown descriptor")

// Source is the read-only descriptor database the generator consults.
// Descriptors are keyed by stable integer IDs and must not be mutated by callers.
type Source interface {
	TileDescriptor(id int) (*TileDescriptor, error)
	ItemDescriptor(id int) (*ItemDescriptor, error)
	SpeciesDescriptor(id int) (*SpeciesDescriptor, error)
}

// InteractionBehavior is one behavior attached to a tile definition
type InteractionBehavior interface {
	BehaviorType() string
}

// CompassBehavior orients a compass tile towards tiles whose effect is in Eligible
type CompassBehavior struct {
	Eligible []int `yaml:"eligible"`
}

func (*CompassBehavior) BehaviorType() string { return "compass" }

// LockBehavior opens when the key item is used on the tile
type LockBehavior struct {
	KeyItem int `yaml:"key_item"`
}

func (*LockBehavior) BehaviorType() string { return "lock" }

// StairsBehavior moves the player between floors
type StairsBehavior struct {
	Down bool `yaml:"down"`
}

func (*StairsBehavior) BehaviorType() string { return "stairs" }

// TrapBehavior damages whoever steps on the tile
type TrapBehavior struct {
	Damage int `yaml:"damage"`
}

func (*TrapBehavior) BehaviorType() string { return "trap" }

// TileDescriptor defines a tile effect
type TileDescriptor struct {
	ID        int
	Name      string
	Glyph     rune
	Behaviors []InteractionBehavior
}

// ItemDescriptor defines an item
type ItemDescriptor struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	MaxStack int    `yaml:"max_stack"`
}

// SpeciesDescriptor defines the base stats of a monster species
type SpeciesDescriptor struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Health  int    `yaml:"health"`
	Attack  int    `yaml:"attack"`
	Defense int    `yaml:"defense"`
}

// behaviorEntry decodes a behavior by its "type" key
type behaviorEntry struct {
	Behavior InteractionBehavior
}

func (b *behaviorEntry) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Type string `yaml:"type"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}

	var behavior InteractionBehavior
	switch head.Type {
	case "compass":
		behavior = &CompassBehavior{}
	case "lock":
		behavior = &LockBehavior{}
	case "stairs":
		behavior = &StairsBehavior{}
	case "trap":
		behavior = &TrapBehavior{}
	default:
		return fmt.Errorf("line %d: unknown behavior type %q", node.Line, head.Type)
	}
	if err := node.Decode(behavior); err != nil {
		return err
	}
	b.Behavior = behavior
	return nil
}

type tileDescriptorYAML struct {
	ID        int             `yaml:"id"`
	Name      string          `yaml:"name"`
	Glyph     string          `yaml:"glyph"`
	Behaviors []behaviorEntry `yaml:"behaviors"`
}

func (t tileDescriptorYAML) descriptor() *TileDescriptor {
	desc := &TileDescriptor{
		ID:    t.ID,
		Name:  t.Name,
		Glyph: '*',
	}
	for _, r := range t.Glyph {
		desc.Glyph = r
		break
	}
	for _, b := range t.Behaviors {
		desc.Behaviors = append(desc.Behaviors, b.Behavior)
	}
	return desc
}
