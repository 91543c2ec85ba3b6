package spawners

import (
	"floorgen/components"
	"floorgen/ecs"
)

// TeamKind selects the kind of team a spawner creates
type TeamKind int

const (
	// TeamMonster is an ordinary hostile team
	TeamMonster TeamKind = iota
	// TeamExplorer is a lone squad of wandering explorers
	TeamExplorer
)

func (k TeamKind) String() string {
	if k == TeamExplorer {
		return "explorer"
	}
	return "monster"
}

// Team is an ordered group of spawned monsters. The first member is the leader.
type Team struct {
	Kind    TeamKind
	Members []*ecs.Entity
}

// NewTeam creates an empty team
func NewTeam(kind TeamKind) *Team {
	return &Team{Kind: kind}
}

// Leader returns the first member, or nil for an empty team
func (t *Team) Leader() *ecs.Entity {
	if len(t.Members) == 0 {
		return nil
	}
	return t.Members[0]
}

// AddMember appends a spawned entity and records its membership
func (t *Team) AddMember(world *ecs.World, entity *ecs.Entity) {
	leader := len(t.Members) == 0
	t.Members = append(t.Members, entity)
	world.AddComponent(entity.ID, components.TeamMember, &components.TeamMemberComponent{
		Leader:   leader,
		Explorer: t.Kind == TeamExplorer,
	})
	if leader {
		world.TagEntity(entity.ID, "leader")
	}
}

func kindFor(explorer bool) TeamKind {
	if explorer {
		return TeamExplorer
	}
	return TeamMonster
}
