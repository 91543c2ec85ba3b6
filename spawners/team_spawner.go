package spawners

import (
	"fmt"
)

// TeamSpawner produces the teams for one spawn request
type TeamSpawner interface {
	SpawnTeams(env *SpawnEnv) ([]*Team, error)
}

// BossBandSpawner spawns one team whose leader gets extra features.
// A drawn size of zero still yields the team, empty.
// Candidates from every slot table are merged before drawing.
type BossBandSpawner struct {
	Size           RandRange
	Slots          []*SpawnTable[*MobSpawn]
	LeaderFeatures []SpawnFeature
	Explorer       bool
}

// GetPossibleSpawns returns every slot's entries flattened into one table
func (s *BossBandSpawner) GetPossibleSpawns() *SpawnTable[*MobSpawn] {
	return MergeSpawnTables(s.Slots...)
}

func (s *BossBandSpawner) SpawnTeams(env *SpawnEnv) ([]*Team, error) {
	size := s.Size.Pick(env.RNG)
	if size <= 0 {
		return []*Team{NewTeam(kindFor(s.Explorer))}, nil
	}

	candidates := s.GetPossibleSpawns()
	if !candidates.CanPick() {
		return nil, fmt.Errorf("boss band of %d: %w", size, ErrEmptySpawnSource)
	}

	team := NewTeam(kindFor(s.Explorer))

	template, err := candidates.Pick(env.RNG)
	if err != nil {
		return nil, err
	}
	leader := template.Copy()
	for _, f := range s.LeaderFeatures {
		leader.Features = append(leader.Features, f.Clone())
	}
	entity, err := leader.Spawn(env)
	if err != nil {
		return nil, fmt.Errorf("boss band leader: %w", err)
	}
	team.AddMember(env.World, entity)

	for i := 1; i < size; i++ {
		member, err := candidates.Pick(env.RNG)
		if err != nil {
			return nil, err
		}
		entity, err := member.Spawn(env)
		if err != nil {
			return nil, fmt.Errorf("boss band member %d: %w", i, err)
		}
		team.AddMember(env.World, entity)
	}

	return []*Team{team}, nil
}

// TableTeamSpawner spawns one ordinary team drawn from a single table
type TableTeamSpawner struct {
	Size     RandRange
	Table    *SpawnTable[*MobSpawn]
	Explorer bool
}

func (s *TableTeamSpawner) SpawnTeams(env *SpawnEnv) ([]*Team, error) {
	size := s.Size.Pick(env.RNG)
	if size <= 0 {
		return []*Team{NewTeam(kindFor(s.Explorer))}, nil
	}
	if s.Table == nil || !s.Table.CanPick() {
		return nil, fmt.Errorf("team of %d: %w", size, ErrEmptySpawnSource)
	}

	team := NewTeam(kindFor(s.Explorer))
	for i := 0; i < size; i++ {
		member, err := s.Table.Pick(env.RNG)
		if err != nil {
			return nil, err
		}
		entity, err := member.Spawn(env)
		if err != nil {
			return nil, fmt.Errorf("team member %d: %w", i, err)
		}
		team.AddMember(env.World, entity)
	}
	return []*Team{team}, nil
}
