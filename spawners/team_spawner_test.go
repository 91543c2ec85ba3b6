package spawners

import (
	"errors"
	"testing"

	"floorgen/components"
	"floorgen/ecs"
)

func slot(t *testing.T, entries ...*MobSpawn) *SpawnTable[*MobSpawn] {
	t.Helper()
	table := NewSpawnTable[*MobSpawn]()
	for _, e := range entries {
		if err := table.Add(e, 1); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	return table
}

func newBand(t *testing.T, size RandRange, explorer bool) *BossBandSpawner {
	return &BossBandSpawner{
		Size: size,
		Slots: []*SpawnTable[*MobSpawn]{
			slot(t, &MobSpawn{Species: 1, Level: 2}),
			slot(t, &MobSpawn{Species: 2, Level: 2}, &MobSpawn{Species: 3, Level: 4}),
		},
		LeaderFeatures: []SpawnFeature{BossFeature{}, LevelFeature{Bonus: 5}},
		Explorer:       explorer,
	}
}

func TestBossBandLeaderIsFirstAndOnlyBoss(t *testing.T) {
	for _, size := range []int{1, 2, 4, 7} {
		env := testEnv(int64(size))
		band := newBand(t, Fixed(size), false)
		teams, err := band.SpawnTeams(env)
		if err != nil {
			t.Fatalf("size %d: unexpected error: %v", size, err)
		}
		if len(teams) != 1 {
			t.Fatalf("expected exactly one team, got %d", len(teams))
		}
		team := teams[0]
		if len(team.Members) != size {
			t.Fatalf("expected %d members (%d subordinates), got %d", size, size-1, len(team.Members))
		}
		if team.Leader() != team.Members[0] {
			t.Fatalf("leader must be the first member")
		}
		for i, m := range team.Members {
			isBoss := env.World.HasComponent(m.ID, components.Boss)
			if isBoss != (i == 0) {
				t.Fatalf("member %d boss=%v", i, isBoss)
			}
			comp, _ := env.World.GetComponent(m.ID, components.TeamMember)
			if comp.(*components.TeamMemberComponent).Leader != (i == 0) {
				t.Fatalf("member %d has wrong leader flag", i)
			}
		}
	}
}

func TestBossBandDoesNotMutateTemplates(t *testing.T) {
	env := testEnv(3)
	band := newBand(t, Fixed(5), false)
	if _, err := band.SpawnTeams(env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range band.Slots {
		for _, e := range s.Entries() {
			if len(e.Item.Features) != 0 {
				t.Fatalf("template for species %d gained features", e.Item.Species)
			}
		}
	}
}

func TestBossBandFlattensSlots(t *testing.T) {
	band := newBand(t, Fixed(1), false)
	possible := band.GetPossibleSpawns()
	if possible.Count() != 3 || possible.TotalWeight() != 3 {
		t.Fatalf("expected 3 flattened candidates, got %d", possible.Count())
	}
}

func TestBossBandEmptySource(t *testing.T) {
	env := testEnv(1)
	band := &BossBandSpawner{
		Size:  Fixed(3),
		Slots: []*SpawnTable[*MobSpawn]{NewSpawnTable[*MobSpawn]()},
	}
	teams, err := band.SpawnTeams(env)
	if !errors.Is(err, ErrEmptySpawnSource) {
		t.Fatalf("expected ErrEmptySpawnSource, got %v", err)
	}
	if teams != nil || env.World.EntityCount() != 0 {
		t.Fatalf("expected no entities from empty source")
	}
}

func TestBossBandExplorerFlag(t *testing.T) {
	env := testEnv(1)
	teams, err := newBand(t, Fixed(2), true).SpawnTeams(env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if teams[0].Kind != TeamExplorer {
		t.Fatalf("expected explorer team, got %v", teams[0].Kind)
	}
	comp, _ := env.World.GetComponent(teams[0].Members[1].ID, components.TeamMember)
	if !comp.(*components.TeamMemberComponent).Explorer {
		t.Fatalf("expected explorer membership")
	}
}

func speciesOf(world *ecs.World, team *Team) []int {
	var out []int
	for _, m := range team.Members {
		comp, _ := world.GetComponent(m.ID, components.Species)
		out = append(out, comp.(*components.SpeciesComponent).Species)
	}
	return out
}

func TestBossBandDeterministic(t *testing.T) {
	envA, envB := testEnv(21), testEnv(21)
	a, _ := newBand(t, RandRange{Min: 2, Max: 6}, false).SpawnTeams(envA)
	b, _ := newBand(t, RandRange{Min: 2, Max: 6}, false).SpawnTeams(envB)
	sa, sb := speciesOf(envA.World, a[0]), speciesOf(envB.World, b[0])
	if len(sa) != len(sb) {
		t.Fatalf("size diverged: %v vs %v", sa, sb)
	}
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("species diverged: %v vs %v", sa, sb)
		}
	}
}

func TestTableTeamSpawner(t *testing.T) {
	env := testEnv(4)
	spawner := &TableTeamSpawner{Size: Fixed(3), Table: slot(t, &MobSpawn{Species: 2})}
	teams, err := spawner.SpawnTeams(env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams[0].Members) != 3 || teams[0].Kind != TeamMonster {
		t.Fatalf("unexpected team %+v", teams[0])
	}
	for _, m := range teams[0].Members {
		if env.World.HasComponent(m.ID, components.Boss) {
			t.Fatalf("plain teams must not carry boss features")
		}
	}

	empty := &TableTeamSpawner{Size: Fixed(1)}
	if _, err := empty.SpawnTeams(env); !errors.Is(err, ErrEmptySpawnSource) {
		t.Fatalf("expected ErrEmptySpawnSource, got %v", err)
	}
}

func TestZeroSizeSpawnsOneEmptyTeam(t *testing.T) {
	cases := []TeamSpawner{
		newBand(t, Fixed(0), true),
		&BossBandSpawner{Size: Fixed(0)},
		&TableTeamSpawner{Size: Fixed(0)},
	}
	for i, spawner := range cases {
		env := testEnv(9)
		teams, err := spawner.SpawnTeams(env)
		if err != nil {
			t.Fatalf("spawner %d: unexpected error: %v", i, err)
		}
		if len(teams) != 1 {
			t.Fatalf("spawner %d: expected exactly one team, got %d", i, len(teams))
		}
		if len(teams[0].Members) != 0 || teams[0].Leader() != nil {
			t.Fatalf("spawner %d: expected an empty team, got %d members", i, len(teams[0].Members))
		}
		if env.World.EntityCount() != 0 {
			t.Fatalf("spawner %d: expected no entities, got %d", i, env.World.EntityCount())
		}
	}
	teams, _ := newBand(t, Fixed(0), true).SpawnTeams(testEnv(9))
	if teams[0].Kind != TeamExplorer {
		t.Fatalf("expected the explorer flag to carry over, got %v", teams[0].Kind)
	}
}
