package ecs

import "testing"

type testEvent struct{ n int }

func (testEvent) Type() EventType { return "test" }

func TestWorldIDsArePerWorld(t *testing.T) {
	a := NewWorld()
	b := NewWorld()
	for i := 0; i < 3; i++ {
		a.CreateEntity()
	}
	if got := b.CreateEntity().ID; got != 1 {
		t.Fatalf("expected first ID of a fresh world to be 1, got %d", got)
	}
	if got := a.CreateEntity().ID; got != 4 {
		t.Fatalf("expected fourth ID to be 4, got %d", got)
	}
}

func TestWorldComponentsReplace(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.AddComponent(e.ID, 1, "first")
	w.AddComponent(e.ID, 1, "second")
	got, ok := w.GetComponent(e.ID, 1)
	if !ok || got.(string) != "second" {
		t.Fatalf("expected replaced component, got %v (%v)", got, ok)
	}
	w.RemoveComponent(e.ID, 1)
	if w.HasComponent(e.ID, 1) {
		t.Fatalf("expected component removed")
	}
}

func TestWorldTagsOrderedAndRemoved(t *testing.T) {
	w := NewWorld()
	var ids []EntityID
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		w.TagEntity(e.ID, "monster")
		ids = append(ids, e.ID)
	}
	w.RemoveEntity(ids[2])

	tagged := w.GetEntitiesWithTag("monster")
	if len(tagged) != 4 {
		t.Fatalf("expected 4 tagged entities, got %d", len(tagged))
	}
	for i := 1; i < len(tagged); i++ {
		if tagged[i-1].ID >= tagged[i].ID {
			t.Fatalf("expected ascending IDs, got %d then %d", tagged[i-1].ID, tagged[i].ID)
		}
	}
	if w.GetEntity(ids[2]) != nil {
		t.Fatalf("expected removed entity to be gone")
	}
}

func TestEventManagerDispatchOrder(t *testing.T) {
	w := NewWorld()
	var seen []int
	w.GetEventManager().Subscribe("test", func(e Event) { seen = append(seen, e.(testEvent).n) })
	w.GetEventManager().Subscribe("test", func(e Event) { seen = append(seen, -e.(testEvent).n) })
	w.EmitEvent(testEvent{n: 7})
	if len(seen) != 2 || seen[0] != 7 || seen[1] != -7 {
		t.Fatalf("unexpected dispatch %v", seen)
	}
}
