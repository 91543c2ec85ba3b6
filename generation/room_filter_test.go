package generation

import (
	"testing"

	"floorgen/components"
)

func TestConnectivityFilterSharesAnyFlag(t *testing.T) {
	room := NewRoomPlan(components.Rect{Width: 4, Height: 4})
	room.SetConnectivity(components.ConnectivityMain | components.ConnectivityKeyVault)

	cases := []struct {
		wanted components.Connectivity
		pass   bool
	}{
		{components.ConnectivityKeyVault, true},
		{components.ConnectivityMain, true},
		{components.ConnectivityMain | components.ConnectivityDisconnected, true},
		{components.ConnectivitySwitchVault, false},
	}
	for _, c := range cases {
		if got := (ConnectivityFilter{Wanted: c.wanted}).PassesFilter(room); got != c.pass {
			t.Fatalf("wanted %v: expected %v, got %v", c.wanted, c.pass, got)
		}
	}
}

func TestConnectivityFilterRejectsRoomWithoutComponent(t *testing.T) {
	room := NewRoomPlan(components.Rect{Width: 4, Height: 4})
	if (ConnectivityFilter{Wanted: components.ConnectivityMain}).PassesFilter(room) {
		t.Fatalf("room without connectivity must not pass")
	}
}

func TestComponentAndCompositeFilters(t *testing.T) {
	boss := NewRoomPlan(components.Rect{Width: 4, Height: 4})
	boss.SetComponent(components.BossRoomComponent{})
	boss.SetConnectivity(components.ConnectivityMain)
	plain := NewRoomPlan(components.Rect{Width: 4, Height: 4})

	isBoss := ComponentFilter{Tag: components.BossRoomTag}
	notBoss := ComponentFilter{Tag: components.BossRoomTag, Negate: true}
	if !isBoss.PassesFilter(boss) || isBoss.PassesFilter(plain) {
		t.Fatalf("component filter mismatch")
	}
	if notBoss.PassesFilter(boss) || !notBoss.PassesFilter(plain) {
		t.Fatalf("negated component filter mismatch")
	}

	main := ConnectivityFilter{Wanted: components.ConnectivityMain}
	if !(AllFilter{isBoss, main}).PassesFilter(boss) {
		t.Fatalf("expected boss room to pass all filter")
	}
	if (AllFilter{isBoss, main}).PassesFilter(plain) {
		t.Fatalf("expected plain room to fail all filter")
	}
	if !(AnyFilter{isBoss, notBoss}).PassesFilter(plain) {
		t.Fatalf("expected plain room to pass any filter")
	}
}

func TestExprFilter(t *testing.T) {
	room := NewRoomPlan(components.Rect{Width: 5, Height: 3})
	room.SetConnectivity(components.ConnectivityMain | components.ConnectivityKeyVault)
	room.SetComponent(components.NoEventComponent{})

	cases := map[string]bool{
		`Has("KeyVault")`:                true,
		`Has("switchvault|bosslocked")`:  false,
		`Has("Main") && !Is("no_event")`: false,
		`Is("no_event") && Area == 15`:   true,
		`Width > Height`:                 true,
		`Has("NotAFlag")`:                false,
	}
	for src, want := range cases {
		filter, err := NewExprFilter(src)
		if err != nil {
			t.Fatalf("%s: compile failed: %v", src, err)
		}
		if got := filter.PassesFilter(room); got != want {
			t.Fatalf("%s: expected %v, got %v", src, want, got)
		}
	}
}

func TestExprFilterRejectsNonBoolean(t *testing.T) {
	if _, err := NewExprFilter("Width + 1"); err == nil {
		t.Fatalf("expected compile error for non-boolean filter")
	}
	if _, err := NewExprFilter("Unknown()"); err == nil {
		t.Fatalf("expected compile error for unknown function")
	}
}

func TestFilterRoomsKeepsOrder(t *testing.T) {
	var rooms []*RoomPlan
	for i := 0; i < 5; i++ {
		room := NewRoomPlan(components.Rect{X: i, Width: 1, Height: 1})
		if i%2 == 0 {
			room.SetConnectivity(components.ConnectivityMain)
		}
		rooms = append(rooms, room)
	}
	got := FilterRooms(rooms, ConnectivityFilter{Wanted: components.ConnectivityMain})
	if len(got) != 3 || got[0].Bounds.X != 0 || got[1].Bounds.X != 2 || got[2].Bounds.X != 4 {
		t.Fatalf("unexpected filtered rooms")
	}
	if len(FilterRooms(rooms, nil)) != 5 {
		t.Fatalf("nil filter should pass every room")
	}
}

func TestTryGetComponent(t *testing.T) {
	room := NewRoomPlan(components.Rect{Width: 1, Height: 1})
	if _, ok := TryGetComponent[components.ConnectivityComponent](room); ok {
		t.Fatalf("expected no connectivity component")
	}
	room.SetConnectivity(components.ConnectivityDisconnected)
	room.SetConnectivity(components.ConnectivityMain)
	c, ok := TryGetComponent[components.ConnectivityComponent](room)
	if !ok || c.Connectivity != components.ConnectivityMain {
		t.Fatalf("expected replaced connectivity, got %+v %v", c, ok)
	}
	if len(room.Tags()) != 1 {
		t.Fatalf("expected one component per tag, got %v", room.Tags())
	}
}
