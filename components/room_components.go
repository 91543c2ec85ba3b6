package components

import "strings"

// RoomTag identifies a room component type. A room holds at most one component per tag.
type RoomTag string

// Room component tags
const (
	BossRoomTag     RoomTag = "boss"
	NoConnectTag    RoomTag = "no_connect"
	NoEventTag      RoomTag = "no_event"
	ConnectivityTag RoomTag = "connectivity"
)

// RoomComponent is metadata attached to a room plan
type RoomComponent interface {
	RoomTag() RoomTag
}

// BossRoomComponent marks the room hosting the floor's boss
type BossRoomComponent struct{}

func (BossRoomComponent) RoomTag() RoomTag { return BossRoomTag }

// NoConnectComponent marks a room that corridor passes must not link to
type NoConnectComponent struct{}

func (NoConnectComponent) RoomTag() RoomTag { return NoConnectTag }

// NoEventComponent marks a room excluded from event/effect placement
type NoEventComponent struct{}

func (NoEventComponent) RoomTag() RoomTag { return NoEventTag }

// Connectivity describes how a room is reached from the entrance
type Connectivity int

// Connectivity flags
const (
	ConnectivityNone         Connectivity = 0
	ConnectivityMain         Connectivity = 1
	ConnectivityDisconnected Connectivity = 2
	ConnectivitySwitchVault  Connectivity = 4
	ConnectivityKeyVault     Connectivity = 8
	ConnectivityBossLocked   Connectivity = 16
)

var connectivityNames = []struct {
	flag Connectivity
	name string
}{
	{ConnectivityMain, "Main"},
	{ConnectivityDisconnected, "Disconnected"},
	{ConnectivitySwitchVault, "SwitchVault"},
	{ConnectivityKeyVault, "KeyVault"},
	{ConnectivityBossLocked, "BossLocked"},
}

// ParseConnectivity parses a single flag name or a "|"-separated list of names
func ParseConnectivity(s string) (Connectivity, bool) {
	var c Connectivity
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" || strings.EqualFold(part, "None") {
			continue
		}
		found := false
		for _, n := range connectivityNames {
			if strings.EqualFold(part, n.name) {
				c |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return c, true
}

func (c Connectivity) String() string {
	if c == ConnectivityNone {
		return "None"
	}
	var parts []string
	for _, n := range connectivityNames {
		if c&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ConnectivityComponent stores the connectivity flags of a room
type ConnectivityComponent struct {
	Connectivity Connectivity
}

func (ConnectivityComponent) RoomTag() RoomTag { return ConnectivityTag }
