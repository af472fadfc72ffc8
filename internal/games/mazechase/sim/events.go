package sim

// EventKind tags an Event.
type EventKind uint8

const (
	EventPickupCollected EventKind = iota
	EventGhostCaught
	EventPlayerCaught
	EventDotEaten
	EventLevelCleared
	EventGhostReleased
	EventPickupSpawned
	EventPickupExpired
)

var eventNames = [...]string{
	EventPickupCollected: "pickup_collected",
	EventGhostCaught:     "ghost_caught",
	EventPlayerCaught:    "player_caught",
	EventDotEaten:        "dot_eaten",
	EventLevelCleared:    "level_cleared",
	EventGhostReleased:   "ghost_released",
	EventPickupSpawned:   "pickup_spawned",
	EventPickupExpired:   "pickup_expired",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event is something that happened during a tick. Only the fields relevant
// to Kind are set: Pickup for pickup events, Ghost for ghost events, Tile
// wherever a location applies.
type Event struct {
	Kind   EventKind  `json:"kind"`
	Pickup PickupKind `json:"pickup"`
	Tile   Coord      `json:"tile"`
	Ghost  Identity   `json:"ghost"`
}
