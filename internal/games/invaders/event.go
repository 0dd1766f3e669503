package invaders

// EventKind identifies a gameplay event.
type EventKind int

const (
	EventPlayerFired EventKind = iota + 1
	EventAlienFired
	EventAlienDestroyed
	EventShipHit
	EventShipDestroyed
	EventVictory
	EventDefeat
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventPlayerFired:
		return "PlayerFired"
	case EventAlienFired:
		return "AlienFired"
	case EventAlienDestroyed:
		return "AlienDestroyed"
	case EventShipHit:
		return "ShipHit"
	case EventShipDestroyed:
		return "ShipDestroyed"
	case EventVictory:
		return "Victory"
	case EventDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// Event is something that happened during a tick. X and Y locate it in the
// play area. Points is the score it awards.
type Event struct {
	Kind   EventKind
	X, Y   int
	Points int
}

// HasEvent reports whether events contains kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// CountEvents returns how many events are of kind.
func CountEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
