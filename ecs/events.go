package ecs

// EventKind identifies round events raised by systems during a tick.
type EventKind string

const (
	EventPickupCollected EventKind = "pickup_collected"
	EventPlayerCaught    EventKind = "player_caught"
	EventBoardCleared    EventKind = "board_cleared"
	EventRoundRestarted  EventKind = "round_restarted"
)

// Event is a round event payload. Entity is the subject (pickup, pursuer),
// or zero when the event concerns the round as a whole.
type Event struct {
	Kind   EventKind
	Entity Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
