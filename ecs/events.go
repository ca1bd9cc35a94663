package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionEventGrounded  CollisionEventKind = "grounded"
	CollisionEventHitHazard CollisionEventKind = "hazard"
)

// CollisionEvent reports a classified contact between a player and a block.
type CollisionEvent struct {
	Player Entity
	Other  Entity
	Kind   CollisionEventKind
}

// RespawnCause tells why a respawn was requested.
type RespawnCause string

const (
	RespawnHazard    RespawnCause = "hazard"
	RespawnKillPlane RespawnCause = "kill_plane"
)

// RespawnRequestedEvent asks for the player to be reset to the level start.
// At most one is emitted per player per tick.
type RespawnRequestedEvent struct {
	Player Entity
	Cause  RespawnCause
}

const (
	EventCollision        = "collision"
	EventRespawnRequested = "respawn_requested"
)

// EventQueue is a simple FIFO queue whose contents live for one tick.
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

// Pending returns the queued events without removing them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

// Emit queues data under the given event type.
func Emit(w *World, typ string, data any) {
	w.Events().Push(Event{Type: typ, Data: data})
}

// EventsOf returns the payloads of this tick's events that have type T, in
// emission order.
func EventsOf[T any](w *World) []T {
	var out []T
	for _, evt := range w.Events().Pending() {
		if v, ok := evt.Data.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
