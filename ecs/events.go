package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventPathCompleted = "path_completed"
	EventEscaped       = "escaped"
	EventCaptured      = "captured"
	EventDoorToggled   = "door_toggled"
)

// EntityEvent carries the entity an event is about.
type EntityEvent struct {
	Entity Entity
}

// EventQueue is a simple FIFO queue cleared at the end of every tick.
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

// Peek returns the events raised so far this tick without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
