package activity

import "go.uber.org/zap"

// Event records a user-facing action for the diagnostic trail.
type Event struct {
	UserID   string
	Role     string
	Action   string
	Entity   string
	EntityID string
}

// Dispatcher writes events off the request path through a buffered
// queue; a full queue drops the event rather than blocking a page.
type Dispatcher struct {
	log   *zap.Logger
	queue chan Event
}

func NewDispatcher(log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.log.Info("activity",
			zap.String("user_id", ev.UserID),
			zap.String("role", ev.Role),
			zap.String("action", ev.Action),
			zap.String("entity", ev.Entity),
			zap.String("entity_id", ev.EntityID),
		)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("activity queue full, dropping event", zap.String("action", ev.Action))
	}
}
