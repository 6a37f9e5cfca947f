package audit

import "go.uber.org/zap"

type Event struct {
	CustomerID *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Sink persists one audit entry. The production sink writes to postgres.
type Sink interface {
	Log(customerID *uint, action, entity string, entityID *uint, metadata any) error
}

// Dispatcher writes audit events off the request path through a buffered
// channel. A full queue drops the event rather than blocking the API.
type Dispatcher struct {
	logger Sink
	zl     *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger Sink, zl *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		zl:     zl,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.CustomerID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.zl.Error("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.zl.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
