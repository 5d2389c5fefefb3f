package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	ActionCreated       = "appointment_created"
	ActionConflict      = "appointment_conflict"
	ActionStatusChanged = "appointment_status_changed"
	ActionRescheduled   = "appointment_rescheduled"
	ActionDeleted       = "appointment_deleted"

	EntityAppointment = "appointment"
)

type Event struct {
	OperatorID *uint
	Action     string
	Entity     string
	EntityID   string
	Metadata   any
}

// Dispatcher writes audit events on a background worker so a slow or
// failing audit store never affects the request that produced them.
type Dispatcher struct {
	store Store
	log   *zap.Logger
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(store Store, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		store: store,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.store.SaveAuditLog(ctx, toRow(ev)); err != nil {
			d.log.Error("audit write failed",
				zap.String("action", ev.Action),
				zap.String("entity_id", ev.EntityID),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// Dispatch never blocks; when the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
