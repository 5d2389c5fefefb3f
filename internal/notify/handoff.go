package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Handoff resolves display names for an admitted appointment and hands
// the confirmation to the publisher on a background worker. Delivery
// outcome is logged only; it never reaches the booking caller.
type Handoff struct {
	catalog   domain.Catalog
	publisher Publisher
	log       *zap.Logger
	queue     chan *models.Appointment

	closeOnce sync.Once
	done      chan struct{}
}

func NewHandoff(catalog domain.Catalog, publisher Publisher, log *zap.Logger) *Handoff {
	h := &Handoff{
		catalog:   catalog,
		publisher: publisher,
		log:       log,
		queue:     make(chan *models.Appointment, 100),
		done:      make(chan struct{}),
	}

	go h.worker()
	return h
}

func (h *Handoff) worker() {
	defer close(h.done)

	for ap := range h.queue {
		h.deliver(ap)
	}
}

func (h *Handoff) deliver(ap *models.Appointment) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	branch, err := h.catalog.GetBranch(ctx, ap.BranchID)
	if err != nil {
		h.log.Warn("confirmation without branch name", zap.Uint("branch_id", ap.BranchID), zap.Error(err))
	}

	barber, err := h.catalog.GetBarber(ctx, ap.BarberID)
	if err != nil {
		h.log.Warn("confirmation without barber name", zap.Uint("barber_id", ap.BarberID), zap.Error(err))
	}

	if err := h.publisher.Publish(ctx, Build(ap, branch, barber)); err != nil {
		h.log.Error("confirmation delivery failed",
			zap.String("appointment_id", ap.ID),
			zap.Error(err),
		)
	}
}

// Dispatch queues a copy of ap. It never blocks.
func (h *Handoff) Dispatch(ap *models.Appointment) {
	cp := *ap
	select {
	case h.queue <- &cp:
	default:
		h.log.Warn("confirmation queue full, dropping", zap.String("appointment_id", ap.ID))
	}
}

// Close drains pending confirmations and closes the publisher.
func (h *Handoff) Close() error {
	h.closeOnce.Do(func() {
		close(h.queue)
	})
	<-h.done
	return h.publisher.Close()
}
