package notify

import (
	"context"

	"go.uber.org/zap"
)

// Publisher delivers a confirmation to an external channel.
type Publisher interface {
	Publish(ctx context.Context, c Confirmation) error
	Close() error
}

// LogPublisher only logs; it is the default when no broker is configured.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(ctx context.Context, c Confirmation) error {
	p.log.Info("booking confirmation",
		zap.String("appointment_id", c.AppointmentID),
		zap.String("customer_contact", c.CustomerContact),
		zap.String("message", c.Text()),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
