package audit

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Query filters the audit trail. Empty fields match everything.
type Query struct {
	Action   string
	Entity   string
	EntityID string
	Page     int
	Limit    int
}

// Normalize clamps paging to sane values.
func (q Query) Normalize() Query {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > MaxLimit {
		q.Limit = DefaultLimit
	}
	return q
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

func (q Query) Matches(row models.AuditLog) bool {
	if q.Action != "" && row.Action != q.Action {
		return false
	}
	if q.Entity != "" && row.Entity != q.Entity {
		return false
	}
	if q.EntityID != "" && row.EntityID != q.EntityID {
		return false
	}
	return true
}

// Reader lists audit rows newest first together with the total match count.
type Reader interface {
	ListAuditLogs(ctx context.Context, q Query) ([]models.AuditLog, int64, error)
}
