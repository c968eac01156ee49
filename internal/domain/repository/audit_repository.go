package repository

import (
	"context"

	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// AuditFilter filtros de la bitácora.
type AuditFilter struct {
	EntityID string
	Action   entity.AuditAction
	Limit    int
}

// AuditRepository bitácora append-only: no existe Update ni Delete.
type AuditRepository interface {
	Append(ctx context.Context, entry *entity.Audit) error
	List(ctx context.Context, filter AuditFilter) ([]*entity.Audit, error)
}
