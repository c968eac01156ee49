package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo bitácora sobre PostgreSQL. Solo INSERT y SELECT; el payload se guarda como JSONB etiquetado.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Append inserta una entrada de auditoría.
func (r *AuditRepo) Append(ctx context.Context, entry *entity.Audit) error {
	payload, err := entity.MarshalAuditPayload(entry.Payload)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO audit (id, entity, entity_id, action, payload, actor, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.Entity, entry.EntityID, entry.Action, payload, entry.Actor, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

// List devuelve entradas más recientes primero.
func (r *AuditRepo) List(ctx context.Context, filter repository.AuditFilter) ([]*entity.Audit, error) {
	var (
		where []string
		args  []any
	)
	if filter.EntityID != "" {
		args = append(args, filter.EntityID)
		where = append(where, fmt.Sprintf("entity_id = $%d", len(args)))
	}
	if filter.Action != "" {
		args = append(args, filter.Action)
		where = append(where, fmt.Sprintf("action = $%d", len(args)))
	}
	query := `SELECT id, entity, entity_id, action, payload, actor, ts FROM audit`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY ts DESC, id LIMIT $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	defer rows.Close()
	var list []*entity.Audit
	for rows.Next() {
		var (
			a   entity.Audit
			raw []byte
		)
		if err := rows.Scan(&a.ID, &a.Entity, &a.EntityID, &a.Action, &raw, &a.Actor, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit: %w", err)
		}
		if a.Payload, err = entity.UnmarshalAuditPayload(raw); err != nil {
			return nil, err
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
