package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

// recordAudit agrega una entrada inmutable en la misma transacción que el cambio que documenta.
func recordAudit(ctx context.Context, repo repository.AuditRepository, move *entity.Move, actor string, payload entity.AuditPayload, now time.Time) (*entity.Audit, error) {
	entry := &entity.Audit{
		ID:        uuid.New().String(),
		Entity:    entity.AuditEntityMove,
		EntityID:  move.ID,
		Action:    payload.Action(),
		Payload:   payload,
		Actor:     actor,
		Timestamp: now,
	}
	if err := repo.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func createdPayload(move *entity.Move) entity.MoveCreated {
	lines := make([]entity.RequestedLine, 0, len(move.Lines))
	for _, l := range move.Lines {
		lines = append(lines, entity.RequestedLine{
			ItemCode:     l.ItemCode,
			Qty:          l.Qty,
			LocationFrom: l.LocationFrom,
			LocationTo:   l.LocationTo,
		})
	}
	return entity.MoveCreated{DocType: move.DocType, DocNumber: move.DocNumber, Lines: lines}
}
