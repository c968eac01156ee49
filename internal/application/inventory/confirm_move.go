package inventory

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	domaininv "github.com/jhoicas/picking-api/internal/domain/inventory"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

// Confirmation cantidad recibida/despachada para una línea, identificada por
// (item_code, location_from, location_to). QtyConfirmed, si viene, es la cantidad
// efectivamente aplicada; si no, se aplica Qty.
type Confirmation struct {
	ItemCode     string
	Qty          int64
	QtyConfirmed *int64
	LocationFrom string
	LocationTo   string
}

// ConfirmMoveInput entrada de una confirmación por lote.
type ConfirmMoveInput struct {
	MoveID        string
	Confirmations []Confirmation
	Actor         string
}

// Resultados posibles para métricas.
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
)

// ConfirmMove aplica un lote de confirmaciones sobre el movimiento: actualiza qty_confirmed,
// ajusta el libro de stock, recalcula el estado y registra una auditoría. Todo en una sola
// transacción: cualquier error deja movimiento, stock y auditoría intactos.
func (uc *MoveUseCase) ConfirmMove(ctx context.Context, in ConfirmMoveInput) (*entity.Move, error) {
	ctx, span := tracer.Start(ctx, "inventory.ConfirmMove", trace.WithAttributes(
		attribute.String("move.id", in.MoveID),
		attribute.Int("move.confirmations", len(in.Confirmations)),
	))
	defer span.End()
	started := time.Now()

	// Existencia de productos resuelta antes de la tx, consultada en orden dentro del lote.
	known, err := uc.resolveProducts(ctx, in.Confirmations)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	var (
		result  *entity.Move
		deltas  []entity.LineDelta
		applied []domaininv.Adjustment
		docType entity.DocType = "unknown"
	)
	now := uc.now()
	err = uc.txRunner.Run(ctx, func(
		moveRepo repository.MoveRepository,
		stockRepo repository.StockRepository,
		auditRepo repository.AuditRepository,
	) error {
		// fn puede reintentarse: no arrastrar resultados de un intento anterior.
		result, deltas, applied = nil, nil, nil

		current, err := moveRepo.GetForUpdate(ctx, in.MoveID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NotFound(domain.CodeMoveNotFound, "movimiento %s no encontrado", in.MoveID)
		}
		docType = current.DocType
		if current.Status == entity.MoveStatusApproved {
			return domain.Conflict(domain.CodeAlreadyApproved, "el movimiento %s ya está aprobado", current.ID)
		}
		if len(in.Confirmations) == 0 {
			return domain.Validation(domain.CodeEmptyConfirmation, "se requiere al menos una confirmación")
		}
		if len(current.Lines) == 0 {
			return domain.Conflict(domain.CodeNoRegisteredLines, "el movimiento %s no tiene líneas registradas", current.ID)
		}

		move := current.Clone()
		ledger := NewLedger(stockRepo, now)
		changed := make(map[int]bool, len(move.Lines))

		for _, c := range in.Confirmations {
			key := entity.LineKey{
				ItemCode:     c.ItemCode,
				LocationFrom: entity.LocationOrDefault(c.LocationFrom),
				LocationTo:   entity.LocationOrDefault(c.LocationTo),
			}
			idx := move.FindLine(key)
			if idx < 0 {
				return domain.NotFound(domain.CodeLineNotFound,
					"no existe línea para %s (%s → %s)", key.ItemCode, key.LocationFrom, key.LocationTo)
			}
			line := &move.Lines[idx]

			if c.Qty > line.Qty {
				return domain.Validation(domain.CodeQuantityExceedsRequest,
					"%s: cantidad %d supera la solicitada %d", line.ItemCode, c.Qty, line.Qty)
			}
			amount := c.Qty
			if c.QtyConfirmed != nil {
				if *c.QtyConfirmed > c.Qty {
					return domain.Validation(domain.CodeQuantityExceedsRequest,
						"%s: qty_confirmed %d supera qty %d", line.ItemCode, *c.QtyConfirmed, c.Qty)
				}
				amount = *c.QtyConfirmed
			}
			if amount <= 0 {
				return domain.Validation(domain.CodeNonPositiveConfirmation,
					"%s: la cantidad confirmada debe ser positiva", line.ItemCode)
			}
			if amount > line.Pending() {
				return domain.Conflict(domain.CodeExceedsPending,
					"%s: confirmar %d excede lo pendiente (%d)", line.ItemCode, amount, line.Pending())
			}
			if known != nil && !known[line.ItemCode] {
				return domain.NotFound(domain.CodeProductNotFound, "producto %s no existe", line.ItemCode)
			}

			effects, err := domaininv.StockEffects(move.DocType, *line, amount)
			if err != nil {
				return err
			}
			if _, err := ledger.Apply(ctx, effects); err != nil {
				return err
			}
			applied = append(applied, effects...)

			line.QtyConfirmed += amount
			changed[idx] = true
			deltas = append(deltas, entity.LineDelta{
				ItemCode:          line.ItemCode,
				LocationFrom:      line.LocationFrom,
				LocationTo:        line.LocationTo,
				Qty:               line.Qty,
				QtyConfirmed:      amount,
				QtyConfirmedTotal: line.QtyConfirmed,
				QtyPendingTotal:   line.Pending(),
			})
		}

		if len(deltas) == 0 {
			return domain.Conflict(domain.CodeNothingApplied, "no se aplicó ninguna confirmación")
		}

		move.Status = domaininv.ComputeStatus(move.Lines)
		if move.Status == entity.MoveStatusApproved {
			by := in.Actor
			move.ApprovedBy = &by
		}
		if err := domaininv.CheckLineInvariants(move.Lines); err != nil {
			return err
		}
		move.UpdatedAt = now

		for idx := range move.Lines {
			if !changed[idx] {
				continue
			}
			if err := moveRepo.UpdateLineConfirmed(ctx, &move.Lines[idx]); err != nil {
				return err
			}
		}
		if err := moveRepo.UpdateStatus(ctx, move); err != nil {
			return err
		}
		payload := entity.MoveConfirmed{Status: move.Status, Lines: deltas}
		if _, err := recordAudit(ctx, auditRepo, move, in.Actor, payload, now); err != nil {
			return err
		}
		result = move
		return nil
	})

	if err != nil {
		recordSpanError(span, err)
		uc.observer.ObserveConfirm(docType, OutcomeRejected, time.Since(started))
		uc.log.Info().
			Err(err).
			Str("move_id", in.MoveID).
			Str("code", domain.CodeOf(err)).
			Str("actor", in.Actor).
			Msg("confirmación rechazada")
		return nil, err
	}

	uc.observer.ObserveConfirm(result.DocType, OutcomeApplied, time.Since(started))
	for _, adj := range applied {
		uc.observer.ObserveStockAdjustment(result.DocType, adj.Delta)
	}
	span.SetAttributes(
		attribute.String("move.status", string(result.Status)),
		attribute.Int("move.lines_applied", len(deltas)),
	)
	uc.log.Info().
		Str("move_id", result.ID).
		Str("doc_type", string(result.DocType)).
		Str("status", string(result.Status)).
		Int("lines_applied", len(deltas)).
		Str("actor", in.Actor).
		Msg("movimiento confirmado")

	uc.publish(ctx, MoveEvent{
		EventType:  EventMoveConfirmed,
		MoveID:     result.ID,
		DocType:    result.DocType,
		DocNumber:  result.DocNumber,
		Status:     result.Status,
		Actor:      in.Actor,
		Lines:      deltas,
		OccurredAt: now,
	})
	return result, nil
}

// resolveProducts consulta una vez cada ítem distinto del lote.
// Sin catálogo configurado devuelve nil y no se valida existencia.
func (uc *MoveUseCase) resolveProducts(ctx context.Context, confirmations []Confirmation) (map[string]bool, error) {
	if uc.products == nil {
		return nil, nil
	}
	known := make(map[string]bool, len(confirmations))
	for _, c := range confirmations {
		if _, ok := known[c.ItemCode]; ok {
			continue
		}
		exists, err := uc.products.Exists(ctx, c.ItemCode)
		if err != nil {
			return nil, err
		}
		known[c.ItemCode] = exists
	}
	return known, nil
}
