package inventory

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

var tracer = otel.Tracer("picking-api/inventory")

// MoveDeps dependencias del caso de uso. Publisher, Observer y Clock son opcionales.
type MoveDeps struct {
	TxRunner  TxRunner
	Moves     repository.MoveRepository // lecturas fuera de transacción
	Products  ProductChecker
	Publisher EventPublisher
	Observer  Observer
	Logger    zerolog.Logger
	Clock     func() time.Time
}

// MoveUseCase crea, consulta y confirma movimientos de bodega (PO, SO, TR, RT)
// contra el libro de stock, con una entrada de auditoría por llamada.
type MoveUseCase struct {
	txRunner  TxRunner
	moves     repository.MoveRepository
	products  ProductChecker
	publisher EventPublisher
	observer  Observer
	log       zerolog.Logger
	now       func() time.Time
}

// NewMoveUseCase construye el caso de uso.
func NewMoveUseCase(deps MoveDeps) *MoveUseCase {
	uc := &MoveUseCase{
		txRunner:  deps.TxRunner,
		moves:     deps.Moves,
		products:  deps.Products,
		publisher: deps.Publisher,
		observer:  deps.Observer,
		log:       deps.Logger,
		now:       deps.Clock,
	}
	if uc.publisher == nil {
		uc.publisher = noopPublisher{}
	}
	if uc.observer == nil {
		uc.observer = noopObserver{}
	}
	if uc.now == nil {
		uc.now = func() time.Time { return time.Now().UTC() }
	}
	return uc
}

// CreateMoveInput entrada para crear un movimiento.
type CreateMoveInput struct {
	DocType   string
	DocNumber string
	Lines     []entity.LineInput
	Actor     string
}

// CreateMove valida el documento, lo persiste en draft y registra la auditoría "created" en la misma tx.
func (uc *MoveUseCase) CreateMove(ctx context.Context, in CreateMoveInput) (*entity.Move, error) {
	ctx, span := tracer.Start(ctx, "inventory.CreateMove", trace.WithAttributes(
		attribute.String("move.doc_type", in.DocType),
		attribute.String("move.doc_number", in.DocNumber),
		attribute.Int("move.lines", len(in.Lines)),
	))
	defer span.End()

	now := uc.now()
	move, err := entity.NewMove(in.DocType, in.DocNumber, in.Lines, in.Actor, now)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		moveRepo repository.MoveRepository,
		_ repository.StockRepository,
		auditRepo repository.AuditRepository,
	) error {
		if err := moveRepo.Create(ctx, move); err != nil {
			return err
		}
		_, err := recordAudit(ctx, auditRepo, move, in.Actor, createdPayload(move), now)
		return err
	})
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("move.id", move.ID))

	uc.log.Info().
		Str("move_id", move.ID).
		Str("doc_type", string(move.DocType)).
		Str("doc_number", move.DocNumber).
		Int("lines", len(move.Lines)).
		Str("actor", in.Actor).
		Msg("movimiento creado")

	uc.publish(ctx, MoveEvent{
		EventType:  EventMoveCreated,
		MoveID:     move.ID,
		DocType:    move.DocType,
		DocNumber:  move.DocNumber,
		Status:     move.Status,
		Actor:      in.Actor,
		OccurredAt: now,
	})
	return move, nil
}

// GetMove devuelve el movimiento con sus líneas actuales.
func (uc *MoveUseCase) GetMove(ctx context.Context, id string) (*entity.Move, error) {
	move, err := uc.moves.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if move == nil {
		return nil, domain.NotFound(domain.CodeMoveNotFound, "movimiento %s no encontrado", id)
	}
	return move, nil
}

// ListMoves lista movimientos (más recientes primero).
func (uc *MoveUseCase) ListMoves(ctx context.Context, filter repository.MoveFilter) ([]*entity.Move, error) {
	if filter.Status != "" {
		switch filter.Status {
		case entity.MoveStatusDraft, entity.MoveStatusPending, entity.MoveStatusApproved:
		default:
			return nil, domain.Validation("INVALID_STATUS", "estado inválido: %q", filter.Status)
		}
	}
	if filter.DocType != "" {
		if _, err := entity.ParseDocType(string(filter.DocType)); err != nil {
			return nil, err
		}
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.moves.List(ctx, filter)
}

// publish envía el evento después del commit. Un fallo se registra pero no revierte nada.
func (uc *MoveUseCase) publish(ctx context.Context, event MoveEvent) {
	if err := uc.publisher.PublishMoveEvent(ctx, event); err != nil {
		uc.log.Warn().Err(err).
			Str("move_id", event.MoveID).
			Str("event_type", event.EventType).
			Msg("no se pudo publicar evento de movimiento")
	}
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if code := domain.CodeOf(err); code != "" {
		span.SetAttributes(attribute.String("error.code", code))
	}
}
