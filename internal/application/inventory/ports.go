package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el motor de conciliación: si fn devuelve error no queda ningún efecto.
// fn puede ejecutarse más de una vez (reintento ante conflicto de serialización), no debe tener
// efectos fuera de los repositorios recibidos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		moveRepo repository.MoveRepository,
		stockRepo repository.StockRepository,
		auditRepo repository.AuditRepository,
	) error) error
}

// ProductChecker consulta la existencia de un producto en el catálogo externo.
// Debe ser una consulta rápida (local o en caché): se resuelve antes de abrir la transacción.
type ProductChecker interface {
	Exists(ctx context.Context, itemCode string) (bool, error)
}

// MoveEvent evento publicado tras el commit de una creación o confirmación.
type MoveEvent struct {
	EventType  string             `json:"event_type"`
	MoveID     string             `json:"move_id"`
	DocType    entity.DocType     `json:"doc_type"`
	DocNumber  string             `json:"doc_number"`
	Status     entity.MoveStatus  `json:"status"`
	Actor      string             `json:"actor"`
	Lines      []entity.LineDelta `json:"lines,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// Tipos de evento.
const (
	EventMoveCreated   = "move.created"
	EventMoveConfirmed = "move.confirmed"
)

// EventPublisher publica eventos de movimientos (Kafka en producción). Nunca dentro de la tx.
type EventPublisher interface {
	PublishMoveEvent(ctx context.Context, event MoveEvent) error
}

// Observer recibe métricas del motor (Prometheus en producción).
type Observer interface {
	ObserveConfirm(docType entity.DocType, outcome string, elapsed time.Duration)
	ObserveStockAdjustment(docType entity.DocType, delta int64)
}

type noopPublisher struct{}

func (noopPublisher) PublishMoveEvent(context.Context, MoveEvent) error { return nil }

type noopObserver struct{}

func (noopObserver) ObserveConfirm(entity.DocType, string, time.Duration) {}
func (noopObserver) ObserveStockAdjustment(entity.DocType, int64)       {}
