package repository

import (
	"context"

	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// MoveFilter filtros del listado de movimientos.
type MoveFilter struct {
	Status  entity.MoveStatus
	DocType entity.DocType
	Limit   int
	Offset  int
}

// MoveRepository define el puerto de persistencia para movimientos y sus líneas.
// GetByID y GetForUpdate devuelven (nil, nil) si el movimiento no existe.
type MoveRepository interface {
	Create(ctx context.Context, move *entity.Move) error
	GetByID(ctx context.Context, id string) (*entity.Move, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Move, error)
	UpdateLineConfirmed(ctx context.Context, line *entity.MoveLine) error
	UpdateStatus(ctx context.Context, move *entity.Move) error
	List(ctx context.Context, filter MoveFilter) ([]*entity.Move, error)
}
