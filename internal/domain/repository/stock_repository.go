package repository

import (
	"context"

	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// StockFilter filtros del listado de stock.
type StockFilter struct {
	ItemCode string
	Location string
	Limit    int
}

// StockRepository define el puerto para consultar/actualizar stock por ítem+ubicación.
// Las escrituras solo ocurren dentro de transacciones del motor.
type StockRepository interface {
	// Get devuelve la fila o una entrada implícita con cantidad cero (no persistida).
	Get(ctx context.Context, itemCode, location string) (*entity.StockEntry, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, itemCode, location string) (*entity.StockEntry, error)
	Upsert(ctx context.Context, stock *entity.StockEntry) error
	List(ctx context.Context, filter StockFilter) ([]*entity.StockEntry, error)
}
