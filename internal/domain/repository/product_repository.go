package repository

import (
	"context"

	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// ProductRepository puerto de solo lectura hacia el catálogo de productos (DIP).
type ProductRepository interface {
	Exists(ctx context.Context, itemCode string) (bool, error)
}

// ProductCatalog alta y consulta de productos. El motor solo usa Exists.
type ProductCatalog interface {
	ProductRepository
	// GetByItemCode devuelve nil, nil si el producto no existe.
	GetByItemCode(ctx context.Context, itemCode string) (*entity.Product, error)
	Upsert(ctx context.Context, p entity.Product) error
}
