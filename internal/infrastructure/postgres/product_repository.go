package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

var _ repository.ProductCatalog = (*ProductRepo)(nil)

// ProductRepo tabla products (catálogo).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Exists informa si el ítem está en el catálogo.
func (r *ProductRepo) Exists(ctx context.Context, itemCode string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE item_code = $1)`, itemCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product exists: %w", err)
	}
	return exists, nil
}

// GetByItemCode obtiene el producto o nil si no existe.
func (r *ProductRepo) GetByItemCode(ctx context.Context, itemCode string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, `SELECT item_code, item_name FROM products WHERE item_code = $1`, itemCode).
		Scan(&p.ItemCode, &p.ItemName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Upsert registra o renombra un producto.
func (r *ProductRepo) Upsert(ctx context.Context, p entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (item_code, item_name) VALUES ($1, $2)
		ON CONFLICT (item_code) DO UPDATE SET item_name = EXCLUDED.item_name`,
		p.ItemCode, p.ItemName)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}
