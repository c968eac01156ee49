package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un ítem en una ubicación. Sin fila ⇒ cantidad cero.
func (r *StockRepo) Get(ctx context.Context, itemCode, location string) (*entity.StockEntry, error) {
	query := `
		SELECT item_code, location, qty, updated_at
		FROM stock WHERE item_code = $1 AND location = $2`
	return r.getOne(ctx, query, itemCode, location, "get stock")
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
// Si la fila no existe la inserta en cero primero para tener algo que bloquear; si la tx
// se revierte la fila desaparece con ella.
func (r *StockRepo) GetForUpdate(ctx context.Context, itemCode, location string) (*entity.StockEntry, error) {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock (item_code, location, qty, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (item_code, location) DO NOTHING`, itemCode, location)
	if err != nil {
		return nil, fmt.Errorf("ensure stock row: %w", err)
	}
	query := `
		SELECT item_code, location, qty, updated_at
		FROM stock WHERE item_code = $1 AND location = $2
		FOR UPDATE`
	return r.getOne(ctx, query, itemCode, location, "get stock for update")
}

func (r *StockRepo) getOne(ctx context.Context, query, itemCode, location, op string) (*entity.StockEntry, error) {
	var s entity.StockEntry
	err := r.q.QueryRow(ctx, query, itemCode, location).Scan(&s.ItemCode, &s.Location, &s.Qty, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockEntry{ItemCode: itemCode, Location: location}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad (por ítem y ubicación). El CHECK (qty >= 0) de la tabla
// es la última barrera si algo llegara a escribir un negativo.
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.StockEntry) error {
	query := `
		INSERT INTO stock (item_code, location, qty, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (item_code, location)
		DO UPDATE SET qty = EXCLUDED.qty, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, stock.ItemCode, stock.Location, stock.Qty, stock.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// List lista filas de stock ordenadas por ubicación e ítem.
func (r *StockRepo) List(ctx context.Context, filter repository.StockFilter) ([]*entity.StockEntry, error) {
	var (
		where []string
		args  []any
	)
	if filter.ItemCode != "" {
		args = append(args, filter.ItemCode)
		where = append(where, fmt.Sprintf("item_code = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, filter.Location)
		where = append(where, fmt.Sprintf("location = $%d", len(args)))
	}
	query := `SELECT item_code, location, qty, updated_at FROM stock`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY location, item_code LIMIT $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var s entity.StockEntry
		if err := rows.Scan(&s.ItemCode, &s.Location, &s.Qty, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
