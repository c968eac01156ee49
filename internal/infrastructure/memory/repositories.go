package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

var (
	_ repository.MoveRepository  = (*MoveRepo)(nil)
	_ repository.StockRepository = (*StockRepo)(nil)
	_ repository.AuditRepository = (*AuditRepo)(nil)
	_ repository.ProductCatalog  = (*ProductRepo)(nil)
)

// MoveRepo movimientos en memoria. Devuelve siempre copias.
type MoveRepo struct {
	store *Store
	tx    *state
}

func (r *MoveRepo) Create(_ context.Context, move *entity.Move) error {
	return update(r.store, r.tx, func(st *state) error {
		if _, ok := st.moves[move.ID]; ok {
			return fmt.Errorf("insert move: id %s duplicado", move.ID)
		}
		st.moves[move.ID] = move.Clone()
		st.order = append(st.order, move.ID)
		return nil
	})
}

func (r *MoveRepo) GetByID(_ context.Context, id string) (*entity.Move, error) {
	var out *entity.Move
	err := view(r.store, r.tx, func(st *state) error {
		out = st.moves[id].Clone()
		return nil
	})
	return out, err
}

// GetForUpdate dentro de Store.Run el mutex ya serializa la tx completa.
func (r *MoveRepo) GetForUpdate(ctx context.Context, id string) (*entity.Move, error) {
	return r.GetByID(ctx, id)
}

func (r *MoveRepo) UpdateLineConfirmed(_ context.Context, line *entity.MoveLine) error {
	return update(r.store, r.tx, func(st *state) error {
		m, ok := st.moves[line.MoveID]
		if !ok {
			return fmt.Errorf("update move line: movimiento %s no existe", line.MoveID)
		}
		for i := range m.Lines {
			if m.Lines[i].ID == line.ID {
				m.Lines[i].QtyConfirmed = line.QtyConfirmed
				return nil
			}
		}
		return fmt.Errorf("update move line: línea %s no existe", line.ID)
	})
}

func (r *MoveRepo) UpdateStatus(_ context.Context, move *entity.Move) error {
	return update(r.store, r.tx, func(st *state) error {
		m, ok := st.moves[move.ID]
		if !ok {
			return fmt.Errorf("update move status: movimiento %s no existe", move.ID)
		}
		m.Status = move.Status
		if move.ApprovedBy != nil {
			by := *move.ApprovedBy
			m.ApprovedBy = &by
		}
		m.UpdatedAt = move.UpdatedAt
		return nil
	})
}

func (r *MoveRepo) List(_ context.Context, filter repository.MoveFilter) ([]*entity.Move, error) {
	var out []*entity.Move
	err := view(r.store, r.tx, func(st *state) error {
		skipped := 0
		for i := len(st.order) - 1; i >= 0; i-- {
			m := st.moves[st.order[i]]
			if filter.Status != "" && m.Status != filter.Status {
				continue
			}
			if filter.DocType != "" && m.DocType != filter.DocType {
				continue
			}
			if skipped < filter.Offset {
				skipped++
				continue
			}
			if filter.Limit > 0 && len(out) >= filter.Limit {
				break
			}
			out = append(out, m.Clone())
		}
		return nil
	})
	return out, err
}

// StockRepo libro de stock en memoria.
type StockRepo struct {
	store *Store
	tx    *state
}

func (r *StockRepo) Get(_ context.Context, itemCode, location string) (*entity.StockEntry, error) {
	var out *entity.StockEntry
	err := view(r.store, r.tx, func(st *state) error {
		if e, ok := st.stock[entity.StockKey{ItemCode: itemCode, Location: location}]; ok {
			cp := *e
			out = &cp
			return nil
		}
		out = &entity.StockEntry{ItemCode: itemCode, Location: location}
		return nil
	})
	return out, err
}

func (r *StockRepo) GetForUpdate(ctx context.Context, itemCode, location string) (*entity.StockEntry, error) {
	return r.Get(ctx, itemCode, location)
}

func (r *StockRepo) Upsert(_ context.Context, stock *entity.StockEntry) error {
	return update(r.store, r.tx, func(st *state) error {
		cp := *stock
		st.stock[stock.Key()] = &cp
		return nil
	})
}

func (r *StockRepo) List(_ context.Context, filter repository.StockFilter) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	err := view(r.store, r.tx, func(st *state) error {
		for _, e := range sortedStock(st) {
			if filter.ItemCode != "" && e.ItemCode != filter.ItemCode {
				continue
			}
			if filter.Location != "" && e.Location != filter.Location {
				continue
			}
			if filter.Limit > 0 && len(out) >= filter.Limit {
				break
			}
			cp := *e
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// AuditRepo bitácora en memoria (append-only).
type AuditRepo struct {
	store *Store
	tx    *state
}

func (r *AuditRepo) Append(_ context.Context, entry *entity.Audit) error {
	return update(r.store, r.tx, func(st *state) error {
		cp := *entry
		st.audit = append(st.audit, &cp)
		return nil
	})
}

func (r *AuditRepo) List(_ context.Context, filter repository.AuditFilter) ([]*entity.Audit, error) {
	var out []*entity.Audit
	err := view(r.store, r.tx, func(st *state) error {
		for i := len(st.audit) - 1; i >= 0; i-- {
			a := st.audit[i]
			if filter.EntityID != "" && a.EntityID != filter.EntityID {
				continue
			}
			if filter.Action != "" && a.Action != filter.Action {
				continue
			}
			if filter.Limit > 0 && len(out) >= filter.Limit {
				break
			}
			cp := *a
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// ProductRepo catálogo en memoria.
type ProductRepo struct {
	store *Store
}

func (r *ProductRepo) Exists(_ context.Context, itemCode string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.data.products[itemCode]
	return ok, nil
}

func (r *ProductRepo) GetByItemCode(_ context.Context, itemCode string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.data.products[itemCode]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) Upsert(_ context.Context, p entity.Product) error {
	r.store.SeedProducts(p)
	return nil
}
