// Package memory implementa los puertos de persistencia en memoria (desarrollo y pruebas).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/picking-api/internal/application/inventory"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Store guarda movimientos, stock, auditoría y catálogo en memoria.
// Las transacciones se serializan con un único mutex; Run trabaja sobre una copia
// y solo la publica si fn termina sin error.
type Store struct {
	mu   sync.RWMutex
	data *state
}

type state struct {
	moves    map[string]*entity.Move
	order    []string // ids en orden de creación
	stock    map[entity.StockKey]*entity.StockEntry
	audit    []*entity.Audit
	products map[string]entity.Product
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{data: newState()}
}

func newState() *state {
	return &state{
		moves:    make(map[string]*entity.Move),
		stock:    make(map[entity.StockKey]*entity.StockEntry),
		products: make(map[string]entity.Product),
	}
}

func (s *state) clone() *state {
	c := &state{
		moves:    make(map[string]*entity.Move, len(s.moves)),
		order:    append([]string(nil), s.order...),
		stock:    make(map[entity.StockKey]*entity.StockEntry, len(s.stock)),
		audit:    append([]*entity.Audit(nil), s.audit...), // las entradas son inmutables
		products: s.products,
	}
	for id, m := range s.moves {
		c.moves[id] = m.Clone()
	}
	for k, e := range s.stock {
		cp := *e
		c.stock[k] = &cp
	}
	return c
}

// Run ejecuta fn con repositorios atados a una copia del estado. Error ⇒ la copia se descarta.
func (s *Store) Run(ctx context.Context, fn func(
	moveRepo repository.MoveRepository,
	stockRepo repository.StockRepository,
	auditRepo repository.AuditRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.data.clone()
	if err := fn(&MoveRepo{tx: work}, &StockRepo{tx: work}, &AuditRepo{tx: work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.data = work
	return nil
}

// Moves repositorio de lectura sobre el estado confirmado.
func (s *Store) Moves() *MoveRepo { return &MoveRepo{store: s} }

// Stock repositorio de lectura sobre el estado confirmado.
func (s *Store) Stock() *StockRepo { return &StockRepo{store: s} }

// Audit repositorio de lectura sobre el estado confirmado.
func (s *Store) Audit() *AuditRepo { return &AuditRepo{store: s} }

// Products catálogo en memoria.
func (s *Store) Products() *ProductRepo { return &ProductRepo{store: s} }

// SeedProducts registra productos en el catálogo.
func (s *Store) SeedProducts(products ...entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make(map[string]entity.Product, len(s.data.products)+len(products))
	for k, v := range s.data.products {
		next[k] = v
	}
	for _, p := range products {
		next[p.ItemCode] = p
	}
	s.data.products = next
}

// SeedStock fija cantidades iniciales fuera del motor (fixtures y arranque en desarrollo).
func (s *Store) SeedStock(entries ...entity.StockEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		cp := e
		s.data.stock[e.Key()] = &cp
	}
}

// view resuelve el estado a usar: la copia de la tx o el estado confirmado bajo RLock.
func view(store *Store, tx *state, fn func(*state) error) error {
	if tx != nil {
		return fn(tx)
	}
	store.mu.RLock()
	defer store.mu.RUnlock()
	return fn(store.data)
}

// update igual que view pero con lock exclusivo fuera de tx.
func update(store *Store, tx *state, fn func(*state) error) error {
	if tx != nil {
		return fn(tx)
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	return fn(store.data)
}

func sortedStock(st *state) []*entity.StockEntry {
	out := make([]*entity.StockEntry, 0, len(st.stock))
	for _, e := range st.stock {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Location != out[j].Location {
			return out[i].Location < out[j].Location
		}
		return out[i].ItemCode < out[j].ItemCode
	})
	return out
}
