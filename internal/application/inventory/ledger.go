package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	domaininv "github.com/jhoicas/picking-api/internal/domain/inventory"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

// Ledger libro de stock por (ítem, ubicación) atado al repositorio de una transacción.
// Nunca se usa fuera de TxRunner.Run.
type Ledger struct {
	repo repository.StockRepository
	now  time.Time
}

// NewLedger construye el libro sobre el repositorio de la transacción en curso.
func NewLedger(repo repository.StockRepository, now time.Time) *Ledger {
	return &Ledger{repo: repo, now: now}
}

// GetOrCreate devuelve la fila existente o una entrada implícita en cero.
// La fila solo se persiste en el primer ajuste.
func (l *Ledger) GetOrCreate(ctx context.Context, itemCode, location string) (*entity.StockEntry, error) {
	return l.repo.Get(ctx, itemCode, location)
}

// Adjust aplica delta a la cantidad. Falla con InsufficientStock si el resultado sería negativo.
func (l *Ledger) Adjust(ctx context.Context, itemCode, location string, delta int64) (*entity.StockEntry, error) {
	entries, err := l.Apply(ctx, []domaininv.Adjustment{{ItemCode: itemCode, Location: location, Delta: delta}})
	if err != nil {
		return nil, err
	}
	return entries[0], nil
}

// Apply aplica un grupo de ajustes como unidad: bloquea todas las filas (en orden de clave),
// verifica que ninguna quede negativa y solo entonces escribe. Si un tramo falla no se escribe ninguno.
func (l *Ledger) Apply(ctx context.Context, adjustments []domaininv.Adjustment) ([]*entity.StockEntry, error) {
	order := make([]int, len(adjustments))
	for i := range order {
		order[i] = i
	}
	// Orden de bloqueo estable para reducir deadlocks entre traslados cruzados.
	sort.SliceStable(order, func(a, b int) bool {
		x, y := adjustments[order[a]], adjustments[order[b]]
		if x.ItemCode != y.ItemCode {
			return x.ItemCode < y.ItemCode
		}
		return x.Location < y.Location
	})

	locked := make(map[entity.StockKey]*entity.StockEntry, len(adjustments))
	for _, i := range order {
		adj := adjustments[i]
		key := entity.StockKey{ItemCode: adj.ItemCode, Location: adj.Location}
		if _, ok := locked[key]; ok {
			continue
		}
		entry, err := l.repo.GetForUpdate(ctx, adj.ItemCode, adj.Location)
		if err != nil {
			return nil, err
		}
		locked[key] = entry
	}

	// Validar en orden de envío para que el error nombre el primer tramo que falla.
	projected := make(map[entity.StockKey]int64, len(locked))
	for k, e := range locked {
		projected[k] = e.Qty
	}
	for _, adj := range adjustments {
		key := entity.StockKey{ItemCode: adj.ItemCode, Location: adj.Location}
		next := projected[key] + adj.Delta
		if next < 0 {
			return nil, domain.InsufficientStock(adj.ItemCode, adj.Location, projected[key], -adj.Delta)
		}
		projected[key] = next
	}

	out := make([]*entity.StockEntry, len(adjustments))
	written := make(map[entity.StockKey]bool, len(locked))
	for i, adj := range adjustments {
		key := entity.StockKey{ItemCode: adj.ItemCode, Location: adj.Location}
		entry := locked[key]
		if !written[key] {
			entry.Qty = projected[key]
			entry.UpdatedAt = l.now
			if err := l.repo.Upsert(ctx, entry); err != nil {
				return nil, err
			}
			written[key] = true
		}
		out[i] = entry
	}
	return out, nil
}
