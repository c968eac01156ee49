package entity

import "time"

// StockEntry cantidad disponible de un ítem en una ubicación. Clave única (item_code, location).
// Se crea en el primer ajuste y nunca se elimina; la cantidad puede llegar a cero.
type StockEntry struct {
	ItemCode  string
	Location  string
	Qty       int64
	UpdatedAt time.Time
}

// StockKey clave del libro de stock.
type StockKey struct {
	ItemCode string
	Location string
}

// Key devuelve la clave (item_code, location).
func (s StockEntry) Key() StockKey {
	return StockKey{ItemCode: s.ItemCode, Location: s.Location}
}
