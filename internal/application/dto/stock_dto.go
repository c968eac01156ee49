package dto

import (
	"time"

	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// StockResponse cantidad de un ítem en una ubicación.
type StockResponse struct {
	ItemCode  string     `json:"item_code"`
	Location  string     `json:"location"`
	Qty       int64      `json:"qty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"` // vacío si la fila aún no existe
}

// StockListResponse listado de stock.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Limit int             `json:"limit"`
}

// ToStockResponse mapea la entrada del libro.
func ToStockResponse(e *entity.StockEntry) StockResponse {
	out := StockResponse{ItemCode: e.ItemCode, Location: e.Location, Qty: e.Qty}
	if !e.UpdatedAt.IsZero() {
		ts := e.UpdatedAt
		out.UpdatedAt = &ts
	}
	return out
}
