package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// MoveLineRequest línea solicitada. Las cantidades llegan como decimal y se exige que sean enteras.
type MoveLineRequest struct {
	ItemCode     string          `json:"item_code"`
	Qty          decimal.Decimal `json:"qty"`
	LocationFrom string          `json:"location_from,omitempty"`
	LocationTo   string          `json:"location_to,omitempty"`
}

// CreateMoveRequest body para POST /api/moves.
type CreateMoveRequest struct {
	DocType   string            `json:"doc_type"` // PO | SO | TR | RT
	DocNumber string            `json:"doc_number"`
	Lines     []MoveLineRequest `json:"lines"`
}

// ConfirmationRequest confirmación de una línea, identificada por (item_code, location_from, location_to).
type ConfirmationRequest struct {
	ItemCode     string           `json:"item_code"`
	Qty          decimal.Decimal  `json:"qty"`                     // obligatorio, también junto a qty_confirmed
	QtyConfirmed *decimal.Decimal `json:"qty_confirmed,omitempty"` // si falta se aplica qty
	LocationFrom string           `json:"location_from,omitempty"`
	LocationTo   string           `json:"location_to,omitempty"`
}

// ConfirmMoveRequest body para POST /api/moves/:id/confirm.
type ConfirmMoveRequest struct {
	Confirmations []ConfirmationRequest `json:"confirmations"`
}

// MoveLineResponse línea con sus acumulados.
type MoveLineResponse struct {
	ID           string `json:"id"`
	ItemCode     string `json:"item_code"`
	Qty          int64  `json:"qty"`
	QtyConfirmed int64  `json:"qty_confirmed"`
	QtyPending   int64  `json:"qty_pending"`
	LocationFrom string `json:"location_from"`
	LocationTo   string `json:"location_to"`
}

// MoveResponse movimiento con sus líneas.
type MoveResponse struct {
	ID         string             `json:"id"`
	DocType    string             `json:"doc_type"`
	MoveType   string             `json:"move_type"`
	DocNumber  string             `json:"doc_number"`
	Status     string             `json:"status"`
	CreatedBy  string             `json:"created_by"`
	ApprovedBy *string            `json:"approved_by,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	Lines      []MoveLineResponse `json:"lines"`
}

// MoveListResponse página de movimientos.
type MoveListResponse struct {
	Items []MoveResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ToMoveResponse mapea la entidad a la respuesta HTTP.
func ToMoveResponse(m *entity.Move) MoveResponse {
	lines := make([]MoveLineResponse, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, MoveLineResponse{
			ID:           l.ID,
			ItemCode:     l.ItemCode,
			Qty:          l.Qty,
			QtyConfirmed: l.QtyConfirmed,
			QtyPending:   l.Pending(),
			LocationFrom: l.LocationFrom,
			LocationTo:   l.LocationTo,
		})
	}
	return MoveResponse{
		ID:         m.ID,
		DocType:    string(m.DocType),
		MoveType:   string(m.Type),
		DocNumber:  m.DocNumber,
		Status:     string(m.Status),
		CreatedBy:  m.CreatedBy,
		ApprovedBy: m.ApprovedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		Lines:      lines,
	}
}
