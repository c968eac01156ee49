package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// AuditAction acción registrada en la bitácora.
type AuditAction string

const (
	AuditActionCreated   AuditAction = "created"
	AuditActionConfirmed AuditAction = "confirmed"
)

// AuditEntityMove entidad auditada para movimientos.
const AuditEntityMove = "move"

// Audit registro inmutable de una llamada que cambió estado. Solo se agrega, nunca se modifica.
type Audit struct {
	ID        string
	Entity    string
	EntityID  string
	Action    AuditAction
	Payload   AuditPayload
	Actor     string
	Timestamp time.Time
}

// AuditPayload variante etiquetada por acción.
type AuditPayload interface {
	Action() AuditAction
}

// RequestedLine línea solicitada, tal como quedó al crear el movimiento.
type RequestedLine struct {
	ItemCode     string `json:"item_code"`
	Qty          int64  `json:"qty"`
	LocationFrom string `json:"location_from"`
	LocationTo   string `json:"location_to"`
}

// MoveCreated payload de la acción created.
type MoveCreated struct {
	DocType   DocType         `json:"doc_type"`
	DocNumber string          `json:"doc_number"`
	Lines     []RequestedLine `json:"lines"`
}

func (MoveCreated) Action() AuditAction { return AuditActionCreated }

// LineDelta delta efectivamente aplicado a una línea dentro de una confirmación.
type LineDelta struct {
	ItemCode          string `json:"item_code"`
	LocationFrom      string `json:"location_from"`
	LocationTo        string `json:"location_to"`
	Qty               int64  `json:"qty"`
	QtyConfirmed      int64  `json:"qty_confirmed"`
	QtyConfirmedTotal int64  `json:"qty_confirmed_total"`
	QtyPendingTotal   int64  `json:"qty_pending_total"`
}

// MoveConfirmed payload de la acción confirmed.
type MoveConfirmed struct {
	Status MoveStatus  `json:"status"`
	Lines  []LineDelta `json:"lines"`
}

func (MoveConfirmed) Action() AuditAction { return AuditActionConfirmed }

type taggedPayload struct {
	Kind AuditAction     `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// MarshalAuditPayload serializa el payload con su etiqueta para almacenamiento (JSONB).
func MarshalAuditPayload(p AuditPayload) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal audit payload: %w", err)
	}
	return json.Marshal(taggedPayload{Kind: p.Action(), Data: data})
}

// UnmarshalAuditPayload reconstruye la variante a partir de su forma serializada.
func UnmarshalAuditPayload(raw []byte) (AuditPayload, error) {
	var t taggedPayload
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("unmarshal audit payload: %w", err)
	}
	switch t.Kind {
	case AuditActionCreated:
		var p MoveCreated
		if err := json.Unmarshal(t.Data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal created payload: %w", err)
		}
		return p, nil
	case AuditActionConfirmed:
		var p MoveConfirmed
		if err := json.Unmarshal(t.Data, &p); err != nil {
			return nil, fmt.Errorf("unmarshal confirmed payload: %w", err)
		}
		return p, nil
	}
	return nil, fmt.Errorf("audit payload desconocido: %q", t.Kind)
}
