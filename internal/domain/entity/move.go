package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/picking-api/internal/domain"
)

// DocType tipo de documento de un movimiento.
type DocType string

// Tipos de documento soportados.
const (
	DocTypePO DocType = "PO" // orden de compra (entrada)
	DocTypeSO DocType = "SO" // orden de venta (salida)
	DocTypeTR DocType = "TR" // traslado entre ubicaciones
	DocTypeRT DocType = "RT" // devolución
)

// MoveType tipo derivado del documento.
type MoveType string

const (
	MoveTypeInbound  MoveType = "inbound"
	MoveTypeOutbound MoveType = "outbound"
	MoveTypeTransfer MoveType = "transfer"
	MoveTypeReturn   MoveType = "return"
)

// MoveStatus estado del ciclo de vida: draft → pending → approved (terminal).
type MoveStatus string

const (
	MoveStatusDraft    MoveStatus = "draft"
	MoveStatusPending  MoveStatus = "pending"
	MoveStatusApproved MoveStatus = "approved"
)

// DefaultLocation ubicación usada cuando la línea no indica origen/destino.
const DefaultLocation = "MAIN"

// MaxDocNumberLen longitud máxima de doc_number y de las ubicaciones.
const MaxDocNumberLen = 64

var moveTypes = map[DocType]MoveType{
	DocTypePO: MoveTypeInbound,
	DocTypeSO: MoveTypeOutbound,
	DocTypeTR: MoveTypeTransfer,
	DocTypeRT: MoveTypeReturn,
}

// ParseDocType valida el tipo de documento.
func ParseDocType(s string) (DocType, error) {
	dt := DocType(s)
	if _, ok := moveTypes[dt]; !ok {
		return "", domain.Validation(domain.CodeInvalidDocType, "tipo de documento inválido: %q", s)
	}
	return dt, nil
}

// MoveType devuelve el tipo derivado (inbound, outbound, transfer, return).
func (d DocType) MoveType() MoveType {
	return moveTypes[d]
}

// LineKey clave única de una línea dentro de un movimiento.
type LineKey struct {
	ItemCode     string
	LocationFrom string
	LocationTo   string
}

// MoveLine línea solicitada de un movimiento. Solo el motor de confirmación la muta.
type MoveLine struct {
	ID           string
	MoveID       string
	Position     int
	ItemCode     string
	Qty          int64 // cantidad solicitada, fija desde la creación
	QtyConfirmed int64 // acumulada, nunca decrece
	LocationFrom string
	LocationTo   string
}

// Key devuelve la clave (item_code, location_from, location_to).
func (l MoveLine) Key() LineKey {
	return LineKey{ItemCode: l.ItemCode, LocationFrom: l.LocationFrom, LocationTo: l.LocationTo}
}

// Pending cantidad aún sin confirmar.
func (l MoveLine) Pending() int64 {
	return l.Qty - l.QtyConfirmed
}

// Move documento de movimiento de bodega con sus líneas.
type Move struct {
	ID         string
	DocType    DocType
	Type       MoveType
	DocNumber  string
	Status     MoveStatus
	CreatedBy  string
	ApprovedBy *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Lines      []MoveLine
}

// LineInput línea solicitada al crear un movimiento.
type LineInput struct {
	ItemCode     string
	Qty          int64
	LocationFrom string
	LocationTo   string
}

// NewMove valida y construye un movimiento en estado draft con qty_confirmed = 0 en cada línea.
// No verifica unicidad de docNumber.
func NewMove(docType, docNumber string, lines []LineInput, createdBy string, now time.Time) (*Move, error) {
	dt, err := ParseDocType(docType)
	if err != nil {
		return nil, err
	}
	if docNumber == "" || len(docNumber) > MaxDocNumberLen {
		return nil, domain.Validation(domain.CodeInvalidDocNumber, "doc_number debe tener entre 1 y %d caracteres", MaxDocNumberLen)
	}

	move := &Move{
		ID:        uuid.New().String(),
		DocType:   dt,
		Type:      dt.MoveType(),
		DocNumber: docNumber,
		Status:    MoveStatusDraft,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
		Lines:     make([]MoveLine, 0, len(lines)),
	}

	seen := make(map[LineKey]struct{}, len(lines))
	for i, in := range lines {
		line := MoveLine{
			ID:           uuid.New().String(),
			MoveID:       move.ID,
			Position:     i,
			ItemCode:     in.ItemCode,
			Qty:          in.Qty,
			LocationFrom: LocationOrDefault(in.LocationFrom),
			LocationTo:   LocationOrDefault(in.LocationTo),
		}
		if line.ItemCode == "" {
			return nil, domain.Validation(domain.CodeInvalidLine, "línea %d: item_code es requerido", i+1)
		}
		if line.Qty <= 0 {
			return nil, domain.Validation(domain.CodeInvalidLine, "línea %d: qty debe ser positiva", i+1)
		}
		if len(line.LocationFrom) > MaxDocNumberLen || len(line.LocationTo) > MaxDocNumberLen {
			return nil, domain.Validation(domain.CodeInvalidLine, "línea %d: ubicación demasiado larga", i+1)
		}
		key := line.Key()
		if _, dup := seen[key]; dup {
			return nil, domain.Validation(domain.CodeDuplicateLineKey,
				"línea duplicada para %s (%s → %s)", key.ItemCode, key.LocationFrom, key.LocationTo)
		}
		seen[key] = struct{}{}
		move.Lines = append(move.Lines, line)
	}
	return move, nil
}

// FindLine busca la línea por clave exacta. Devuelve el índice o -1.
func (m *Move) FindLine(key LineKey) int {
	for i := range m.Lines {
		if m.Lines[i].Key() == key {
			return i
		}
	}
	return -1
}

// Clone copia profunda (las líneas no se comparten).
func (m *Move) Clone() *Move {
	if m == nil {
		return nil
	}
	c := *m
	if m.ApprovedBy != nil {
		by := *m.ApprovedBy
		c.ApprovedBy = &by
	}
	c.Lines = append([]MoveLine(nil), m.Lines...)
	return &c
}

// LocationOrDefault aplica la ubicación por defecto cuando loc está vacío.
func LocationOrDefault(loc string) string {
	if loc == "" {
		return DefaultLocation
	}
	return loc
}
