package inventory

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/picking-api/internal/application/dto"
	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// CreateMoveFromRequest convierte el DTO (cantidades decimales, identificadores libres) y crea el movimiento.
func (uc *MoveUseCase) CreateMoveFromRequest(ctx context.Context, actor string, in dto.CreateMoveRequest) (*entity.Move, error) {
	lines := make([]entity.LineInput, 0, len(in.Lines))
	for i, l := range in.Lines {
		qty, err := wholeQuantity(l.Qty, "lines[%d].qty", i)
		if err != nil {
			return nil, err
		}
		lines = append(lines, entity.LineInput{
			ItemCode:     normalize(l.ItemCode),
			Qty:          qty,
			LocationFrom: normalize(l.LocationFrom),
			LocationTo:   normalize(l.LocationTo),
		})
	}
	return uc.CreateMove(ctx, CreateMoveInput{
		DocType:   strings.ToUpper(strings.TrimSpace(in.DocType)),
		DocNumber: normalize(in.DocNumber),
		Lines:     lines,
		Actor:     actor,
	})
}

// ConfirmMoveFromRequest convierte el DTO y confirma el lote.
func (uc *MoveUseCase) ConfirmMoveFromRequest(ctx context.Context, moveID, actor string, in dto.ConfirmMoveRequest) (*entity.Move, error) {
	confirmations := make([]Confirmation, 0, len(in.Confirmations))
	for i, c := range in.Confirmations {
		if c.QtyConfirmed != nil && c.Qty.IsZero() {
			return nil, domain.Validation(domain.CodeInvalidLine,
				"confirmations[%d].qty: obligatorio cuando se envía qty_confirmed", i)
		}
		qty, err := wholeQuantity(c.Qty, "confirmations[%d].qty", i)
		if err != nil {
			return nil, err
		}
		conf := Confirmation{
			ItemCode:     normalize(c.ItemCode),
			Qty:          qty,
			LocationFrom: normalize(c.LocationFrom),
			LocationTo:   normalize(c.LocationTo),
		}
		if c.QtyConfirmed != nil {
			v, err := wholeQuantity(*c.QtyConfirmed, "confirmations[%d].qty_confirmed", i)
			if err != nil {
				return nil, err
			}
			conf.QtyConfirmed = &v
		}
		confirmations = append(confirmations, conf)
	}
	return uc.ConfirmMove(ctx, ConfirmMoveInput{MoveID: moveID, Confirmations: confirmations, Actor: actor})
}

// wholeQuantity rechaza cantidades fraccionarias o fuera de int64; nunca redondea.
func wholeQuantity(d decimal.Decimal, field string, idx int) (int64, error) {
	if !d.IsInteger() {
		return 0, domain.Validation(domain.CodeFractionalQuantity, field+": la cantidad debe ser entera (%s)", idx, d.String())
	}
	bi := d.BigInt()
	if !bi.IsInt64() {
		return 0, domain.Validation(domain.CodeInvalidLine, field+": cantidad fuera de rango (%s)", idx, d.String())
	}
	return bi.Int64(), nil
}

// normalize recorta espacios y lleva a forma NFC, así "Ñ" compuesta y descompuesta son la misma clave.
func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
