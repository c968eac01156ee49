package inventory

import (
	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// Adjustment ajuste firmado sobre una fila del libro de stock.
type Adjustment struct {
	ItemCode string
	Location string
	Delta    int64
}

// StockEffects aplica la tabla de direcciones del tipo de documento (servicio de dominio):
//
//	PO (entrada):   +amount en location_to
//	SO (salida):    −amount en location_from
//	RT (devolución): +amount en location_to
//	TR (traslado):  −amount en location_from y +amount en location_to, en ese orden
//
// Los ajustes de un traslado forman un par atómico: el llamador los aplica en la misma transacción.
func StockEffects(docType entity.DocType, line entity.MoveLine, amount int64) ([]Adjustment, error) {
	switch docType {
	case entity.DocTypePO, entity.DocTypeRT:
		return []Adjustment{{ItemCode: line.ItemCode, Location: line.LocationTo, Delta: amount}}, nil
	case entity.DocTypeSO:
		return []Adjustment{{ItemCode: line.ItemCode, Location: line.LocationFrom, Delta: -amount}}, nil
	case entity.DocTypeTR:
		if line.LocationFrom == line.LocationTo {
			return nil, domain.Validation(domain.CodeSameLocationTransfer,
				"traslado de %s con origen y destino iguales (%s)", line.ItemCode, line.LocationFrom)
		}
		return []Adjustment{
			{ItemCode: line.ItemCode, Location: line.LocationFrom, Delta: -amount},
			{ItemCode: line.ItemCode, Location: line.LocationTo, Delta: amount},
		}, nil
	}
	return nil, domain.Validation(domain.CodeInvalidDocType, "tipo de documento inválido: %q", docType)
}
