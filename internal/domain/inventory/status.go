package inventory

import (
	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// ComputeStatus deriva el estado de un movimiento a partir de sus líneas.
// approved ⇔ hay líneas y todas están completas; pending si hubo alguna confirmación; draft en otro caso.
func ComputeStatus(lines []entity.MoveLine) entity.MoveStatus {
	if len(lines) == 0 {
		return entity.MoveStatusDraft
	}
	complete, touched := true, false
	for _, l := range lines {
		if l.QtyConfirmed != l.Qty {
			complete = false
		}
		if l.QtyConfirmed > 0 {
			touched = true
		}
	}
	switch {
	case complete:
		return entity.MoveStatusApproved
	case touched:
		return entity.MoveStatusPending
	}
	return entity.MoveStatusDraft
}

// CheckLineInvariants verifica 0 ≤ qty_confirmed ≤ qty en todas las líneas.
// Una violación indica un defecto, no una entrada inválida.
func CheckLineInvariants(lines []entity.MoveLine) error {
	for _, l := range lines {
		if l.QtyConfirmed < 0 || l.QtyConfirmed > l.Qty {
			return domain.NewError(domain.ErrInvariantViolation, domain.CodeInvariantViolation,
				"línea %s (%s): qty_confirmed %d fuera de [0, %d]", l.ID, l.ItemCode, l.QtyConfirmed, l.Qty)
		}
	}
	return nil
}
