package dto

import (
	"time"

	"github.com/jhoicas/picking-api/internal/domain/entity"
)

// AuditResponse entrada de la bitácora. Payload es MoveCreated o MoveConfirmed según Action.
type AuditResponse struct {
	ID        string    `json:"id"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Action    string    `json:"action"`
	Payload   any       `json:"payload"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"ts"`
}

// AuditListResponse listado de auditoría.
type AuditListResponse struct {
	Items []AuditResponse `json:"items"`
	Limit int             `json:"limit"`
}

// ToAuditResponse mapea la entrada de auditoría.
func ToAuditResponse(a *entity.Audit) AuditResponse {
	return AuditResponse{
		ID:        a.ID,
		Entity:    a.Entity,
		EntityID:  a.EntityID,
		Action:    string(a.Action),
		Payload:   a.Payload,
		Actor:     a.Actor,
		Timestamp: a.Timestamp,
	}
}
