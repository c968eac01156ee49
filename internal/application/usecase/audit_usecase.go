package usecase

import (
	"context"

	"github.com/jhoicas/picking-api/internal/application/dto"
	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

// AuditUseCase consulta de la bitácora.
type AuditUseCase struct {
	repo repository.AuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List devuelve entradas más recientes primero, filtrando por entity_id y acción.
func (uc *AuditUseCase) List(ctx context.Context, entityID, action string, limit int) (*dto.AuditListResponse, error) {
	limit, err := listLimit(limit)
	if err != nil {
		return nil, err
	}
	act := entity.AuditAction(action)
	switch act {
	case "", entity.AuditActionCreated, entity.AuditActionConfirmed:
	default:
		return nil, domain.Validation("INVALID_ACTION", "acción inválida: %q", action)
	}
	entries, err := uc.repo.List(ctx, repository.AuditFilter{EntityID: entityID, Action: act, Limit: limit})
	if err != nil {
		return nil, err
	}
	out := &dto.AuditListResponse{Items: make([]dto.AuditResponse, 0, len(entries)), Limit: limit}
	for _, a := range entries {
		out.Items = append(out.Items, dto.ToAuditResponse(a))
	}
	return out, nil
}
