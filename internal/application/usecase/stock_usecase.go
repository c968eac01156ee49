package usecase

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/picking-api/internal/application/dto"
	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

// Límites de los listados de solo lectura.
const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// StockUseCase consultas del libro de stock (solo lectura, fuera de transacción).
type StockUseCase struct {
	repo repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// List lista filas ordenadas por ubicación e ítem. limit 0 usa el valor por defecto; fuera de [1, 500] es inválido.
func (uc *StockUseCase) List(ctx context.Context, itemCode, location string, limit int) (*dto.StockListResponse, error) {
	limit, err := listLimit(limit)
	if err != nil {
		return nil, err
	}
	entries, err := uc.repo.List(ctx, repository.StockFilter{
		ItemCode: normalize(itemCode),
		Location: normalize(location),
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	out := &dto.StockListResponse{Items: make([]dto.StockResponse, 0, len(entries)), Limit: limit}
	for _, e := range entries {
		out.Items = append(out.Items, dto.ToStockResponse(e))
	}
	return out, nil
}

// Get devuelve la cantidad de un ítem en una ubicación; sin fila responde cero.
func (uc *StockUseCase) Get(ctx context.Context, itemCode, location string) (*dto.StockResponse, error) {
	itemCode, location = normalize(itemCode), normalize(location)
	if itemCode == "" || location == "" {
		return nil, domain.Validation("INVALID_STOCK_KEY", "item_code y location son requeridos")
	}
	e, err := uc.repo.Get(ctx, itemCode, location)
	if err != nil {
		return nil, err
	}
	out := dto.ToStockResponse(e)
	return &out, nil
}

func listLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultListLimit, nil
	}
	if limit < 1 || limit > MaxListLimit {
		return 0, domain.Validation("INVALID_LIMIT", "limit debe estar entre 1 y %d", MaxListLimit)
	}
	return limit, nil
}

func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
