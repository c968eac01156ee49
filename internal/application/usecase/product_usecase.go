package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/jhoicas/picking-api/internal/application/dto"
	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

const maxItemNameLen = 200

// ProductUseCase alta y consulta del catálogo contra el que se validan las confirmaciones.
type ProductUseCase struct {
	repo repository.ProductCatalog
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductCatalog) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Register crea el producto o actualiza su nombre si ya existe.
func (uc *ProductUseCase) Register(ctx context.Context, in dto.RegisterProductRequest) (*dto.ProductResponse, error) {
	p := entity.Product{ItemCode: normalize(in.ItemCode), ItemName: normalize(in.ItemName)}
	if p.ItemCode == "" || len(p.ItemCode) > entity.MaxDocNumberLen {
		return nil, domain.Validation(domain.CodeInvalidItemCode, "item_code debe tener entre 1 y %d caracteres", entity.MaxDocNumberLen)
	}
	if utf8.RuneCountInString(p.ItemName) > maxItemNameLen {
		return nil, domain.Validation(domain.CodeInvalidItemName, "item_name admite hasta %d caracteres", maxItemNameLen)
	}
	if err := uc.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(&p)
	return &out, nil
}

// Get devuelve el producto o NotFound.
func (uc *ProductUseCase) Get(ctx context.Context, itemCode string) (*dto.ProductResponse, error) {
	itemCode = normalize(itemCode)
	p, err := uc.repo.GetByItemCode(ctx, itemCode)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound(domain.CodeProductNotFound, "producto %s no existe", itemCode)
	}
	out := dto.ToProductResponse(p)
	return &out, nil
}
