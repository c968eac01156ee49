package dto

import "github.com/jhoicas/picking-api/internal/domain/entity"

// RegisterProductRequest alta o renombre de un producto del catálogo.
type RegisterProductRequest struct {
	ItemCode string `json:"item_code"`
	ItemName string `json:"item_name"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ItemCode string `json:"item_code"`
	ItemName string `json:"item_name"`
}

// ToProductResponse mapea la entidad.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{ItemCode: p.ItemCode, ItemName: p.ItemName}
}
