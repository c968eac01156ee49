package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/picking-api/internal/application/usecase"
)

// StockHandler consultas del libro de stock.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        item_code  query     string  false  "filtrar por ítem"
// @Param        location   query     string  false  "filtrar por ubicación"
// @Param        limit      query     int     false  "1..500 (100 por defecto)"
// @Success      200        {object}  dto.StockListResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("item_code"), c.Query("location"), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Stock de un ítem en una ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        item_code  path      string  true  "ítem"
// @Param        location   path      string  true  "ubicación"
// @Success      200        {object}  dto.StockResponse
// @Router       /api/stock/{item_code}/{location} [get]
func (h *StockHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("item_code"), c.Params("location"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
