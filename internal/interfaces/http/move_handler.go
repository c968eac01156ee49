package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/picking-api/internal/application/dto"
	"github.com/jhoicas/picking-api/internal/application/inventory"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

const (
	defaultMovePageSize = 20
	maxMovePageSize     = 100
)

// MoveHandler maneja las peticiones HTTP de movimientos (protegido).
type MoveHandler struct {
	uc *inventory.MoveUseCase
}

// NewMoveHandler construye el handler.
func NewMoveHandler(uc *inventory.MoveUseCase) *MoveHandler {
	return &MoveHandler{uc: uc}
}

// Create godoc
// @Summary      Crear movimiento
// @Description  Crea un documento PO/SO/TR/RT en estado draft. Ubicación vacía = MAIN.
// @Tags         moves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateMoveRequest  true  "doc_type, doc_number, lines"
// @Success      201   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/moves [post]
func (h *MoveHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	move, err := h.uc.CreateMoveFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMoveResponse(move))
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del movimiento"
// @Success      200  {object}  dto.MoveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/moves/{id} [get]
func (h *MoveHandler) GetByID(c *fiber.Ctx) error {
	move, err := h.uc.GetMove(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToMoveResponse(move))
}

// List godoc
// @Summary      Listar movimientos
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Param        status    query     string  false  "draft | pending | approved"
// @Param        doc_type  query     string  false  "PO | SO | TR | RT"
// @Param        limit     query     int     false  "1..100 (20 por defecto)"
// @Param        offset    query     int     false  "desplazamiento"
// @Success      200       {object}  dto.MoveListResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/moves [get]
func (h *MoveHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.Clamp(defaultMovePageSize, maxMovePageSize)
	moves, err := h.uc.ListMoves(c.UserContext(), repository.MoveFilter{
		Status:  entity.MoveStatus(c.Query("status")),
		DocType: entity.DocType(c.Query("doc_type")),
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := dto.MoveListResponse{Items: make([]dto.MoveResponse, 0, len(moves)), Page: page.Response()}
	for _, m := range moves {
		out.Items = append(out.Items, dto.ToMoveResponse(m))
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar movimiento
// @Description  Aplica un lote de confirmaciones de forma atómica: líneas, stock, estado y auditoría.
// @Tags         moves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "ID del movimiento"
// @Param        body  body      dto.ConfirmMoveRequest  true  "confirmations"
// @Success      200   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/moves/{id}/confirm [post]
func (h *MoveHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	move, err := h.uc.ConfirmMoveFromRequest(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToMoveResponse(move))
}
