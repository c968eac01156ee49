package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/picking-api/internal/application/usecase"
)

// AuditHandler consulta de la bitácora (supervisor).
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Listar auditoría
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        entity_id  query     string  false  "ID del movimiento"
// @Param        action     query     string  false  "created | confirmed"
// @Param        limit      query     int     false  "1..500 (100 por defecto)"
// @Success      200        {object}  dto.AuditListResponse
// @Failure      403        {object}  dto.ErrorResponse
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("entity_id"), c.Query("action"), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
