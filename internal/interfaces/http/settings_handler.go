package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/StockGuard-api/internal/application/dto"
	"github.com/jhoicas/StockGuard-api/internal/application/usecase"
	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
)

// SettingsHandler lectura y actualización de los interruptores de prevención.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler de configuración.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Interruptores de prevención de stock
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings/stock-prevention [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	s, err := h.uc.Get(GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toSettingsResponse(s))
}

// Update godoc
// @Summary      Actualizar interruptores de prevención de stock
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "prevent_sales, prevent_pos"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/stock-prevention [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.Update(GetCompanyID(c), in.PreventSales, in.PreventPos)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toSettingsResponse(s))
}

func toSettingsResponse(s *entity.PreventionSettings) dto.SettingsResponse {
	return dto.SettingsResponse{
		CompanyID:    s.CompanyID,
		PreventSales: s.PreventSales,
		PreventPos:   s.PreventPos,
		UpdatedAt:    s.UpdatedAt,
	}
}
