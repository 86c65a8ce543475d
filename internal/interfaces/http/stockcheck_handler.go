package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/StockGuard-api/internal/application/dto"
	"github.com/jhoicas/StockGuard-api/internal/application/stockcheck"
	"github.com/jhoicas/StockGuard-api/internal/domain"
	domstock "github.com/jhoicas/StockGuard-api/internal/domain/stockcheck"
)

// StockCheckHandler expone los ganchos de validación de stock: confirmación de
// venta, validación de órdenes y líneas POS, chequeo manual y aviso consultivo.
type StockCheckHandler struct {
	confirm *stockcheck.ConfirmSaleOrderUseCase
	sales   *stockcheck.SalesCheckUseCase
	pos     *stockcheck.PosCheckUseCase
}

// NewStockCheckHandler construye el handler de validación de stock.
func NewStockCheckHandler(
	confirm *stockcheck.ConfirmSaleOrderUseCase,
	sales *stockcheck.SalesCheckUseCase,
	pos *stockcheck.PosCheckUseCase,
) *StockCheckHandler {
	return &StockCheckHandler{confirm: confirm, sales: sales, pos: pos}
}

// ConfirmOrder godoc
// @Summary      Confirmar orden de venta
// @Description  Valida disponibilidad (si prevent_sales está activo) y pasa la orden a confirmed. Todo o nada: un faltante aborta la confirmación completa.
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/sales/orders/{id}/confirm [post]
func (h *StockCheckHandler) ConfirmOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if err := h.confirm.Confirm(c.Context(), GetCompanyID(c), orderID); err != nil {
		return stockCheckError(c, err)
	}
	return c.JSON(fiber.Map{"id": orderID, "state": "confirmed"})
}

// ManualCheck godoc
// @Summary      Verificar stock de una orden
// @Description  Corre la validación completa sin cambiar el estado. Devuelve una notificación de éxito o una advertencia sticky con el detalle de faltantes.
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.NotificationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/sales/orders/{id}/check-stock [post]
func (h *StockCheckHandler) ManualCheck(c *fiber.Ctx) error {
	err := h.sales.ManualCheck(GetCompanyID(c), c.Params("id"))
	if err == nil {
		return c.JSON(dto.NotificationResponse{
			Type:    "success",
			Title:   "Verificación de stock",
			Message: "Stock disponible para todos los productos de la orden.",
			Sticky:  false,
		})
	}
	var insufficient *domstock.InsufficientStockError
	if errors.As(err, &insufficient) {
		// El faltante no es un error aquí: el chequeo manual informa, no bloquea.
		return c.JSON(dto.NotificationResponse{
			Type:    "warning",
			Title:   "Verificación de stock",
			Message: insufficient.Error(),
			Sticky:  true,
		})
	}
	return stockCheckError(c, err)
}

// AdviseLine godoc
// @Summary      Aviso de stock al editar una línea de venta
// @Description  Chequeo informativo previo al guardado. Nunca bloquea: devuelve ok:false con el aviso cuando la cantidad supera el disponible.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdvisoryRequest  true  "producto, cantidad, unidad y bodega opcional"
// @Success      200   {object}  dto.AdvisoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales/lines/advise [post]
func (h *StockCheckHandler) AdviseLine(c *fiber.Ctx) error {
	var in dto.AdvisoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	warning, err := h.sales.AdviseLine(GetCompanyID(c), stockcheck.AdvisoryInput{
		WarehouseID: in.WarehouseID,
		Line: stockcheck.LineInput{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UoMID:     in.UoMID,
		},
	})
	if err != nil {
		return stockCheckError(c, err)
	}
	if warning == nil {
		return c.JSON(dto.AdvisoryResponse{OK: true})
	}
	return c.JSON(dto.AdvisoryResponse{
		OK:      false,
		Warning: &dto.WarningResponse{Title: warning.Title, Message: warning.Message},
	})
}

// ValidatePosOrder godoc
// @Summary      Validar orden de punto de venta
// @Description  Valida todas las líneas antes de finalizar la orden POS. Borradores y empresas con prevent_pos apagado pasan sin validar.
// @Tags         pos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PosOrderRequest  true  "sesión, draft y líneas"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pos/orders/validate [post]
func (h *StockCheckHandler) ValidatePosOrder(c *fiber.Ctx) error {
	var in dto.PosOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "session_id es requerido"})
	}
	lines := make([]stockcheck.LineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, stockcheck.LineInput{ProductID: l.ProductID, Quantity: l.Quantity, UoMID: l.UoMID})
	}
	err := h.pos.ProcessOrder(GetCompanyID(c), stockcheck.PosOrderInput{
		SessionID: in.SessionID,
		Draft:     in.Draft,
		Lines:     lines,
	})
	if err != nil {
		return stockCheckError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ValidatePosLine godoc
// @Summary      Validar línea de punto de venta
// @Description  Valida una línea al crearla o cambiar su cantidad, sin esperar a la orden completa.
// @Tags         pos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PosLineCheckRequest  true  "sesión, producto, cantidad y unidad"
// @Success      200   {object}  map[string]bool
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pos/lines/validate [post]
func (h *StockCheckHandler) ValidatePosLine(c *fiber.Ctx) error {
	var in dto.PosLineCheckRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SessionID == "" || in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "session_id y product_id son requeridos"})
	}
	err := h.pos.CheckLine(GetCompanyID(c), in.SessionID, stockcheck.LineInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UoMID:     in.UoMID,
	})
	if err != nil {
		return stockCheckError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// stockCheckError traduce los errores del dominio de validación a HTTP. El
// mensaje agregado de faltantes viaja tal cual al cliente: es el texto que el
// vendedor lee.
func stockCheckError(c *fiber.Ctx, err error) error {
	var insufficient *domstock.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficient.Error()})
	}
	var cfgErr *domstock.ConfigurationError
	if errors.As(err, &cfgErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "STOCK_CONFIG", Message: cfgErr.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la orden pertenece a otra empresa"})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrIncompatibleUoM):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
