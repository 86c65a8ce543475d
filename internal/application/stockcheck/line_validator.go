package stockcheck

import (
	"fmt"

	"github.com/jhoicas/StockGuard-api/internal/domain"
	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
	domstock "github.com/jhoicas/StockGuard-api/internal/domain/stockcheck"
	"github.com/jhoicas/StockGuard-api/internal/domain/uom"
)

// LineValidator decide suficiencia para un par (producto, cantidad solicitada):
// convierte la cantidad a la unidad de almacenamiento, consulta disponibilidad
// y compara con mayor-estricto (igual es suficiente).
type LineValidator struct {
	uoms         repository.UoMRepository
	availability *AvailabilityCalculator
}

// NewLineValidator construye el validador de línea.
func NewLineValidator(uoms repository.UoMRepository, availability *AvailabilityCalculator) *LineValidator {
	return &LineValidator{uoms: uoms, availability: availability}
}

// Check devuelve nil si la línea es suficiente o no aplica (producto tipo
// service, cantidad <= 0), y el registro de faltante si solicita más de lo
// disponible. wh puede ser nil cuando no se conoce la bodega.
func (v *LineValidator) Check(
	product *entity.Product,
	input LineInput,
	wh *entity.Warehouse,
	loc *entity.StockLocation,
) (*domstock.Shortfall, error) {
	if product == nil {
		return nil, domain.ErrInvalidInput
	}
	if !product.IsStockTracked() || input.Quantity.Sign() <= 0 {
		return nil, nil
	}

	stockUoM, err := v.uoms.GetByID(product.UoMID)
	if err != nil {
		return nil, fmt.Errorf("unidad %s: %w", product.UoMID, err)
	}
	if stockUoM == nil {
		return nil, fmt.Errorf("unidad %s del producto %s: %w", product.UoMID, product.SKU, domain.ErrNotFound)
	}

	// Cantidad solicitada en la unidad de almacenamiento del producto.
	requested := input.Quantity
	if input.UoMID != "" && input.UoMID != product.UoMID {
		reqUoM, err := v.uoms.GetByID(input.UoMID)
		if err != nil {
			return nil, fmt.Errorf("unidad %s: %w", input.UoMID, err)
		}
		if reqUoM == nil {
			return nil, fmt.Errorf("unidad %s: %w", input.UoMID, domain.ErrNotFound)
		}
		requested, err = uom.Convert(input.Quantity, reqUoM, stockUoM)
		if err != nil {
			return nil, fmt.Errorf("convertir %s a %s: %w", reqUoM.Name, stockUoM.Name, err)
		}
	}

	available, err := v.availability.Available(product.ID, loc)
	if err != nil {
		return nil, err
	}

	if !requested.GreaterThan(available) {
		return nil, nil
	}
	whName := ""
	if wh != nil {
		whName = wh.Name
	}
	return &domstock.Shortfall{
		ProductName:   product.Name,
		Requested:     requested,
		Available:     available,
		UoMName:       stockUoM.Name,
		WarehouseName: whName,
	}, nil
}

// LineWarning aviso no bloqueante para la edición de líneas de venta.
type LineWarning struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Advise versión consultiva de Check: un faltante se devuelve como aviso en
// lugar de error, el editor puede seguir escribiendo. nil = stock suficiente.
func (v *LineValidator) Advise(
	product *entity.Product,
	input LineInput,
	wh *entity.Warehouse,
	loc *entity.StockLocation,
) (*LineWarning, error) {
	sf, err := v.Check(product, input, wh, loc)
	if err != nil {
		return nil, err
	}
	if sf == nil {
		return nil, nil
	}
	return &LineWarning{
		Title: "Stock insuficiente",
		Message: fmt.Sprintf(
			"Atención: stock insuficiente para %s.\nCantidad solicitada: %s %s\nCantidad disponible: %s %s\n\nLa orden no podrá confirmarse en este estado.",
			sf.ProductName,
			sf.Requested.StringFixed(2), sf.UoMName,
			sf.Available.StringFixed(2), sf.UoMName,
		),
	}, nil
}
