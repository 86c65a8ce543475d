package stockcheck

import (
	"fmt"

	"github.com/jhoicas/StockGuard-api/internal/domain"
	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
	domstock "github.com/jhoicas/StockGuard-api/internal/domain/stockcheck"
)

// LocationResolver determina la única ubicación de stock que gobierna una
// orden. Resolución en un solo paso determinista: o hay ubicación concreta o
// hay ConfigurationError; no existen rutas de "no se encontró, saltar chequeo".
type LocationResolver struct {
	warehouses   repository.WarehouseRepository
	locations    repository.StockLocationRepository
	pickingTypes repository.PickingTypeRepository
}

// NewLocationResolver construye el resolutor.
func NewLocationResolver(
	warehouses repository.WarehouseRepository,
	locations repository.StockLocationRepository,
	pickingTypes repository.PickingTypeRepository,
) *LocationResolver {
	return &LocationResolver{warehouses: warehouses, locations: locations, pickingTypes: pickingTypes}
}

// Resolve devuelve (bodega, ubicación principal) para la orden. Lectura pura.
// Ruta POS: tipo de operación de la sesión → su bodega. Ruta venta: bodega
// explícita de la orden o, en su defecto, la primera bodega de la empresa.
func (r *LocationResolver) Resolve(ord CheckableOrder) (*entity.Warehouse, *entity.StockLocation, error) {
	wh, err := r.resolveWarehouse(ord)
	if err != nil {
		return nil, nil, err
	}
	if wh.LotStockLocationID == "" {
		return nil, nil, &domstock.ConfigurationError{
			Reason: fmt.Sprintf("la bodega %s no tiene ubicación principal de stock", wh.Name),
		}
	}
	loc, err := r.locations.GetByID(wh.LotStockLocationID)
	if err != nil {
		return nil, nil, fmt.Errorf("ubicación %s: %w", wh.LotStockLocationID, err)
	}
	if loc == nil {
		return nil, nil, &domstock.ConfigurationError{
			Reason: fmt.Sprintf("la ubicación principal de la bodega %s no existe", wh.Name),
		}
	}
	return wh, loc, nil
}

func (r *LocationResolver) resolveWarehouse(ord CheckableOrder) (*entity.Warehouse, error) {
	if ptID := ord.PickingTypeHint(); ptID != "" {
		pt, err := r.pickingTypes.GetByID(ptID)
		if err != nil {
			return nil, fmt.Errorf("tipo de operación %s: %w", ptID, err)
		}
		if pt == nil {
			return nil, &domstock.ConfigurationError{Reason: fmt.Sprintf("el tipo de operación %s no existe", ptID)}
		}
		if pt.WarehouseID == "" {
			return nil, &domstock.ConfigurationError{
				Reason: fmt.Sprintf("el tipo de operación %s no tiene bodega asociada", pt.Name),
			}
		}
		return r.warehouseByID(pt.WarehouseID, ord.CompanyID())
	}

	if whID := ord.WarehouseHint(); whID != "" {
		return r.warehouseByID(whID, ord.CompanyID())
	}

	// Sin bodega explícita: la más antigua de la empresa (desempate documentado
	// en el puerto; en empresas multi-bodega conviene exigir bodega en la orden).
	wh, err := r.warehouses.FirstByCompany(ord.CompanyID())
	if err != nil {
		return nil, fmt.Errorf("bodega por empresa %s: %w", ord.CompanyID(), err)
	}
	if wh == nil {
		return nil, &domstock.ConfigurationError{Reason: "la empresa no tiene bodegas configuradas"}
	}
	return wh, nil
}

func (r *LocationResolver) warehouseByID(id, companyID string) (*entity.Warehouse, error) {
	wh, err := r.warehouses.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("bodega %s: %w", id, err)
	}
	if wh == nil {
		return nil, &domstock.ConfigurationError{Reason: fmt.Sprintf("la bodega %s no existe", id)}
	}
	// El hint de bodega llega del cliente en el aviso consultivo: una bodega
	// de otra empresa no se resuelve ni filtra su nombre en el mensaje.
	if wh.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return wh, nil
}
