package stockcheck

import (
	"fmt"

	"github.com/jhoicas/StockGuard-api/internal/domain"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
	domstock "github.com/jhoicas/StockGuard-api/internal/domain/stockcheck"
)

// OrderValidator recorre todas las líneas de una orden y acumula cada faltante
// antes de fallar: el mensaje al usuario debe enumerar todos los productos
// cortos en una sola pasada, no solo el primero. Sin estado, sin efectos;
// quien lo invoca ya decidió que la validación aplica (interruptores, drafts).
type OrderValidator struct {
	products repository.ProductRepository
	resolver *LocationResolver
	lines    *LineValidator
}

// NewOrderValidator construye el validador de orden.
func NewOrderValidator(
	products repository.ProductRepository,
	resolver *LocationResolver,
	lines *LineValidator,
) *OrderValidator {
	return &OrderValidator{products: products, resolver: resolver, lines: lines}
}

// ValidateOrder resuelve la ubicación una sola vez por orden, valida cada línea
// elegible en orden de declaración y falla con InsufficientStockError agregado
// si alguna quedó corta. Dos llamadas con el mismo estado externo producen el
// mismo veredicto y el mismo mensaje.
func (v *OrderValidator) ValidateOrder(ord CheckableOrder) error {
	wh, loc, err := v.resolver.Resolve(ord)
	if err != nil {
		return err
	}

	var shortfalls []domstock.Shortfall
	for _, line := range ord.Lines() {
		if line.Quantity.Sign() <= 0 {
			continue
		}
		if err := line.Validate(); err != nil {
			return err
		}
		product, err := v.products.GetByID(line.ProductID)
		if err != nil {
			return fmt.Errorf("producto %s: %w", line.ProductID, err)
		}
		if product == nil {
			return fmt.Errorf("producto %s: %w", line.ProductID, domain.ErrNotFound)
		}
		if product.CompanyID != ord.CompanyID() {
			return domain.ErrForbidden
		}
		sf, err := v.lines.Check(product, line, wh, loc)
		if err != nil {
			return err
		}
		if sf != nil {
			shortfalls = append(shortfalls, *sf)
		}
	}

	if len(shortfalls) > 0 {
		return &domstock.InsufficientStockError{Shortfalls: shortfalls}
	}
	return nil
}

// AdviseLine verificación consultiva de una sola línea: misma resolución y
// misma lógica que ValidateOrder pero un faltante sale como aviso, nunca como
// error bloqueante.
func (v *OrderValidator) AdviseLine(ord CheckableOrder, line LineInput) (*LineWarning, error) {
	if line.Quantity.Sign() <= 0 {
		return nil, nil
	}
	if err := line.Validate(); err != nil {
		return nil, err
	}
	wh, loc, err := v.resolver.Resolve(ord)
	if err != nil {
		return nil, err
	}
	product, err := v.products.GetByID(line.ProductID)
	if err != nil {
		return nil, fmt.Errorf("producto %s: %w", line.ProductID, err)
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", line.ProductID, domain.ErrNotFound)
	}
	if product.CompanyID != ord.CompanyID() {
		return nil, domain.ErrForbidden
	}
	return v.lines.Advise(product, line, wh, loc)
}
