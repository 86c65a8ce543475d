package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

var _ repository.PickingTypeRepository = (*PickingTypeRepo)(nil)

// PickingTypeRepo lectura de tipos de operación sobre PostgreSQL (usable con pool o tx).
type PickingTypeRepo struct {
	q Querier
}

// NewPickingTypeRepository construye el adaptador de tipos de operación. Pasar pool o tx (Querier).
func NewPickingTypeRepository(q Querier) *PickingTypeRepo {
	return &PickingTypeRepo{q: q}
}

// GetByID obtiene un tipo de operación por ID. nil si no existe.
// warehouse_id NULL se devuelve como "" (tipo sin bodega asociada).
func (r *PickingTypeRepo) GetByID(id string) (*entity.PickingType, error) {
	query := `
		SELECT id, company_id, name, COALESCE(warehouse_id, ''), created_at, updated_at
		FROM picking_types WHERE id = $1`
	var pt entity.PickingType
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&pt.ID, &pt.CompanyID, &pt.Name, &pt.WarehouseID, &pt.CreatedAt, &pt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get picking type: %w", err)
	}
	return &pt, nil
}
