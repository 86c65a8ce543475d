package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

var _ repository.UoMRepository = (*UoMRepo)(nil)

// UoMRepo lectura de unidades de medida sobre PostgreSQL (usable con pool o tx).
type UoMRepo struct {
	q Querier
}

// NewUoMRepository construye el adaptador de unidades. Pasar pool o tx (Querier).
func NewUoMRepository(q Querier) *UoMRepo {
	return &UoMRepo{q: q}
}

// GetByID obtiene una unidad por ID. nil si no existe.
func (r *UoMRepo) GetByID(id string) (*entity.UoM, error) {
	query := `SELECT id, company_id, name, category_id, factor FROM uoms WHERE id = $1`
	var u entity.UoM
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.CompanyID, &u.Name, &u.CategoryID, &u.Factor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get uom: %w", err)
	}
	return &u, nil
}
