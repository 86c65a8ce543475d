package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

var _ repository.StockLocationRepository = (*StockLocationRepo)(nil)

// StockLocationRepo implementación de StockLocationRepository sobre PostgreSQL (usable con pool o tx).
type StockLocationRepo struct {
	q Querier
}

// NewStockLocationRepository construye el adaptador de ubicaciones. Pasar pool o tx (Querier).
func NewStockLocationRepository(q Querier) *StockLocationRepo {
	return &StockLocationRepo{q: q}
}

// GetByID obtiene una ubicación por ID. nil si no existe.
func (r *StockLocationRepo) GetByID(id string) (*entity.StockLocation, error) {
	query := `
		SELECT id, company_id, COALESCE(parent_id, ''), name, usage, created_at, updated_at
		FROM stock_locations WHERE id = $1`
	var l entity.StockLocation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.CompanyID, &l.ParentID, &l.Name, &l.Usage, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock location: %w", err)
	}
	return &l, nil
}

// SubtreeIDs devuelve la ubicación raíz y todos sus descendientes (CTE recursivo).
func (r *StockLocationRepo) SubtreeIDs(rootID string) ([]string, error) {
	query := `
		WITH RECURSIVE subtree AS (
			SELECT id FROM stock_locations WHERE id = $1
			UNION ALL
			SELECT l.id FROM stock_locations l
			JOIN subtree s ON l.parent_id = s.id
		)
		SELECT id FROM subtree`
	rows, err := r.q.Query(context.Background(), query, rootID)
	if err != nil {
		return nil, fmt.Errorf("subtree locations: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan location id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
