package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

var _ repository.PosSessionRepository = (*PosSessionRepo)(nil)

// PosSessionRepo lectura de sesiones de punto de venta sobre PostgreSQL.
type PosSessionRepo struct {
	q Querier
}

// NewPosSessionRepository construye el adaptador de sesiones. Pasar pool o tx (Querier).
func NewPosSessionRepository(q Querier) *PosSessionRepo {
	return &PosSessionRepo{q: q}
}

// GetByID obtiene una sesión por ID. nil si no existe.
func (r *PosSessionRepo) GetByID(id string) (*entity.PosSession, error) {
	query := `
		SELECT id, company_id, name, COALESCE(picking_type_id, ''), state, created_at, updated_at
		FROM pos_sessions WHERE id = $1`
	var s entity.PosSession
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.PickingTypeID, &s.State, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pos session: %w", err)
	}
	return &s, nil
}
