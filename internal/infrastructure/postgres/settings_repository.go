package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo persistencia de los interruptores de prevención sobre PostgreSQL.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de configuración. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetByCompany devuelve los interruptores de la empresa. Sin fila, ambos
// apagados (la validación no corre hasta que alguien la active).
func (r *SettingsRepo) GetByCompany(companyID string) (*entity.PreventionSettings, error) {
	query := `
		SELECT company_id, prevent_sales, prevent_pos, updated_at
		FROM prevention_settings WHERE company_id = $1`
	var s entity.PreventionSettings
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(
		&s.CompanyID, &s.PreventSales, &s.PreventPos, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.PreventionSettings{CompanyID: companyID}, nil
		}
		return nil, fmt.Errorf("get prevention settings: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza los interruptores de la empresa.
func (r *SettingsRepo) Upsert(settings *entity.PreventionSettings) error {
	query := `
		INSERT INTO prevention_settings (company_id, prevent_sales, prevent_pos, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (company_id)
		DO UPDATE SET prevent_sales = EXCLUDED.prevent_sales,
		              prevent_pos = EXCLUDED.prevent_pos,
		              updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		settings.CompanyID, settings.PreventSales, settings.PreventPos,
	)
	if err != nil {
		return fmt.Errorf("upsert prevention settings: %w", err)
	}
	return nil
}
