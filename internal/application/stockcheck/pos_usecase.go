package stockcheck

import (
	"fmt"

	"github.com/jhoicas/StockGuard-api/internal/domain"
	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

// PosCheckUseCase adaptador de los ganchos de punto de venta: procesar una
// orden completa antes de finalizarla y validar una línea recién creada o
// modificada. Gobernado por el interruptor prevent_pos; los borradores quedan
// exentos. La persistencia de la orden POS pertenece al sistema anfitrión.
type PosCheckUseCase struct {
	settings  repository.SettingsRepository
	sessions  repository.PosSessionRepository
	validator *OrderValidator
}

// NewPosCheckUseCase construye el caso de uso.
func NewPosCheckUseCase(
	settings repository.SettingsRepository,
	sessions repository.PosSessionRepository,
	validator *OrderValidator,
) *PosCheckUseCase {
	return &PosCheckUseCase{settings: settings, sessions: sessions, validator: validator}
}

// PosOrderInput orden de punto de venta ya tipada en el borde HTTP.
type PosOrderInput struct {
	SessionID string
	Draft     bool
	Lines     []LineInput
}

// ProcessOrder valida la orden completa antes de finalizarla. Borradores y
// empresas con prevent_pos apagado pasan sin validar.
func (uc *PosCheckUseCase) ProcessOrder(companyID string, in PosOrderInput) error {
	cfg, err := uc.settings.GetByCompany(companyID)
	if err != nil {
		return fmt.Errorf("configuración de %s: %w", companyID, err)
	}
	if !cfg.PreventPos || in.Draft {
		return nil
	}
	session, err := uc.session(companyID, in.SessionID)
	if err != nil {
		return err
	}
	return uc.validator.ValidateOrder(NewPosOrder(session, in.Lines))
}

// CheckLine valida una sola línea al crearla o cambiar su cantidad (falla
// rápido por línea, sin esperar a la confirmación de la orden). Cantidades no
// positivas no se validan.
func (uc *PosCheckUseCase) CheckLine(companyID, sessionID string, line LineInput) error {
	cfg, err := uc.settings.GetByCompany(companyID)
	if err != nil {
		return fmt.Errorf("configuración de %s: %w", companyID, err)
	}
	if !cfg.PreventPos || line.Quantity.Sign() <= 0 {
		return nil
	}
	session, err := uc.session(companyID, sessionID)
	if err != nil {
		return err
	}
	return uc.validator.ValidateOrder(NewPosOrder(session, []LineInput{line}))
}

func (uc *PosCheckUseCase) session(companyID, sessionID string) (*entity.PosSession, error) {
	session, err := uc.sessions.GetByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("sesión %s: %w", sessionID, err)
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	if session.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return session, nil
}
