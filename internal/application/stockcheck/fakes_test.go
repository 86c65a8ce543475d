package stockcheck_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/StockGuard-api/internal/application/stockcheck"
	"github.com/jhoicas/StockGuard-api/internal/domain/entity"
	"github.com/jhoicas/StockGuard-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests del validador y los casos de uso.
// Implementan los mismos puertos que los adaptadores de PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	companies    map[string]*entity.Company
	warehouses   []*entity.Warehouse // en orden de creación (FirstByCompany)
	locations    map[string]*entity.StockLocation
	products     map[string]*entity.Product
	uoms         map[string]*entity.UoM
	quants       []*entity.StockQuant
	pickingTypes map[string]*entity.PickingType
	sessions     map[string]*entity.PosSession
	orders       map[string]*entity.SaleOrder
	orderLines   map[string][]*entity.SaleOrderLine
	settings     map[string]*entity.PreventionSettings
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		companies:    map[string]*entity.Company{},
		locations:    map[string]*entity.StockLocation{},
		products:     map[string]*entity.Product{},
		uoms:         map[string]*entity.UoM{},
		pickingTypes: map[string]*entity.PickingType{},
		sessions:     map[string]*entity.PosSession{},
		orders:       map[string]*entity.SaleOrder{},
		orderLines:   map[string][]*entity.SaleOrderLine{},
		settings:     map[string]*entity.PreventionSettings{},
	}
}

// ── Puertos de lectura ────────────────────────────────────────────────────────

type fakeWarehouses struct{ s *fakeStore }

func (f fakeWarehouses) GetByID(id string) (*entity.Warehouse, error) {
	for _, w := range f.s.warehouses {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}

func (f fakeWarehouses) FirstByCompany(companyID string) (*entity.Warehouse, error) {
	for _, w := range f.s.warehouses {
		if w.CompanyID == companyID {
			return w, nil
		}
	}
	return nil, nil
}

type fakeLocations struct{ s *fakeStore }

func (f fakeLocations) GetByID(id string) (*entity.StockLocation, error) {
	return f.s.locations[id], nil
}

// SubtreeIDs recorre el árbol igual que la CTE recursiva del adaptador real.
func (f fakeLocations) SubtreeIDs(rootID string) ([]string, error) {
	ids := []string{rootID}
	frontier := []string{rootID}
	for len(frontier) > 0 {
		var next []string
		for _, parent := range frontier {
			for _, l := range f.s.locations {
				if l.ParentID == parent {
					ids = append(ids, l.ID)
					next = append(next, l.ID)
				}
			}
		}
		frontier = next
	}
	return ids, nil
}

type fakeQuants struct{ s *fakeStore }

func (f fakeQuants) SumAvailable(productID string, locationIDs []string) (decimal.Decimal, error) {
	inSet := map[string]bool{}
	for _, id := range locationIDs {
		inSet[id] = true
	}
	total := decimal.Zero
	for _, q := range f.s.quants {
		if q.ProductID == productID && inSet[q.LocationID] {
			total = total.Add(q.Available())
		}
	}
	return total, nil
}

type fakeProducts struct{ s *fakeStore }

func (f fakeProducts) GetByID(id string) (*entity.Product, error) { return f.s.products[id], nil }

type fakeUoMs struct{ s *fakeStore }

func (f fakeUoMs) GetByID(id string) (*entity.UoM, error) { return f.s.uoms[id], nil }

type fakePickingTypes struct{ s *fakeStore }

func (f fakePickingTypes) GetByID(id string) (*entity.PickingType, error) {
	return f.s.pickingTypes[id], nil
}

type fakeSessions struct{ s *fakeStore }

func (f fakeSessions) GetByID(id string) (*entity.PosSession, error) { return f.s.sessions[id], nil }

type fakeOrders struct{ s *fakeStore }

func (f fakeOrders) GetByID(id string) (*entity.SaleOrder, error) { return f.s.orders[id], nil }

func (f fakeOrders) LinesByOrder(orderID string) ([]*entity.SaleOrderLine, error) {
	return f.s.orderLines[orderID], nil
}

func (f fakeOrders) UpdateState(orderID, state string) error {
	if o := f.s.orders[orderID]; o != nil {
		o.State = state
		o.UpdatedAt = time.Now()
	}
	return nil
}

type fakeSettings struct{ s *fakeStore }

func (f fakeSettings) GetByCompany(companyID string) (*entity.PreventionSettings, error) {
	if s := f.s.settings[companyID]; s != nil {
		return s, nil
	}
	return &entity.PreventionSettings{CompanyID: companyID}, nil
}

func (f fakeSettings) Upsert(settings *entity.PreventionSettings) error {
	f.s.settings[settings.CompanyID] = settings
	return nil
}

// fakeTxRunner ejecuta el callback directamente contra el store en memoria:
// la semántica transaccional real se prueba contra PostgreSQL.
type fakeTxRunner struct{ s *fakeStore }

func (f fakeTxRunner) RunCheck(_ context.Context, fn func(
	orders repository.SaleOrderRepository,
	products repository.ProductRepository,
	uoms repository.UoMRepository,
	warehouses repository.WarehouseRepository,
	locations repository.StockLocationRepository,
	quants repository.StockQuantRepository,
) error) error {
	return fn(
		fakeOrders{f.s}, fakeProducts{f.s}, fakeUoMs{f.s},
		fakeWarehouses{f.s}, fakeLocations{f.s}, fakeQuants{f.s},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: una empresa con bodega, árbol de ubicaciones y catálogo básico.
//
//	WH-Principal (lot: LOC-STOCK)
//	  LOC-STOCK (internal)
//	    LOC-ESTANTE (internal)   ← parte del stock vive aquí
// ──────────────────────────────────────────────────────────────────────────────

const (
	coID        = "co-1"
	whID        = "wh-1"
	locStockID  = "loc-stock"
	locShelfID  = "loc-estante"
	uomUnitID   = "uom-unidad"
	uomDozenID  = "uom-docena"
	uomKgID     = "uom-kg"
	prodChairID = "prod-silla"
	prodDeskID  = "prod-escritorio"
	prodSvcID   = "prod-instalacion"
	ptPosID     = "pt-pos"
	sessionID   = "sess-1"
	orderID     = "so-1"
)

func newFixture() *fakeStore {
	s := newFakeStore()
	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	s.companies[coID] = &entity.Company{ID: coID, Name: "Muebles Andina", Status: "active", CreatedAt: base}

	s.warehouses = append(s.warehouses, &entity.Warehouse{
		ID: whID, CompanyID: coID, Name: "Bodega Principal", Code: "BP",
		LotStockLocationID: locStockID, CreatedAt: base,
	})
	s.locations[locStockID] = &entity.StockLocation{
		ID: locStockID, CompanyID: coID, Name: "BP/Stock", Usage: entity.LocationUsageInternal,
	}
	s.locations[locShelfID] = &entity.StockLocation{
		ID: locShelfID, CompanyID: coID, ParentID: locStockID, Name: "BP/Stock/Estante-1",
		Usage: entity.LocationUsageInternal,
	}

	s.uoms[uomUnitID] = &entity.UoM{ID: uomUnitID, CompanyID: coID, Name: "Unidad", CategoryID: "cat-unidad", Factor: decimal.NewFromInt(1)}
	s.uoms[uomDozenID] = &entity.UoM{ID: uomDozenID, CompanyID: coID, Name: "Docena", CategoryID: "cat-unidad", Factor: decimal.NewFromInt(12)}
	s.uoms[uomKgID] = &entity.UoM{ID: uomKgID, CompanyID: coID, Name: "Kg", CategoryID: "cat-peso", Factor: decimal.NewFromInt(1)}

	s.products[prodChairID] = &entity.Product{
		ID: prodChairID, CompanyID: coID, SKU: "SILLA-01", Name: "Silla ergonómica",
		Kind: entity.ProductKindStockable, UoMID: uomUnitID,
	}
	s.products[prodDeskID] = &entity.Product{
		ID: prodDeskID, CompanyID: coID, SKU: "ESC-01", Name: "Escritorio roble",
		Kind: entity.ProductKindStockable, UoMID: uomUnitID,
	}
	s.products[prodSvcID] = &entity.Product{
		ID: prodSvcID, CompanyID: coID, SKU: "INST-01", Name: "Instalación en sitio",
		Kind: entity.ProductKindService, UoMID: uomUnitID,
	}

	s.pickingTypes[ptPosID] = &entity.PickingType{
		ID: ptPosID, CompanyID: coID, Name: "POS Tienda", WarehouseID: whID,
	}
	s.sessions[sessionID] = &entity.PosSession{
		ID: sessionID, CompanyID: coID, Name: "Caja 1", PickingTypeID: ptPosID, State: "opened",
	}

	return s
}

func (s *fakeStore) addQuant(productID, locationID string, qty, reserved float64) {
	s.quants = append(s.quants, &entity.StockQuant{
		ID: "q-" + productID + "-" + locationID, ProductID: productID, LocationID: locationID,
		Quantity: decimal.NewFromFloat(qty), ReservedQuantity: decimal.NewFromFloat(reserved),
	})
}

func (s *fakeStore) addOrder(id, warehouseID, state string, lines ...*entity.SaleOrderLine) {
	s.orders[id] = &entity.SaleOrder{ID: id, CompanyID: coID, WarehouseID: warehouseID, State: state}
	s.orderLines[id] = lines
}

func newValidator(s *fakeStore) *stockcheck.OrderValidator {
	return stockcheck.NewOrderValidator(
		fakeProducts{s},
		stockcheck.NewLocationResolver(fakeWarehouses{s}, fakeLocations{s}, fakePickingTypes{s}),
		stockcheck.NewLineValidator(fakeUoMs{s}, stockcheck.NewAvailabilityCalculator(fakeLocations{s}, fakeQuants{s})),
	)
}

func line(productID string, qty float64, uomID string) stockcheck.LineInput {
	return stockcheck.LineInput{ProductID: productID, Quantity: decimal.NewFromFloat(qty), UoMID: uomID}
}

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
