package alerts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-sentinel/internal/application/alerts"
	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de solo lectura para las cuatro fuentes del motor
// ──────────────────────────────────────────────────────────────────────────────

type fakeAlertSource struct{ rows []repository.CompanyStockRow }

func (f *fakeAlertSource) ListCompanyStock(ctx context.Context, companyID string) ([]repository.CompanyStockRow, error) {
	return f.rows, nil
}

type fakeThresholds struct{ byType map[string]int64 }

func (f *fakeThresholds) Upsert(t *entity.LowStockThreshold) error { return nil }
func (f *fakeThresholds) Get(productType string) (*entity.LowStockThreshold, error) {
	v, ok := f.byType[productType]
	if !ok {
		return nil, nil
	}
	return &entity.LowStockThreshold{ProductType: productType, Threshold: v}, nil
}
func (f *fakeThresholds) List() ([]*entity.LowStockThreshold, error) {
	var out []*entity.LowStockThreshold
	for pt, v := range f.byType {
		out = append(out, &entity.LowStockThreshold{ProductType: pt, Threshold: v})
	}
	return out, nil
}

type fakeSales struct{ aggs []repository.SalesAggregate }

func (f *fakeSales) Create(sale *entity.Sale) error { return nil }
func (f *fakeSales) SumRecentByCompany(ctx context.Context, companyID string, since time.Time) ([]repository.SalesAggregate, error) {
	return f.aggs, nil
}

type fakeSuppliers struct{ byID map[string]*entity.Supplier }

func (f *fakeSuppliers) Create(s *entity.Supplier) error { return nil }
func (f *fakeSuppliers) GetByID(id string) (*entity.Supplier, error) {
	return f.byID[id], nil
}
func (f *fakeSuppliers) GetByIDs(ids []string) (map[string]*entity.Supplier, error) {
	out := map[string]*entity.Supplier{}
	for _, id := range ids {
		if s, ok := f.byID[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}
func (f *fakeSuppliers) List(limit, offset int) ([]*entity.Supplier, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const companyID = "comp-1"

type fixture struct {
	source     *fakeAlertSource
	thresholds *fakeThresholds
	sales      *fakeSales
	suppliers  *fakeSuppliers
}

func newFixture() *fixture {
	return &fixture{
		source:     &fakeAlertSource{},
		thresholds: &fakeThresholds{byType: map[string]int64{}},
		sales:      &fakeSales{},
		suppliers:  &fakeSuppliers{byID: map[string]*entity.Supplier{}},
	}
}

func (f *fixture) uc() *alerts.LowStockAlertUseCase {
	return alerts.NewLowStockAlertUseCase(f.source, f.thresholds, f.sales, f.suppliers)
}

func row(productID, warehouseID string, qty int64, productType string, supplierID *string) repository.CompanyStockRow {
	return repository.CompanyStockRow{
		ProductID:     productID,
		ProductName:   "Producto " + productID,
		SKU:           "SKU-" + productID,
		ProductType:   productType,
		SupplierID:    supplierID,
		WarehouseID:   warehouseID,
		WarehouseName: "Bodega " + warehouseID,
		Quantity:      qty,
	}
}

func agg(productID, warehouseID string, totalQty int64, count int) repository.SalesAggregate {
	return repository.SalesAggregate{ProductID: productID, WarehouseID: warehouseID, TotalQuantity: totalQty, SaleCount: count}
}

// ──────────────────────────────────────────────────────────────────────────────
// Exclusiones
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertas_EmpresaSinStockReporteVacio(t *testing.T) {
	f := newFixture()

	report, err := f.uc().ComputeLowStockAlerts(context.Background(), companyID, 30)
	require.NoError(t, err)
	assert.NotNil(t, report.Alerts, "la lista debe serializar como [] y no como null")
	assert.Empty(t, report.Alerts)
	assert.Equal(t, 0, report.TotalAlerts)
}

func TestAlertas_SinVentasRecientesExcluido(t *testing.T) {
	f := newFixture()
	f.thresholds.byType["electronica"] = 10
	f.source.rows = []repository.CompanyStockRow{row("p1", "w1", 5, "electronica", nil)}
	// Sin agregados de venta: stock dormido, no amerita alerta.

	report, err := f.uc().ComputeLowStockAlerts(context.Background(), companyID, 30)
	require.NoError(t, err)
	assert.Empty(t, report.Alerts)
}

func TestAlertas_TipoSinUmbralExcluido(t *testing.T) {
	f := newFixture()
	f.source.rows = []repository.CompanyStockRow{row("p1", "w1", 1, "sin-umbral", nil)}
	f.sales.aggs = []repository.SalesAggregate{agg("p1", "w1", 30, 3)}

	report, err := f.uc().ComputeLowStockAlerts(context.Background(), companyID, 30)
	require.NoError(t, err)
	assert.Empty(t, report.Alerts, "un tipo sin umbral no puede evaluarse como bajo")
}

func TestAlertas_StockSobreUmbralExcluido(t *testing.T) {
	f := newFixture()
	f.thresholds.byType["electronica"] = 10
	f.source.rows = []repository.CompanyStockRow{row("p1", "w1", 11, "electronica", nil)}
	f.sales.aggs = []repository.SalesAggregate{agg("p1", "w1", 30, 3)}

	report, err := f.uc().ComputeLowStockAlerts(context.Background(), companyID, 30)
	require.NoError(t, err)
	assert.Empty(t, report.Alerts)
}

func TestAlertas_StockIgualAlUmbralIncluido(t *testing.T) {
	f := newFixture()
	f.thresholds.byType["electronica"] = 10
	f.source.rows = []repository.CompanyStockRow{row("p1", "w1", 10, "electronica", nil)}
	f.sales.aggs = []repository.SalesAggregate{agg("p1", "w1", 30, 3)}

	report, err := f.uc().ComputeLowStockAlerts(context.Background(), companyID, 30)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1, "cantidad == umbral cuenta como bajo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Velocidad y días hasta agotar
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertas_VelocidadYDiasHastaAgotar(t *testing.T) {
	f := newFixture()
	f.thresholds.byType["electronica"] = 10
	f.source.rows = []repository.CompanyStockRow{row("p1", "w1", 6, "electronica", nil)}
	f.sales.aggs = []repository.SalesAggregate{agg("p1", "w1", 60, 12)}

	report, err := f.uc().ComputeLowStockAlerts(context.Background(), companyID, 30)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)

	a := report.Alerts[0]
	assert.InDelta(t, 2.0, a.SalesVelocity, 1e-9, "60 unidades / 30 días = 2/día")
	require.NotNil(t, a.DaysUntilStockout)
	assert.InDelta(t, 3.0, *a.DaysUntilStockout, 1e-9, "6 unidades a 2/día = 3 días")
}

func TestAlertas_VentasDeCantidadCero_VelocidadCeroYDiasNull(t *testing.T) {
	f := newFixture()
	f.thresholds.byType["electronica"] = 10
	f.source.rows = []repository.CompanyStockRow{row("p1", "w1", 5, "electronica", nil)}
	// Hay filas de venta (demanda medible) pero todas de cantidad cero.
	f.sales.aggs = []repository.SalesAggregate{agg("p1", "w1", 0, 4)}

	report, err := f.uc().ComputeLowStockAlerts(context.Background(), companyID, 30)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)

	a := report.Alerts[0]
	assert.Zero(t, a.SalesVelocity)
	assert.Nil(t, a.DaysUntilStockout, "sin tasa de consumo medible el estimado es null, no infinito ni cero")
}

func TestAlertas_VentanaPorDefectoCuandoWindowDaysInvalido(t *testing.T) {
	f := newFixture()
	f.thresholds.byType["electronica"] = 10
	f.source.rows = []repository.CompanyStockRow{row("p1", "w1", 6, "electronica", nil)}
	f.sales.aggs = []repository.SalesAggregate{agg("p1", "w1", 60, 12)}

	for _, window := range []int{0, -5} {
		report, err := f.uc().ComputeLowStockAlerts(context.Background(), companyID, window)
		require.NoError(t, err)
		require.Len(t, report.Alerts, 1)
		// Divisor = ventana por defecto de 30 días.
		assert.InDelta(t, 2.0, report.Alerts[0].SalesVelocity, 1e-9)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance por bodega y orden
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertas_EvaluacionIndependientePorBodega(t *testing.T) {
	f := newFixture()
	f.thresholds.byType["electronica"] = 10
	// Mismo producto en tres bodegas: dos bajo umbral con ventas, una sobrada.
	f.source.rows = []repository.CompanyStockRow{
		row("p1", "w1", 5, "electronica", nil),
		row("p1", "w2", 50, "electronica", nil),
		row("p1", "w3", 2, "electronica", nil),
	}
	f.sales.aggs = []repository.SalesAggregate{
		agg("p1", "w1", 10, 2),
		agg("p1", "w2", 10, 2),
		agg("p1", "w3", 10, 2),
	}

	report, err := f.uc().ComputeLowStockAlerts(context.Background(), companyID, 30)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 2)
	assert.Equal(t, "w1", report.Alerts[0].WarehouseID)
	assert.Equal(t, "w3", report.Alerts[1].WarehouseID)
	assert.Equal(t, 2, report.TotalAlerts)
}

func TestAlertas_OrdenDeterministaPorBodegaYProducto(t *testing.T) {
	f := newFixture()
	f.thresholds.byType["electronica"] = 10
	f.source.rows = []repository.CompanyStockRow{
		row("p2", "w2", 1, "electronica", nil),
		row("p1", "w2", 1, "electronica", nil),
		row("p9", "w1", 1, "electronica", nil),
	}
	f.sales.aggs = []repository.SalesAggregate{
		agg("p2", "w2", 5, 1),
		agg("p1", "w2", 5, 1),
		agg("p9", "w1", 5, 1),
	}

	report, err := f.uc().ComputeLowStockAlerts(context.Background(), companyID, 30)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 3)
	assert.Equal(t, "w1", report.Alerts[0].WarehouseID)
	assert.Equal(t, "p1", report.Alerts[1].ProductID)
	assert.Equal(t, "p2", report.Alerts[2].ProductID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bloque de proveedor
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertas_BloqueProveedorPresente(t *testing.T) {
	f := newFixture()
	f.thresholds.byType["electronica"] = 10
	supplierID := "sup-1"
	f.suppliers.byID["sup-1"] = &entity.Supplier{ID: "sup-1", Name: "ACME", ContactEmail: "ventas@acme.test"}
	f.source.rows = []repository.CompanyStockRow{row("p1", "w1", 5, "electronica", &supplierID)}
	f.sales.aggs = []repository.SalesAggregate{agg("p1", "w1", 10, 2)}

	report, err := f.uc().ComputeLowStockAlerts(context.Background(), companyID, 30)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)

	s := report.Alerts[0].Supplier
	require.NotNil(t, s.ID)
	assert.Equal(t, "sup-1", *s.ID)
	assert.Equal(t, "ACME", *s.Name)
	assert.Equal(t, "ventas@acme.test", *s.ContactEmail)
}

func TestAlertas_SinProveedorBloqueNulo(t *testing.T) {
	f := newFixture()
	f.thresholds.byType["electronica"] = 10
	f.source.rows = []repository.CompanyStockRow{row("p1", "w1", 5, "electronica", nil)}
	f.sales.aggs = []repository.SalesAggregate{agg("p1", "w1", 10, 2)}

	report, err := f.uc().ComputeLowStockAlerts(context.Background(), companyID, 30)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)

	// El caso "sin proveedor" se representa con campos null, nunca omitiendo el bloque.
	s := report.Alerts[0].Supplier
	assert.Nil(t, s.ID)
	assert.Nil(t, s.Name)
	assert.Nil(t, s.ContactEmail)
}

func TestAlertas_ProveedorDesconocidoBloqueNulo(t *testing.T) {
	f := newFixture()
	f.thresholds.byType["electronica"] = 10
	ghost := "sup-borrado"
	f.source.rows = []repository.CompanyStockRow{row("p1", "w1", 5, "electronica", &ghost)}
	f.sales.aggs = []repository.SalesAggregate{agg("p1", "w1", 10, 2)}

	report, err := f.uc().ComputeLowStockAlerts(context.Background(), companyID, 30)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)
	assert.Nil(t, report.Alerts[0].Supplier.ID)
}
