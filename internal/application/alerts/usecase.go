package alerts

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/stock-sentinel/internal/application/dto"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

// Ventana de ventas recientes por defecto y límites de saneamiento.
const (
	DefaultWindowDays = 30
	maxWindowDays     = 365
)

// LowStockAlertUseCase calcula el reporte de alertas de stock bajo de una
// empresa: cruza stock, umbrales por tipo de producto, ventas recientes y datos
// de proveedor. Solo lecturas; no exige snapshot consistente entre fuentes
// (reporte consultivo, no ledger financiero).
type LowStockAlertUseCase struct {
	sourceRepo    repository.AlertSourceRepository
	thresholdRepo repository.ThresholdRepository
	saleRepo      repository.SaleRepository
	supplierRepo  repository.SupplierRepository
}

// NewLowStockAlertUseCase construye el motor de alertas.
func NewLowStockAlertUseCase(
	sourceRepo repository.AlertSourceRepository,
	thresholdRepo repository.ThresholdRepository,
	saleRepo repository.SaleRepository,
	supplierRepo repository.SupplierRepository,
) *LowStockAlertUseCase {
	return &LowStockAlertUseCase{
		sourceRepo:    sourceRepo,
		thresholdRepo: thresholdRepo,
		saleRepo:      saleRepo,
		supplierRepo:  supplierRepo,
	}
}

type pairKey struct {
	productID   string
	warehouseID string
}

// ComputeLowStockAlerts genera el reporte. windowDays <= 0 usa el valor por
// defecto (30). Una empresa sin bodegas o sin pares calificados devuelve la
// lista vacía, nunca un error. Exclusiones por par (producto, bodega):
//   - tipo de producto sin umbral definido (no se puede evaluar "bajo" sin cota)
//   - sin ventas dentro de la ventana (stock dormido no amerita alerta)
//   - cantidad actual por encima del umbral
func (uc *LowStockAlertUseCase) ComputeLowStockAlerts(ctx context.Context, companyID string, windowDays int) (*dto.LowStockReportDTO, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if windowDays > maxWindowDays {
		windowDays = maxWindowDays
	}

	rows, err := uc.sourceRepo.ListCompanyStock(ctx, companyID)
	if err != nil {
		return nil, err
	}
	report := &dto.LowStockReportDTO{Alerts: []dto.LowStockAlertDTO{}}
	if len(rows) == 0 {
		return report, nil
	}

	thresholds, err := uc.thresholdRepo.List()
	if err != nil {
		return nil, err
	}
	thresholdByType := make(map[string]int64, len(thresholds))
	for _, t := range thresholds {
		thresholdByType[t.ProductType] = t.Threshold
	}

	since := time.Now().AddDate(0, 0, -windowDays)
	aggs, err := uc.saleRepo.SumRecentByCompany(ctx, companyID, since)
	if err != nil {
		return nil, err
	}
	salesByPair := make(map[pairKey]repository.SalesAggregate, len(aggs))
	for _, a := range aggs {
		salesByPair[pairKey{a.ProductID, a.WarehouseID}] = a
	}

	type candidate struct {
		row       repository.CompanyStockRow
		threshold int64
		agg       repository.SalesAggregate
	}
	var candidates []candidate
	supplierIDs := map[string]bool{}
	for _, row := range rows {
		threshold, ok := thresholdByType[row.ProductType]
		if !ok {
			continue
		}
		agg, hasSales := salesByPair[pairKey{row.ProductID, row.WarehouseID}]
		if !hasSales || agg.SaleCount == 0 {
			continue
		}
		if row.Quantity > threshold {
			continue
		}
		candidates = append(candidates, candidate{row: row, threshold: threshold, agg: agg})
		if row.SupplierID != nil {
			supplierIDs[*row.SupplierID] = true
		}
	}
	if len(candidates) == 0 {
		return report, nil
	}

	ids := make([]string, 0, len(supplierIDs))
	for id := range supplierIDs {
		ids = append(ids, id)
	}
	suppliers, err := uc.supplierRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		velocity := float64(c.agg.TotalQuantity) / float64(windowDays)
		var daysUntilStockout *float64
		if velocity > 0 {
			days := float64(c.row.Quantity) / velocity
			daysUntilStockout = &days
		}
		supplier := dto.SupplierBlockDTO{}
		if c.row.SupplierID != nil {
			if s, ok := suppliers[*c.row.SupplierID]; ok && s != nil {
				supplier.ID = &s.ID
				supplier.Name = &s.Name
				supplier.ContactEmail = &s.ContactEmail
			}
		}
		report.Alerts = append(report.Alerts, dto.LowStockAlertDTO{
			ProductID:         c.row.ProductID,
			ProductName:       c.row.ProductName,
			SKU:               c.row.SKU,
			WarehouseID:       c.row.WarehouseID,
			WarehouseName:     c.row.WarehouseName,
			CurrentStock:      c.row.Quantity,
			Threshold:         c.threshold,
			SalesVelocity:     velocity,
			DaysUntilStockout: daysUntilStockout,
			Supplier:          supplier,
		})
	}

	// Orden determinista: bodega y luego producto. El recorrido sin orden del
	// almacén subyacente no es reproducible ni testeable.
	sort.SliceStable(report.Alerts, func(i, j int) bool {
		a, b := report.Alerts[i], report.Alerts[j]
		if a.WarehouseID != b.WarehouseID {
			return a.WarehouseID < b.WarehouseID
		}
		return a.ProductID < b.ProductID
	})

	report.TotalAlerts = len(report.Alerts)
	return report, nil
}
