package repository

import "context"

// CompanyStockRow es una tupla (producto, bodega, stock) restringida a las bodegas
// de una empresa, con los atributos de producto que el motor de alertas necesita.
type CompanyStockRow struct {
	ProductID     string
	ProductName   string
	SKU           string
	ProductType   string
	IsBundle      bool
	SupplierID    *string
	WarehouseID   string
	WarehouseName string
	Quantity      int64
}

// AlertSourceRepository consultas de solo lectura para el motor de alertas.
// No requiere snapshot consistente entre fuentes: el reporte es consultivo.
type AlertSourceRepository interface {
	ListCompanyStock(ctx context.Context, companyID string) ([]CompanyStockRow, error)
}
