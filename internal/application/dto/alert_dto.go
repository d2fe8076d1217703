package dto

// SupplierBlockDTO bloque de proveedor dentro de una alerta. Los tres campos son
// null cuando el producto no tiene proveedor principal: el caso "sin proveedor"
// se representa por tipo, no por ausencia de clave.
type SupplierBlockDTO struct {
	ID           *string `json:"id"`
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// LowStockAlertDTO una alerta por par (producto, bodega) que sobrevive los filtros.
// DaysUntilStockout es null cuando no hay tasa de consumo medible (velocidad cero).
type LowStockAlertDTO struct {
	ProductID         string           `json:"product_id"`
	ProductName       string           `json:"product_name"`
	SKU               string           `json:"sku"`
	WarehouseID       string           `json:"warehouse_id"`
	WarehouseName     string           `json:"warehouse_name"`
	CurrentStock      int64            `json:"current_stock"`
	Threshold         int64            `json:"threshold"`
	SalesVelocity     float64          `json:"sales_velocity"`      // unidades/día en la ventana
	DaysUntilStockout *float64         `json:"days_until_stockout"` // null si velocidad = 0
	Supplier          SupplierBlockDTO `json:"supplier"`
}

// LowStockReportDTO respuesta de GET /api/companies/{id}/alerts/low-stock.
// El orden es determinista: warehouse_id asc, luego product_id asc.
type LowStockReportDTO struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
