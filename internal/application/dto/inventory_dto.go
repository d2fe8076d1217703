package dto

import "time"

// AdjustStockRequest body de POST /api/inventory/adjustments. Delta con signo;
// un resultado negativo se rechaza, nunca se recorta en silencio.
type AdjustStockRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Delta       int64  `json:"delta"`
	Reason      string `json:"reason"`
}

// StockResponse cantidad actual de un par (producto, bodega).
type StockResponse struct {
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StockTransactionResponse fila del registro de auditoría.
type StockTransactionResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	WarehouseID  string    `json:"warehouse_id"`
	ChangeAmount int64     `json:"change_amount"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}

// RecordSaleRequest body de POST /api/sales. La venta y el descuento de stock
// se confirman en la misma transacción.
type RecordSaleRequest struct {
	ProductID   string     `json:"product_id"`
	WarehouseID string     `json:"warehouse_id"`
	Quantity    int64      `json:"quantity"`
	SoldAt      *time.Time `json:"sold_at,omitempty"` // nil = ahora
}
