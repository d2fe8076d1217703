package entity

import "time"

// Sale registra una venta de un producto en una bodega. Inmutable una vez creada;
// el descuento de stock correspondiente fluye por el ledger (AdjustStock), nunca directo.
type Sale struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	SoldAt      time.Time
	CreatedBy   string
}
