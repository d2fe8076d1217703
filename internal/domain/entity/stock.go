package entity

import "time"

// Stock representa la cantidad actual de un producto en una bodega.
// Clave compuesta (product_id, warehouse_id); quantity es un entero >= 0 siempre.
// Se crea solo junto con (o después de) su Product, nunca al revés.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
