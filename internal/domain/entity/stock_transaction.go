package entity

import "time"

// Razones de cambio de stock (deben coincidir con el CHECK de stock_transactions).
const (
	ReasonInitialStock = "INITIAL_STOCK"
	ReasonSale         = "SALE"
	ReasonAdjustment   = "ADJUSTMENT"
	ReasonCorrection   = "CORRECTION"
	ReasonRestock      = "RESTOCK"
)

// StockTransaction es el registro de auditoría de cada cambio de cantidad:
// append-only, nunca se actualiza ni se borra. La suma de ChangeAmount por
// (producto, bodega) siempre es igual a la cantidad actual en stock.
type StockTransaction struct {
	ID           string
	ProductID    string
	WarehouseID  string
	ChangeAmount int64 // delta con signo aplicado a la cantidad
	Reason       string
	CreatedAt    time.Time
	CreatedBy    string // UserID, vacío para procesos internos
}
