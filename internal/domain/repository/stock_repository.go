package repository

import "github.com/tu-usuario/stock-sentinel/internal/domain/entity"

// StockRepository puerto de persistencia para el stock por (producto, bodega).
// La cantidad nunca se muta directamente fuera de estos métodos: toda escritura
// llega aquí desde el ledger de inventario.
type StockRepository interface {
	// Create inserta la fila de stock inicial. Devuelve domain.ErrDuplicateStock
	// si el par (product_id, warehouse_id) ya existe.
	Create(stock *entity.Stock) error
	// Get devuelve el stock actual o nil si el par no existe.
	Get(productID, warehouseID string) (*entity.Stock, error)
	// ApplyDelta aplica el delta con una única escritura condicional: solo tiene
	// efecto si la cantidad resultante es >= 0. Devuelve applied=false si la
	// condición no se cumplió o la fila no existe (el caller desambigua con Get).
	ApplyDelta(productID, warehouseID string, delta int64) (applied bool, err error)
}
