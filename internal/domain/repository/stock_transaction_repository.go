package repository

import "github.com/tu-usuario/stock-sentinel/internal/domain/entity"

// StockTransactionRepository puerto del registro de auditoría de stock (append-only).
// No existen Update ni Delete a propósito.
type StockTransactionRepository interface {
	Create(tx *entity.StockTransaction) error
	ListByPair(productID, warehouseID string, limit, offset int) ([]*entity.StockTransaction, error)
	// SumByPair devuelve la suma de los deltas registrados para el par; debe
	// coincidir siempre con la cantidad actual en stock.
	SumByPair(productID, warehouseID string) (int64, error)
}
