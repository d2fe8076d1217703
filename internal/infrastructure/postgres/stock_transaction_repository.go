package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo adaptador del libro de movimientos (append-only).
type StockTransactionRepo struct {
	q Querier
}

func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create registra un movimiento. No hay Update ni Delete: el libro es inmutable.
func (r *StockTransactionRepo) Create(tx *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, product_id, warehouse_id, change_amount, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ProductID, tx.WarehouseID, tx.ChangeAmount, tx.Reason, tx.CreatedAt, tx.CreatedBy)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// ListByPair devuelve el historial de movimientos del par producto/bodega,
// del más reciente al más antiguo.
func (r *StockTransactionRepo) ListByPair(productID, warehouseID string, limit, offset int) ([]*entity.StockTransaction, error) {
	query := `
		SELECT id, product_id, warehouse_id, change_amount, reason, created_at, created_by
		FROM stock_transactions
		WHERE product_id = $1 AND warehouse_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, productID, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		if err := rows.Scan(&t.ID, &t.ProductID, &t.WarehouseID, &t.ChangeAmount,
			&t.Reason, &t.CreatedAt, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// SumByPair suma los change_amount del par. Con un libro íntegro el resultado
// coincide con stock.quantity; sirve para auditorías de consistencia.
func (r *StockTransactionRepo) SumByPair(productID, warehouseID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(change_amount), 0)
		FROM stock_transactions
		WHERE product_id = $1 AND warehouse_id = $2`
	var total int64
	if err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum stock transactions: %w", err)
	}
	return total, nil
}
