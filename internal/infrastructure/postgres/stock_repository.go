package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-sentinel/internal/domain"
	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo adaptador de persistencia para los niveles de stock por bodega.
type StockRepo struct {
	q Querier
}

func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create inserta la fila de stock inicial. El PK (product_id, warehouse_id)
// garantiza una sola fila por par: 23505 -> ErrDuplicateStock.
func (r *StockRepo) Create(s *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, s.ProductID, s.WarehouseID, s.Quantity, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateStock
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// Get devuelve el stock del par producto/bodega (nil si no existe).
func (r *StockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).
		Scan(&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// ApplyDelta aplica el ajuste en un solo UPDATE condicional: la condición
// quantity + delta >= 0 se evalúa en la misma sentencia, sin SELECT previo,
// por lo que dos ajustes concurrentes nunca pueden dejar stock negativo.
// applied=false significa que la fila no existe o que el delta dejaría
// la cantidad bajo cero; el caller distingue ambos casos.
func (r *StockRepo) ApplyDelta(productID, warehouseID string, delta int64) (bool, error) {
	query := `
		UPDATE stock
		SET quantity = quantity + $3, updated_at = now()
		WHERE product_id = $1 AND warehouse_id = $2 AND quantity + $3 >= 0`
	cmd, err := r.q.Exec(context.Background(), query, productID, warehouseID, delta)
	if err != nil {
		if isCheckViolation(err) {
			// el CHECK de la tabla es la última línea de defensa
			return false, nil
		}
		return false, fmt.Errorf("apply stock delta: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
