package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

var _ repository.ThresholdRepository = (*ThresholdRepo)(nil)

// ThresholdRepo adaptador de persistencia para umbrales de stock bajo.
type ThresholdRepo struct {
	q Querier
}

func NewThresholdRepository(q Querier) *ThresholdRepo {
	return &ThresholdRepo{q: q}
}

// Upsert crea o actualiza el umbral del tipo de producto.
func (r *ThresholdRepo) Upsert(t *entity.LowStockThreshold) error {
	query := `
		INSERT INTO low_stock_thresholds (product_type, threshold, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_type) DO UPDATE SET threshold = EXCLUDED.threshold, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query, t.ProductType, t.Threshold, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert threshold: %w", err)
	}
	return nil
}

func (r *ThresholdRepo) Get(productType string) (*entity.LowStockThreshold, error) {
	query := `SELECT product_type, threshold, updated_at FROM low_stock_thresholds WHERE product_type = $1`
	var t entity.LowStockThreshold
	err := r.q.QueryRow(context.Background(), query, productType).
		Scan(&t.ProductType, &t.Threshold, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get threshold: %w", err)
	}
	return &t, nil
}

func (r *ThresholdRepo) List() ([]*entity.LowStockThreshold, error) {
	query := `SELECT product_type, threshold, updated_at FROM low_stock_thresholds ORDER BY product_type`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list thresholds: %w", err)
	}
	defer rows.Close()
	var list []*entity.LowStockThreshold
	for rows.Next() {
		var t entity.LowStockThreshold
		if err := rows.Scan(&t.ProductType, &t.Threshold, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan threshold: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
