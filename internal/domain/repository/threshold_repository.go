package repository

import "github.com/tu-usuario/stock-sentinel/internal/domain/entity"

// ThresholdRepository puerto para los umbrales de stock bajo por tipo de producto.
type ThresholdRepository interface {
	Upsert(threshold *entity.LowStockThreshold) error
	Get(productType string) (*entity.LowStockThreshold, error)
	List() ([]*entity.LowStockThreshold, error)
}
