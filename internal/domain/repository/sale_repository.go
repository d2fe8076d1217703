package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
)

// SalesAggregate suma de ventas recientes para un par (producto, bodega).
// SaleCount cuenta filas: un par con ventas de cantidad cero sigue teniendo
// demanda "medible" a efectos de exclusión, pero velocidad cero.
type SalesAggregate struct {
	ProductID     string
	WarehouseID   string
	TotalQuantity int64
	SaleCount     int
}

// SaleRepository puerto de persistencia para ventas (inmutables).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// SumRecentByCompany agrega las ventas desde `since` para todas las bodegas
	// de la empresa, agrupadas por (producto, bodega).
	SumRecentByCompany(ctx context.Context, companyID string, since time.Time) ([]SalesAggregate, error)
}
