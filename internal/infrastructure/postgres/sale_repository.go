package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo adaptador de persistencia para ventas.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, warehouse_id, quantity, sold_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ProductID, s.WarehouseID, s.Quantity, s.SoldAt, s.CreatedBy)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// SumRecentByCompany agrega ventas por par producto/bodega dentro de la
// ventana. El JOIN con warehouses limita el resultado a la empresa: las
// ventas de otras empresas nunca entran al cálculo de velocidad.
func (r *SaleRepo) SumRecentByCompany(ctx context.Context, companyID string, since time.Time) ([]repository.SalesAggregate, error) {
	query := `
		SELECT s.product_id, s.warehouse_id, COALESCE(SUM(s.quantity), 0), COUNT(*)
		FROM sales s
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE w.company_id = $1 AND s.sold_at >= $2
		GROUP BY s.product_id, s.warehouse_id`
	rows, err := r.q.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("sum recent sales: %w", err)
	}
	defer rows.Close()
	var aggs []repository.SalesAggregate
	for rows.Next() {
		var a repository.SalesAggregate
		if err := rows.Scan(&a.ProductID, &a.WarehouseID, &a.TotalQuantity, &a.SaleCount); err != nil {
			return nil, fmt.Errorf("scan sales aggregate: %w", err)
		}
		aggs = append(aggs, a)
	}
	return aggs, rows.Err()
}
