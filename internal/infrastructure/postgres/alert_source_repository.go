package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

var _ repository.AlertSourceRepository = (*AlertSourceRepo)(nil)

// AlertSourceRepo consultas de solo lectura para el motor de alertas.
type AlertSourceRepo struct {
	q Querier
}

func NewAlertSourceRepository(q Querier) *AlertSourceRepo {
	return &AlertSourceRepo{q: q}
}

// ListCompanyStock devuelve todos los pares (producto, bodega) con stock
// registrado en las bodegas de la empresa, con los atributos de producto
// que el cálculo de alertas necesita. Sin filtros de umbral ni de ventas:
// esos criterios los aplica el caso de uso.
func (r *AlertSourceRepo) ListCompanyStock(ctx context.Context, companyID string) ([]repository.CompanyStockRow, error) {
	query := `
		SELECT p.id, p.name, p.sku, p.product_type, p.is_bundle, p.supplier_id,
		       w.id, w.name, s.quantity
		FROM stock s
		JOIN products p ON p.id = s.product_id
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE w.company_id = $1`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list company stock: %w", err)
	}
	defer rows.Close()
	var result []repository.CompanyStockRow
	for rows.Next() {
		var row repository.CompanyStockRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.SKU, &row.ProductType,
			&row.IsBundle, &row.SupplierID, &row.WarehouseID, &row.WarehouseName, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan company stock row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
