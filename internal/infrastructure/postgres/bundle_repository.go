package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

var _ repository.BundleRepository = (*BundleRepo)(nil)

// BundleRepo adaptador de persistencia para la composición de bundles.
type BundleRepo struct {
	q Querier
}

func NewBundleRepository(q Querier) *BundleRepo {
	return &BundleRepo{q: q}
}

// Replace reemplaza la composición completa del bundle. Se ejecuta dentro de
// la transacción del caller: delete + inserts son atómicos.
func (r *BundleRepo) Replace(bundleID string, components []entity.BundleComponent) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM product_bundles WHERE bundle_id = $1`, bundleID); err != nil {
		return fmt.Errorf("clear bundle components: %w", err)
	}
	query := `
		INSERT INTO product_bundles (bundle_id, component_id, quantity)
		VALUES ($1, $2, $3)`
	for _, c := range components {
		if _, err := r.q.Exec(ctx, query, bundleID, c.ComponentID, c.Quantity); err != nil {
			return fmt.Errorf("insert bundle component: %w", err)
		}
	}
	return nil
}

// GetComponents devuelve los componentes directos del bundle.
func (r *BundleRepo) GetComponents(bundleID string) ([]entity.BundleComponent, error) {
	query := `
		SELECT bundle_id, component_id, quantity
		FROM product_bundles
		WHERE bundle_id = $1
		ORDER BY component_id`
	rows, err := r.q.Query(context.Background(), query, bundleID)
	if err != nil {
		return nil, fmt.Errorf("get bundle components: %w", err)
	}
	defer rows.Close()
	var comps []entity.BundleComponent
	for rows.Next() {
		var c entity.BundleComponent
		if err := rows.Scan(&c.BundleID, &c.ComponentID, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan bundle component: %w", err)
		}
		comps = append(comps, c)
	}
	return comps, rows.Err()
}
