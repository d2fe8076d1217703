package catalog

import (
	"context"

	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

// BundleTxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del grafo de bundles atados a esa tx. La verificación de ciclos y
// el reemplazo de aristas deben ver el mismo estado.
type BundleTxRunner interface {
	RunBundle(ctx context.Context, fn func(
		bundleRepo repository.BundleRepository,
		productRepo repository.ProductRepository,
	) error) error
}
