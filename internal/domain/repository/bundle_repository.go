package repository

import "github.com/tu-usuario/stock-sentinel/internal/domain/entity"

// BundleRepository puerto de persistencia para las aristas del grafo de bundles.
type BundleRepository interface {
	// Replace reemplaza la lista de componentes del bundle (borra e inserta).
	// Debe ejecutarse dentro de una transacción junto con la verificación de ciclos.
	Replace(bundleID string, components []entity.BundleComponent) error
	// GetComponents devuelve las aristas salientes de un producto (sus componentes directos).
	GetComponents(bundleID string) ([]entity.BundleComponent, error)
}
