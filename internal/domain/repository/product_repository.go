package repository

import "github.com/tu-usuario/stock-sentinel/internal/domain/entity"

// ProductRepository puerto de persistencia para el catálogo global.
// Create devuelve domain.ErrDuplicate si el SKU ya existe: la unicidad se
// resuelve en el constraint del store, dentro de la transacción del caller,
// nunca con una lectura previa.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
}
