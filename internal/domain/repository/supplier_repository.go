package repository

import "github.com/tu-usuario/stock-sentinel/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	// GetByIDs resuelve varios proveedores de una vez (para el motor de alertas).
	// IDs desconocidos simplemente no aparecen en el mapa.
	GetByIDs(ids []string) (map[string]*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
}
