package repository

import "github.com/tu-usuario/stock-sentinel/internal/domain/entity"

// WarehouseRepository puerto de persistencia para bodegas.
// Create devuelve domain.ErrDuplicate si (company_id, name) ya existe.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error)
}
