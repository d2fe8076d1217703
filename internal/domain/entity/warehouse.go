package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// (company_id, name) es único; una bodega pertenece exactamente a una empresa.
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
