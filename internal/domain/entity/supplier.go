package entity

import "time"

// Supplier representa un proveedor. Entidad independiente: un producto tiene a lo sumo
// un proveedor principal (referencia opcional en Product).
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
