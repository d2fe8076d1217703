package entity

import "time"

// Company representa una organización/tenant del sistema. Sus bodegas le pertenecen;
// el catálogo de productos es global.
type Company struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
