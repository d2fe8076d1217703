package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo global. El SKU es único en todo el
// catálogo e inmutable una vez asignado. Un producto no pertenece a una bodega:
// puede tener stock en cero o más bodegas (tabla stock).
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	ProductType string          // clave de búsqueda del umbral de stock bajo
	Price       decimal.Decimal // precio de venta, no negativo
	SupplierID  *string         // nil = sin proveedor principal
	IsBundle    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
