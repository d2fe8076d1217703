package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
}

// SetThresholdRequest body de PUT /api/thresholds/{product_type}.
type SetThresholdRequest struct {
	Threshold int64 `json:"threshold"`
}

// ThresholdResponse umbral configurado para un tipo de producto.
type ThresholdResponse struct {
	ProductType string `json:"product_type"`
	Threshold   int64  `json:"threshold"`
}
