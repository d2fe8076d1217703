package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseStockEntry entrada de stock inicial por bodega en la creación de producto.
type WarehouseStockEntry struct {
	WarehouseID     string `json:"warehouse_id"`
	InitialQuantity int64  `json:"initial_quantity"`
}

// CreateProductRequest body de POST /api/products: producto + stock inicial por
// bodega, creados en una sola unidad atómica.
type CreateProductRequest struct {
	SKU         string                `json:"sku" validate:"required,min=1,max=100"`
	Name        string                `json:"name" validate:"required,min=1,max=200"`
	Description string                `json:"description"`
	ProductType string                `json:"product_type" validate:"required"`
	Price       decimal.Decimal       `json:"price"`
	SupplierID  *string               `json:"supplier_id,omitempty"`
	IsBundle    bool                  `json:"is_bundle"`
	Warehouses  []WarehouseStockEntry `json:"warehouses" validate:"required,min=1"`
}

// CreateProductResponse respuesta 201 de la creación.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ProductType string          `json:"product_type"`
	Price       decimal.Decimal `json:"price"`
	SupplierID  *string         `json:"supplier_id"`
	IsBundle    bool            `json:"is_bundle"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// BundleComponentDTO componente de un bundle.
type BundleComponentDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// DefineBundleRequest body de POST /api/products/{id}/bundle.
type DefineBundleRequest struct {
	Components []BundleComponentDTO `json:"components" validate:"required,min=1"`
}
