package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/stock-sentinel/internal/application/catalog"
	"github.com/tu-usuario/stock-sentinel/internal/application/dto"
	"github.com/tu-usuario/stock-sentinel/internal/domain"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

// CreateProductUseCase orquesta la creación atómica de un producto con su stock
// inicial multi-bodega. El producto y todas sus filas de stock se confirman en
// una sola transacción: ningún fallo deja un producto sin inventario ni filas
// de inventario parciales (la clase de defecto queda eliminada por construcción).
type CreateProductUseCase struct {
	txRunner      TxRunner
	catalogUC     *catalog.CatalogUseCase
	ledger        *LedgerUseCase
	warehouseRepo repository.WarehouseRepository
	supplierRepo  repository.SupplierRepository
}

// NewCreateProductUseCase construye el pipeline de creación.
func NewCreateProductUseCase(
	txRunner TxRunner,
	catalogUC *catalog.CatalogUseCase,
	ledger *LedgerUseCase,
	warehouseRepo repository.WarehouseRepository,
	supplierRepo repository.SupplierRepository,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		txRunner:      txRunner,
		catalogUC:     catalogUC,
		ledger:        ledger,
		warehouseRepo: warehouseRepo,
		supplierRepo:  supplierRepo,
	}
}

// CreateProduct valida el request, y dentro de una transacción registra el
// producto y crea el stock inicial de cada bodega declarada. Errores:
// domain.ErrInvalidInput (estructural), domain.ErrDuplicate (SKU en conflicto),
// domain.ErrNotFound (bodega o proveedor desconocido). Cualquier fallo aborta la
// unidad completa.
func (uc *CreateProductUseCase) CreateProduct(ctx context.Context, companyID, userID string, in dto.CreateProductRequest) (string, error) {
	// 1. Validación estructural: sin estado mutado ante cualquier fallo.
	if strings.TrimSpace(in.SKU) == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.ProductType) == "" {
		return "", domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return "", domain.ErrInvalidInput
	}
	if len(in.Warehouses) == 0 {
		return "", domain.ErrInvalidInput
	}
	seen := make(map[string]bool, len(in.Warehouses))
	for _, w := range in.Warehouses {
		if w.WarehouseID == "" || w.InitialQuantity < 0 {
			return "", domain.ErrInvalidInput
		}
		if seen[w.WarehouseID] {
			return "", domain.ErrInvalidInput
		}
		seen[w.WarehouseID] = true
	}

	// 2. Referencias: bodegas de la empresa del caller y proveedor (si viene).
	for _, w := range in.Warehouses {
		wh, err := uc.warehouseRepo.GetByID(w.WarehouseID)
		if err != nil {
			return "", err
		}
		if wh == nil {
			return "", domain.ErrNotFound
		}
		if companyID != "" && wh.CompanyID != companyID {
			return "", domain.ErrForbidden
		}
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return "", err
		}
		if supplier == nil {
			return "", domain.ErrNotFound
		}
	}

	now := time.Now()
	var productID string

	// 3-5. Unidad atómica: registro en catálogo + stock inicial por bodega.
	// TxRunner hace Commit si todo ok y Rollback ante cualquier error.
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		txRepo repository.StockTransactionRepository,
	) error {
		product, err := uc.catalogUC.RegisterProductInTx(productRepo, catalog.RegisterProductInput{
			SKU:         in.SKU,
			Name:        in.Name,
			Description: in.Description,
			ProductType: in.ProductType,
			Price:       in.Price,
			SupplierID:  in.SupplierID,
			IsBundle:    in.IsBundle,
		})
		if err != nil {
			return err
		}
		for _, w := range in.Warehouses {
			if err := uc.ledger.InitializeStockInTx(stockRepo, txRepo, product.ID, w.WarehouseID, w.InitialQuantity, userID, now); err != nil {
				return err
			}
		}
		productID = product.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return productID, nil
}
