package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-sentinel/internal/application/dto"
	"github.com/tu-usuario/stock-sentinel/internal/application/inventory"
	"github.com/tu-usuario/stock-sentinel/internal/domain"
	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de venta e inventario atados a esa tx: la venta y su descuento de
// stock se confirman o se revierten juntos.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		txRepo repository.StockTransactionRepository,
	) error) error
}

// RecordSaleUseCase registra una venta y descuenta el stock a través del ledger
// (único camino de mutación) en la misma transacción.
type RecordSaleUseCase struct {
	txRunner      SaleTxRunner
	ledger        *inventory.LedgerUseCase
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRecordSaleUseCase construye el caso de uso de ventas.
func NewRecordSaleUseCase(
	txRunner SaleTxRunner,
	ledger *inventory.LedgerUseCase,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		txRunner:      txRunner,
		ledger:        ledger,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// RecordSale valida producto y bodega, y en una transacción inserta la venta y
// aplica el descuento con razón SALE. Una cantidad que dejaría el stock negativo
// devuelve domain.ErrInsufficientStock y no persiste nada.
// Cantidad cero es válida: queda la fila de venta (demanda medible) sin tocar stock.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, companyID, userID string, in dto.RecordSaleRequest) (string, error) {
	if in.ProductID == "" || in.WarehouseID == "" || in.Quantity < 0 {
		return "", domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return "", err
	}
	if warehouse == nil {
		return "", domain.ErrNotFound
	}
	if companyID != "" && warehouse.CompanyID != companyID {
		return "", domain.ErrForbidden
	}

	now := time.Now()
	soldAt := now
	if in.SoldAt != nil {
		soldAt = *in.SoldAt
	}
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		SoldAt:      soldAt,
		CreatedBy:   userID,
	}

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		txRepo repository.StockTransactionRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		if in.Quantity == 0 {
			return nil
		}
		return uc.ledger.AdjustStockInTx(stockRepo, txRepo, in.ProductID, in.WarehouseID, -in.Quantity, entity.ReasonSale, userID, now)
	})
	if err != nil {
		return "", err
	}
	return sale.ID, nil
}
