package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-sentinel/internal/domain"
	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

// LedgerUseCase es el único camino por el que cambia una cantidad de stock:
// altas iniciales, ventas, ajustes y correcciones pasan todos por aquí, y cada
// cambio aplicado deja exactamente una StockTransaction con el delta firmado.
type LedgerUseCase struct {
	txRunner      TxRunner
	stockRepo     repository.StockRepository
	txRepo        repository.StockTransactionRepository
	warehouseRepo repository.WarehouseRepository
}

// NewLedgerUseCase construye el ledger. stockRepo, txRepo y warehouseRepo van
// atados al pool (solo lecturas); las escrituras usan siempre repos atados a la
// transacción.
func NewLedgerUseCase(txRunner TxRunner, stockRepo repository.StockRepository, txRepo repository.StockTransactionRepository, warehouseRepo repository.WarehouseRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, stockRepo: stockRepo, txRepo: txRepo, warehouseRepo: warehouseRepo}
}

// validReasons razones aceptadas para ajustes manuales (INITIAL_STOCK y SALE
// quedan reservados para sus flujos propios).
var validReasons = map[string]bool{
	entity.ReasonAdjustment: true,
	entity.ReasonCorrection: true,
	entity.ReasonRestock:    true,
}

// InitializeStockInTx crea la fila de stock y su transacción INITIAL_STOCK usando
// repositorios atados a la transacción del caller (patrón del pipeline de creación).
// Devuelve domain.ErrDuplicateStock si el par ya existe.
func (uc *LedgerUseCase) InitializeStockInTx(
	stockRepo repository.StockRepository,
	txRepo repository.StockTransactionRepository,
	productID, warehouseID string,
	initialQuantity int64,
	userID string,
	now time.Time,
) error {
	if productID == "" || warehouseID == "" || initialQuantity < 0 {
		return domain.ErrInvalidInput
	}
	stock := &entity.Stock{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    initialQuantity,
		UpdatedAt:   now,
	}
	if err := stockRepo.Create(stock); err != nil {
		return err
	}
	tx := &entity.StockTransaction{
		ID:           uuid.New().String(),
		ProductID:    productID,
		WarehouseID:  warehouseID,
		ChangeAmount: initialQuantity,
		Reason:       entity.ReasonInitialStock,
		CreatedAt:    now,
		CreatedBy:    userID,
	}
	return txRepo.Create(tx)
}

// checkWarehouse valida que la bodega exista y pertenezca a la empresa del
// caller, como hacen el pipeline de creación y el flujo de ventas.
func (uc *LedgerUseCase) checkWarehouse(companyID, warehouseID string) error {
	if warehouseID == "" {
		return domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	if companyID != "" && warehouse.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return nil
}

// InitializeStock versión independiente de InitializeStockInTx: abre su propia
// transacción. Para dar stock a un producto existente en una bodega nueva.
func (uc *LedgerUseCase) InitializeStock(ctx context.Context, companyID, productID, warehouseID string, initialQuantity int64, userID string) error {
	if initialQuantity < 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.checkWarehouse(companyID, warehouseID); err != nil {
		return err
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		txRepo repository.StockTransactionRepository,
	) error {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		return uc.InitializeStockInTx(stockRepo, txRepo, productID, warehouseID, initialQuantity, userID, now)
	})
}

// AdjustStockInTx aplica un delta con una única escritura condicional y registra
// la transacción de auditoría, todo sobre los repos de la transacción del caller.
// Un resultado negativo se rechaza con domain.ErrInsufficientStock, nunca se
// recorta en silencio.
func (uc *LedgerUseCase) AdjustStockInTx(
	stockRepo repository.StockRepository,
	txRepo repository.StockTransactionRepository,
	productID, warehouseID string,
	delta int64,
	reason, userID string,
	now time.Time,
) error {
	applied, err := stockRepo.ApplyDelta(productID, warehouseID, delta)
	if err != nil {
		return err
	}
	if !applied {
		// La escritura condicional no distingue fila inexistente de cantidad
		// insuficiente; una lectura en la misma tx desambigua.
		stock, err := stockRepo.Get(productID, warehouseID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	tx := &entity.StockTransaction{
		ID:           uuid.New().String(),
		ProductID:    productID,
		WarehouseID:  warehouseID,
		ChangeAmount: delta,
		Reason:       reason,
		CreatedAt:    now,
		CreatedBy:    userID,
	}
	return txRepo.Create(tx)
}

// AdjustStock aplica un delta firmado a un par (producto, bodega) en su propia
// transacción. Valida la razón contra el conjunto de ajustes manuales y la
// pertenencia de la bodega a la empresa del caller.
func (uc *LedgerUseCase) AdjustStock(ctx context.Context, companyID, productID, warehouseID string, delta int64, reason, userID string) error {
	if productID == "" || warehouseID == "" || delta == 0 {
		return domain.ErrInvalidInput
	}
	if !validReasons[reason] {
		return domain.ErrInvalidInput
	}
	if err := uc.checkWarehouse(companyID, warehouseID); err != nil {
		return err
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		stockRepo repository.StockRepository,
		txRepo repository.StockTransactionRepository,
	) error {
		return uc.AdjustStockInTx(stockRepo, txRepo, productID, warehouseID, delta, reason, userID, now)
	})
}

// CurrentStock devuelve la cantidad actual o domain.ErrNotFound si el par no existe.
func (uc *LedgerUseCase) CurrentStock(productID, warehouseID string) (*entity.Stock, error) {
	if productID == "" || warehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	stock, err := uc.stockRepo.Get(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	return stock, nil
}

// ListTransactions lista el registro de auditoría de un par (producto, bodega).
func (uc *LedgerUseCase) ListTransactions(productID, warehouseID string, limit, offset int) ([]*entity.StockTransaction, error) {
	if productID == "" || warehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.txRepo.ListByPair(productID, warehouseID, limit, offset)
}
