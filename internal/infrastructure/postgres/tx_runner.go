package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/stock-sentinel/internal/application/catalog"
	"github.com/tu-usuario/stock-sentinel/internal/application/inventory"
	"github.com/tu-usuario/stock-sentinel/internal/application/sales"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

// Ensure TxRunner implements the application transaction ports.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ sales.SaleTxRunner = (*TxRunner)(nil)
var _ catalog.BundleTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit
// o Rollback. Unidad atómica del pipeline de creación y del ledger.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	txRepo repository.StockTransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	stockRepo := NewStockRepository(tx)
	txRepo := NewStockTransactionRepository(tx)

	if err := fn(productRepo, stockRepo, txRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale inicia una transacción con repos de venta e inventario (para RecordSale).
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
	txRepo repository.StockTransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	stockRepo := NewStockRepository(tx)
	txRepo := NewStockTransactionRepository(tx)

	if err := fn(saleRepo, stockRepo, txRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBundle inicia una transacción con los repos del grafo de bundles: la
// verificación de ciclos y el reemplazo de aristas ven el mismo estado.
func (r *TxRunner) RunBundle(ctx context.Context, fn func(
	bundleRepo repository.BundleRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	bundleRepo := NewBundleRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(bundleRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
