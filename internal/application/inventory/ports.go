package inventory

import (
	"context"

	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del pipeline de creación
// y del ledger: ningún estado parcial producto/stock/auditoría sobrevive un fallo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
		txRepo repository.StockTransactionRepository,
	) error) error
}
