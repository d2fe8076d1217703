package http_test

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/stock-sentinel/internal/application/inventory"
	"github.com/tu-usuario/stock-sentinel/internal/domain"
	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para probar handlers de punta a punta (app.Test)
// ──────────────────────────────────────────────────────────────────────────────

type httpStore struct {
	products map[string]*entity.Product
	skus     map[string]string // sku -> product id
	stock    map[string]*entity.Stock
	txs      []*entity.StockTransaction
}

func newHTTPStore() *httpStore {
	return &httpStore{
		products: map[string]*entity.Product{},
		skus:     map[string]string{},
		stock:    map[string]*entity.Stock{},
	}
}

func pairKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

type httpProductRepo struct{ s *httpStore }

func (r *httpProductRepo) Create(p *entity.Product) error {
	if _, ok := r.s.skus[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.s.products[p.ID] = &cp
	r.s.skus[p.SKU] = p.ID
	return nil
}

func (r *httpProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *httpProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	id, ok := r.s.skus[sku]
	if !ok {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *httpProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type httpStockRepo struct{ s *httpStore }

func (r *httpStockRepo) Create(st *entity.Stock) error {
	key := pairKey(st.ProductID, st.WarehouseID)
	if _, ok := r.s.stock[key]; ok {
		return domain.ErrDuplicateStock
	}
	cp := *st
	r.s.stock[key] = &cp
	return nil
}

func (r *httpStockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	st, ok := r.s.stock[pairKey(productID, warehouseID)]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (r *httpStockRepo) ApplyDelta(productID, warehouseID string, delta int64) (bool, error) {
	st, ok := r.s.stock[pairKey(productID, warehouseID)]
	if !ok {
		return false, nil
	}
	if st.Quantity+delta < 0 {
		return false, nil
	}
	st.Quantity += delta
	return true, nil
}

type httpTxRepo struct{ s *httpStore }

func (r *httpTxRepo) Create(tx *entity.StockTransaction) error {
	cp := *tx
	r.s.txs = append(r.s.txs, &cp)
	return nil
}

func (r *httpTxRepo) ListByPair(productID, warehouseID string, limit, offset int) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	for _, tx := range r.s.txs {
		if tx.ProductID == productID && tx.WarehouseID == warehouseID {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *httpTxRepo) SumByPair(productID, warehouseID string) (int64, error) {
	var total int64
	for _, tx := range r.s.txs {
		if tx.ProductID == productID && tx.WarehouseID == warehouseID {
			total += tx.ChangeAmount
		}
	}
	return total, nil
}

type httpTxRunner struct{ s *httpStore }

var _ inventory.TxRunner = (*httpTxRunner)(nil)

func (tr *httpTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	txRepo repository.StockTransactionRepository,
) error) error {
	return fn(&httpProductRepo{s: tr.s}, &httpStockRepo{s: tr.s}, &httpTxRepo{s: tr.s})
}

// httpWarehouseRepo admite inyectar un error de lectura para el camino 500.
type httpWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
	getErr     error
}

func (r *httpWarehouseRepo) Create(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *httpWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	return w, nil
}

func (r *httpWarehouseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

type httpSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *httpSupplierRepo) Create(s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *httpSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *httpSupplierRepo) GetByIDs(ids []string) (map[string]*entity.Supplier, error) {
	out := map[string]*entity.Supplier{}
	for _, id := range ids {
		if s, ok := r.suppliers[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func (r *httpSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fuentes del motor de alertas
// ──────────────────────────────────────────────────────────────────────────────

type httpAlertSourceRepo struct {
	rows    []repository.CompanyStockRow
	listErr error
}

func (r *httpAlertSourceRepo) ListCompanyStock(ctx context.Context, companyID string) ([]repository.CompanyStockRow, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.rows, nil
}

type httpThresholdRepo struct {
	thresholds map[string]*entity.LowStockThreshold
}

func (r *httpThresholdRepo) Upsert(t *entity.LowStockThreshold) error {
	r.thresholds[t.ProductType] = t
	return nil
}

func (r *httpThresholdRepo) Get(productType string) (*entity.LowStockThreshold, error) {
	return r.thresholds[productType], nil
}

func (r *httpThresholdRepo) List() ([]*entity.LowStockThreshold, error) {
	var out []*entity.LowStockThreshold
	for _, t := range r.thresholds {
		out = append(out, t)
	}
	return out, nil
}

type httpSaleRepo struct {
	aggregates []repository.SalesAggregate
}

func (r *httpSaleRepo) Create(sale *entity.Sale) error { return nil }

func (r *httpSaleRepo) SumRecentByCompany(ctx context.Context, companyID string, since time.Time) ([]repository.SalesAggregate, error) {
	return r.aggregates, nil
}
