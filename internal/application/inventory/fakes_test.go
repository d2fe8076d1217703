package inventory_test

import (
	"context"
	"sort"

	"github.com/tu-usuario/stock-sentinel/internal/application/inventory"
	"github.com/tu-usuario/stock-sentinel/internal/domain"
	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria con semántica transaccional (snapshot + restore)
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products map[string]*entity.Product
	skus     map[string]string // sku -> product id
	stock    map[string]*entity.Stock
	txs      []*entity.StockTransaction

	// fallo inyectable: Create de stock falla para esta bodega
	failStockCreateWarehouse string
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]*entity.Product{},
		skus:     map[string]string{},
		stock:    map[string]*entity.Stock{},
	}
}

func stockKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range s.products {
		p := *v
		c.products[k] = &p
	}
	for k, v := range s.skus {
		c.skus[k] = v
	}
	for k, v := range s.stock {
		st := *v
		c.stock[k] = &st
	}
	c.txs = append([]*entity.StockTransaction(nil), s.txs...)
	return c
}

func (s *memStore) restore(snap *memStore) {
	s.products = snap.products
	s.skus = snap.skus
	s.stock = snap.stock
	s.txs = snap.txs
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios sobre el store
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.s.skus[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.s.products[p.ID] = &cp
	r.s.skus[p.SKU] = p.ID
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	id, ok := r.s.skus[sku]
	if !ok {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeStockRepo struct{ s *memStore }

func (r *fakeStockRepo) Create(st *entity.Stock) error {
	if st.WarehouseID == r.s.failStockCreateWarehouse && r.s.failStockCreateWarehouse != "" {
		return domain.ErrConflict
	}
	key := stockKey(st.ProductID, st.WarehouseID)
	if _, ok := r.s.stock[key]; ok {
		return domain.ErrDuplicateStock
	}
	cp := *st
	r.s.stock[key] = &cp
	return nil
}

func (r *fakeStockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	st, ok := r.s.stock[stockKey(productID, warehouseID)]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

// ApplyDelta replica la escritura condicional del adaptador real: solo aplica
// si la fila existe y la cantidad resultante es >= 0.
func (r *fakeStockRepo) ApplyDelta(productID, warehouseID string, delta int64) (bool, error) {
	st, ok := r.s.stock[stockKey(productID, warehouseID)]
	if !ok {
		return false, nil
	}
	if st.Quantity+delta < 0 {
		return false, nil
	}
	st.Quantity += delta
	return true, nil
}

type fakeTxRepo struct{ s *memStore }

func (r *fakeTxRepo) Create(tx *entity.StockTransaction) error {
	cp := *tx
	r.s.txs = append(r.s.txs, &cp)
	return nil
}

func (r *fakeTxRepo) ListByPair(productID, warehouseID string, limit, offset int) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	for _, tx := range r.s.txs {
		if tx.ProductID == productID && tx.WarehouseID == warehouseID {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTxRepo) SumByPair(productID, warehouseID string) (int64, error) {
	var total int64
	for _, tx := range r.s.txs {
		if tx.ProductID == productID && tx.WarehouseID == warehouseID {
			total += tx.ChangeAmount
		}
	}
	return total, nil
}

// fakeTxRunner implementa inventory.TxRunner: toma un snapshot del store antes
// de ejecutar y lo restaura ante error, igual que el Rollback real.
type fakeTxRunner struct{ s *memStore }

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	txRepo repository.StockTransactionRepository,
) error) error {
	snap := tr.s.snapshot()
	err := fn(&fakeProductRepo{s: tr.s}, &fakeStockRepo{s: tr.s}, &fakeTxRepo{s: tr.s})
	if err != nil {
		tr.s.restore(snap)
	}
	return err
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	return w, nil
}

func (r *fakeWarehouseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSupplierRepo) GetByIDs(ids []string) (map[string]*entity.Supplier, error) {
	out := map[string]*entity.Supplier{}
	for _, id := range ids {
		if s, ok := r.suppliers[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}
