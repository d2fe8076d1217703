package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-sentinel/internal/application/catalog"
	"github.com/tu-usuario/stock-sentinel/internal/application/dto"
	"github.com/tu-usuario/stock-sentinel/internal/application/inventory"
	"github.com/tu-usuario/stock-sentinel/internal/domain"
	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
)

const (
	testCompanyID  = "comp-1"
	otherCompanyID = "comp-2"
)

type createFixture struct {
	uc        *inventory.CreateProductUseCase
	store     *memStore
	warehouse *fakeWarehouseRepo
	supplier  *fakeSupplierRepo
}

func newCreateFixture() *createFixture {
	store := newMemStore()
	runner := &fakeTxRunner{s: store}
	catalogUC := catalog.NewCatalogUseCase(&fakeProductRepo{s: store}, nil)
	warehouseRepo := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		"wh-1": {ID: "wh-1", CompanyID: testCompanyID, Name: "Central"},
		"wh-2": {ID: "wh-2", CompanyID: testCompanyID, Name: "Norte"},
		"wh-3": {ID: "wh-3", CompanyID: otherCompanyID, Name: "Ajena"},
	}}
	ledger := inventory.NewLedgerUseCase(runner, &fakeStockRepo{s: store}, &fakeTxRepo{s: store}, warehouseRepo)
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", Name: "Proveedor Uno", ContactEmail: "uno@proveedor.test"},
	}}
	return &createFixture{
		uc:        inventory.NewCreateProductUseCase(runner, catalogUC, ledger, warehouseRepo, supplierRepo),
		store:     store,
		warehouse: warehouseRepo,
		supplier:  supplierRepo,
	}
}

func validRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:         "SKU-100",
		Name:        "Tornillo M4",
		ProductType: "ferreteria",
		Price:       decimal.NewFromFloat(2.50),
		Warehouses: []dto.WarehouseStockEntry{
			{WarehouseID: "wh-1", InitialQuantity: 100},
			{WarehouseID: "wh-2", InitialQuantity: 0},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Camino feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_CreaProductoYStockMultiBodega(t *testing.T) {
	f := newCreateFixture()

	productID, err := f.uc.CreateProduct(context.Background(), testCompanyID, testUser, validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, productID)

	product := f.store.products[productID]
	require.NotNil(t, product)
	assert.Equal(t, "SKU-100", product.SKU)

	// Una fila de stock por bodega declarada, incluida la de cantidad cero.
	require.NotNil(t, f.store.stock[stockKey(productID, "wh-1")])
	require.NotNil(t, f.store.stock[stockKey(productID, "wh-2")])
	assert.Equal(t, int64(100), f.store.stock[stockKey(productID, "wh-1")].Quantity)
	assert.Equal(t, int64(0), f.store.stock[stockKey(productID, "wh-2")].Quantity)

	// Una transacción INITIAL_STOCK por bodega.
	require.Len(t, f.store.txs, 2)
	for _, tx := range f.store.txs {
		assert.Equal(t, entity.ReasonInitialStock, tx.Reason)
		assert.Equal(t, testUser, tx.CreatedBy)
	}
}

func TestCreateProduct_BundleTambienLlevaStockDirecto(t *testing.T) {
	f := newCreateFixture()
	in := validRequest()
	in.SKU = "KIT-1"
	in.IsBundle = true

	productID, err := f.uc.CreateProduct(context.Background(), testCompanyID, testUser, in)
	require.NoError(t, err)

	// El stock de un bundle se rastrea directamente, igual que un producto simple.
	assert.True(t, f.store.products[productID].IsBundle)
	assert.NotNil(t, f.store.stock[stockKey(productID, "wh-1")])
}

func TestCreateProduct_ConProveedorValido(t *testing.T) {
	f := newCreateFixture()
	in := validRequest()
	supplierID := "sup-1"
	in.SupplierID = &supplierID

	productID, err := f.uc.CreateProduct(context.Background(), testCompanyID, testUser, in)
	require.NoError(t, err)
	require.NotNil(t, f.store.products[productID].SupplierID)
	assert.Equal(t, "sup-1", *f.store.products[productID].SupplierID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad: ningún fallo deja estado parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_SKUDuplicadoNoDejaRastro(t *testing.T) {
	f := newCreateFixture()
	ctx := context.Background()

	_, err := f.uc.CreateProduct(ctx, testCompanyID, testUser, validRequest())
	require.NoError(t, err)
	productsBefore := len(f.store.products)
	stockBefore := len(f.store.stock)
	txsBefore := len(f.store.txs)

	// Mismo SKU otra vez: conflicto, y nada nuevo persiste.
	_, err = f.uc.CreateProduct(ctx, testCompanyID, testUser, validRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	assert.Len(t, f.store.products, productsBefore)
	assert.Len(t, f.store.stock, stockBefore)
	assert.Len(t, f.store.txs, txsBefore)
}

func TestCreateProduct_FalloEnSegundaBodegaRevierteTodo(t *testing.T) {
	f := newCreateFixture()
	// El alta de stock en wh-2 falla: la unidad completa debe revertirse.
	f.store.failStockCreateWarehouse = "wh-2"

	_, err := f.uc.CreateProduct(context.Background(), testCompanyID, testUser, validRequest())
	require.Error(t, err)

	// Ni producto, ni stock de la primera bodega, ni auditoría: nada parcial.
	assert.Empty(t, f.store.products)
	assert.Empty(t, f.store.stock)
	assert.Empty(t, f.store.txs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y referencias
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_ValidacionEstructural(t *testing.T) {
	f := newCreateFixture()
	ctx := context.Background()

	cases := map[string]func(*dto.CreateProductRequest){
		"sku vacío":            func(in *dto.CreateProductRequest) { in.SKU = "  " },
		"name vacío":           func(in *dto.CreateProductRequest) { in.Name = "" },
		"product_type vacío":   func(in *dto.CreateProductRequest) { in.ProductType = "" },
		"precio negativo":      func(in *dto.CreateProductRequest) { in.Price = decimal.NewFromInt(-1) },
		"sin bodegas":          func(in *dto.CreateProductRequest) { in.Warehouses = nil },
		"cantidad negativa":    func(in *dto.CreateProductRequest) { in.Warehouses[0].InitialQuantity = -1 },
		"bodega repetida":      func(in *dto.CreateProductRequest) { in.Warehouses[1].WarehouseID = "wh-1" },
		"bodega con id vacío":  func(in *dto.CreateProductRequest) { in.Warehouses[0].WarehouseID = "" },
	}
	for name, mutate := range cases {
		in := validRequest()
		mutate(&in)
		_, err := f.uc.CreateProduct(ctx, testCompanyID, testUser, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %q", name)
	}
	// Nada persiste tras los rechazos.
	assert.Empty(t, f.store.products)
	assert.Empty(t, f.store.stock)
}

func TestCreateProduct_BodegaInexistenteRetornaNotFound(t *testing.T) {
	f := newCreateFixture()
	in := validRequest()
	in.Warehouses = []dto.WarehouseStockEntry{{WarehouseID: "no-existe", InitialQuantity: 1}}

	_, err := f.uc.CreateProduct(context.Background(), testCompanyID, testUser, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateProduct_BodegaDeOtraEmpresaProhibida(t *testing.T) {
	f := newCreateFixture()
	in := validRequest()
	in.Warehouses = []dto.WarehouseStockEntry{{WarehouseID: "wh-3", InitialQuantity: 1}}

	_, err := f.uc.CreateProduct(context.Background(), testCompanyID, testUser, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateProduct_ProveedorDesconocidoRetornaNotFound(t *testing.T) {
	f := newCreateFixture()
	in := validRequest()
	supplierID := "sup-fantasma"
	in.SupplierID = &supplierID

	_, err := f.uc.CreateProduct(context.Background(), testCompanyID, testUser, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateProduct_PrecioCeroEsValido(t *testing.T) {
	f := newCreateFixture()
	in := validRequest()
	in.Price = decimal.Zero

	_, err := f.uc.CreateProduct(context.Background(), testCompanyID, testUser, in)
	assert.NoError(t, err)
}
