package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-sentinel/internal/application/alerts"
	"github.com/tu-usuario/stock-sentinel/internal/application/auth"
	"github.com/tu-usuario/stock-sentinel/internal/application/catalog"
	"github.com/tu-usuario/stock-sentinel/internal/application/inventory"
	"github.com/tu-usuario/stock-sentinel/internal/application/sales"
	"github.com/tu-usuario/stock-sentinel/internal/application/usecase"
	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Log           *logger.Logger
	CompanyUC     *usecase.CompanyUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	SupplierUC    *usecase.SupplierUseCase
	ThresholdUC   *usecase.ThresholdUseCase
	CreateProduct *inventory.CreateProductUseCase
	CatalogUC     *catalog.CatalogUseCase
	Ledger        *inventory.LedgerUseCase
	RecordSale    *sales.RecordSaleUseCase
	AlertUC       *alerts.LowStockAlertUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(LoggerMiddleware(deps.Log))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; alta inicial del tenant)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Alertas de stock bajo (protegido, alcance por empresa del token)
	alertHandler := NewAlertHandler(deps.AlertUC)
	protected.Get("/companies/:company_id/alerts/low-stock", alertHandler.LowStock)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CreateProduct, deps.CatalogUC)
	inventoryHandler := NewInventoryHandler(deps.Ledger)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id/bundle", productHandler.DefineBundle)
	products.Get("/:id/bundle", productHandler.GetBundle)
	products.Post("/:id/stock", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), inventoryHandler.InitializeStock)

	// Inventory (protegido; ajustes solo admin/bodeguero)
	invGroup := protected.Group("/inventory")
	invGroup.Post("/adjustments", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), inventoryHandler.Adjust)
	invGroup.Get("/stock", inventoryHandler.GetStock)
	invGroup.Get("/transactions", inventoryHandler.ListTransactions)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.RecordSale)
	salesGroup.Post("/", saleHandler.Create)

	// Thresholds (protegido; escritura solo admin)
	thresholds := protected.Group("/thresholds")
	thresholdHandler := NewThresholdHandler(deps.ThresholdUC)
	thresholds.Get("/", thresholdHandler.List)
	thresholds.Put("/:product_type", RequireRole(entity.RoleAdmin), thresholdHandler.Set)
}
