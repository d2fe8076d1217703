package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/stock-sentinel/internal/application/alerts"
	"github.com/tu-usuario/stock-sentinel/internal/application/auth"
	"github.com/tu-usuario/stock-sentinel/internal/application/catalog"
	"github.com/tu-usuario/stock-sentinel/internal/application/inventory"
	"github.com/tu-usuario/stock-sentinel/internal/application/sales"
	"github.com/tu-usuario/stock-sentinel/internal/application/usecase"
	"github.com/tu-usuario/stock-sentinel/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/stock-sentinel/internal/interfaces/http"
	"github.com/tu-usuario/stock-sentinel/internal/metrics"
	"github.com/tu-usuario/stock-sentinel/pkg/config"
	"github.com/tu-usuario/stock-sentinel/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Migraciones embebidas: el esquema queda al día antes de abrir el pool.
	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	stockTxRepo := postgres.NewStockTransactionRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	thresholdRepo := postgres.NewThresholdRepository(pool)
	alertSourceRepo := postgres.NewAlertSourceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := catalog.NewCatalogUseCase(productRepo, txRunner)
	ledgerUC := inventory.NewLedgerUseCase(txRunner, stockRepo, stockTxRepo, warehouseRepo)
	createProductUC := inventory.NewCreateProductUseCase(txRunner, catalogUC, ledgerUC, warehouseRepo, supplierRepo)
	recordSaleUC := sales.NewRecordSaleUseCase(txRunner, ledgerUC, productRepo, warehouseRepo)
	alertUC := alerts.NewLowStockAlertUseCase(alertSourceRepo, thresholdRepo, saleRepo, supplierRepo)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, companyRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	thresholdUC := usecase.NewThresholdUseCase(thresholdRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	if cfg.Metrics.Enabled {
		metrics.Init(cfg.Metrics.Prefix)
		app.Use(metrics.Middleware())
		app.Get("/metrics", metrics.Handler())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Sentinel API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Log:           log,
		CompanyUC:     companyUC,
		WarehouseUC:   warehouseUC,
		SupplierUC:    supplierUC,
		ThresholdUC:   thresholdUC,
		CreateProduct: createProductUC,
		CatalogUC:     catalogUC,
		Ledger:        ledgerUC,
		RecordSale:    recordSaleUC,
		AlertUC:       alertUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
