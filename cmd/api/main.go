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

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	unitRepo := postgres.NewMeasureUnitRepository(pool)
	assetRepo := postgres.NewMaterialAssetRepository(pool)
	constraintRepo := postgres.NewAmountConstraintRepository(pool)
	typeRepo := postgres.NewDocumentTypeRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	groupRepo := postgres.NewContractorGroupRepository(pool)
	contractorRepo := postgres.NewContractorRepository(pool)
	docRepo := postgres.NewDocumentRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	unitUC := usecase.NewMeasureUnitUseCase(unitRepo)
	assetUC := usecase.NewMaterialAssetUseCase(assetRepo, unitRepo)
	constraintUC := usecase.NewAmountConstraintUseCase(constraintRepo, assetRepo)
	typeUC := usecase.NewDocumentTypeUseCase(typeRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	groupUC := usecase.NewContractorGroupUseCase(groupRepo)
	contractorUC := usecase.NewContractorUseCase(contractorRepo, groupRepo)

	registerDocUC := stock.NewRegisterDocumentUseCase(txRunner, typeRepo, warehouseRepo, contractorRepo, assetRepo, docRepo)
	transferUC := stock.NewTransferUseCase(txRunner, typeRepo, warehouseRepo, contractorRepo, assetRepo)
	docQueryUC := stock.NewDocumentQueryUseCase(docRepo)
	balanceUC := stock.NewBalanceUseCase(stockRepo, warehouseRepo)

	// PDF: representación imprimible de los documentos de movimiento
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	docPDFUC := stock.NewDocumentPDFUseCase(docRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MeasureUnitUC:      unitUC,
		MaterialAssetUC:    assetUC,
		AmountConstraintUC: constraintUC,
		DocumentTypeUC:     typeUC,
		WarehouseUC:        warehouseUC,
		ContractorGroupUC:  groupUC,
		ContractorUC:       contractorUC,
		RegisterDocument:   registerDocUC,
		DocumentQuery:      docQueryUC,
		DocumentPDF:        docPDFUC,
		TransferUC:         transferUC,
		BalanceUC:          balanceUC,
		AuthUC:             authUC,
		JWTSecret:          cfg.JWT.Secret,
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
