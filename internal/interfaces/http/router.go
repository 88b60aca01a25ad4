package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MeasureUnitUC      *usecase.MeasureUnitUseCase
	MaterialAssetUC    *usecase.MaterialAssetUseCase
	AmountConstraintUC *usecase.AmountConstraintUseCase
	DocumentTypeUC     *usecase.DocumentTypeUseCase
	WarehouseUC        *usecase.WarehouseUseCase
	ContractorGroupUC  *usecase.ContractorGroupUseCase
	ContractorUC       *usecase.ContractorUseCase
	RegisterDocument   *stock.RegisterDocumentUseCase
	DocumentQuery      *stock.DocumentQueryUseCase
	DocumentPDF        *stock.DocumentPDFUseCase
	TransferUC         *stock.TransferUseCase
	BalanceUC          *stock.BalanceUseCase
	AuthUC             *auth.AuthUseCase
	JWTSecret          string
}

// Router registra las rutas de la API. Las escrituras de catálogo y el
// registro de documentos exigen rol admin o almacenista; las lecturas solo
// requieren token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	staff := RequireRole(entity.RoleAdmin, entity.RoleAlmacenista)

	// Unidades de medida
	units := protected.Group("/units")
	unitHandler := NewMeasureUnitHandler(deps.MeasureUnitUC)
	units.Post("/", staff, unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Get("/:id", unitHandler.GetByID)
	units.Put("/:id", staff, unitHandler.Update)
	units.Delete("/:id", staff, unitHandler.Delete)

	// Bienes materiales
	assets := protected.Group("/assets")
	assetHandler := NewMaterialAssetHandler(deps.MaterialAssetUC)
	assets.Post("/", staff, assetHandler.Create)
	assets.Get("/", assetHandler.List)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Put("/:id", staff, assetHandler.Update)
	assets.Delete("/:id", staff, assetHandler.Delete)

	// Restricciones de cantidad
	constraints := protected.Group("/constraints")
	constraintHandler := NewAmountConstraintHandler(deps.AmountConstraintUC)
	constraints.Post("/", staff, constraintHandler.Create)
	constraints.Get("/", constraintHandler.List)
	constraints.Get("/asset/:asset_id", constraintHandler.GetByAsset)
	constraints.Get("/:id", constraintHandler.GetByID)
	constraints.Put("/:id", staff, constraintHandler.Update)
	constraints.Delete("/:id", staff, constraintHandler.Delete)

	// Tipos de documento
	docTypes := protected.Group("/document-types")
	docTypeHandler := NewDocumentTypeHandler(deps.DocumentTypeUC)
	docTypes.Post("/", staff, docTypeHandler.Create)
	docTypes.Get("/", docTypeHandler.List)
	docTypes.Get("/:id", docTypeHandler.GetByID)
	docTypes.Put("/:id", staff, docTypeHandler.Update)
	docTypes.Delete("/:id", staff, docTypeHandler.Delete)

	// Almacenes (rutas fijas antes que :id)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", staff, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/tree", warehouseHandler.Tree)
	warehouses.Get("/:id/children", warehouseHandler.Children)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id/move", staff, warehouseHandler.Move)
	warehouses.Put("/:id", staff, warehouseHandler.Update)
	warehouses.Delete("/:id", staff, warehouseHandler.Delete)

	// Grupos de contratistas (rutas fijas antes que :id)
	groups := protected.Group("/contractor-groups")
	groupHandler := NewContractorGroupHandler(deps.ContractorGroupUC)
	groups.Post("/", staff, groupHandler.Create)
	groups.Get("/", groupHandler.List)
	groups.Get("/tree", groupHandler.Tree)
	groups.Get("/:id/children", groupHandler.Children)
	groups.Get("/:id", groupHandler.GetByID)
	groups.Put("/:id/move", staff, groupHandler.Move)
	groups.Put("/:id", staff, groupHandler.Update)
	groups.Delete("/:id", staff, groupHandler.Delete)

	// Contratistas
	contractors := protected.Group("/contractors")
	contractorHandler := NewContractorHandler(deps.ContractorUC)
	contractors.Post("/", staff, contractorHandler.Create)
	contractors.Get("/", contractorHandler.List)
	contractors.Get("/:id", contractorHandler.GetByID)
	contractors.Put("/:id", staff, contractorHandler.Update)
	contractors.Delete("/:id", staff, contractorHandler.Delete)

	// Documentos de movimiento
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.RegisterDocument, deps.DocumentQuery, deps.DocumentPDF)
	documents.Post("/", staff, documentHandler.Register)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id/pdf", documentHandler.PDF)
	documents.Get("/:id", documentHandler.GetByID)

	// Traslados
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", staff, transferHandler.Create)

	// Existencias
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.BalanceUC)
	stockGroup.Get("/balances", stockHandler.Balances)
	stockGroup.Get("/violations", stockHandler.Violations)
}
