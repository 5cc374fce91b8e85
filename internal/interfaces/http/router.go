package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/cart"
	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/importer"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/replenishment"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
	"github.com/jhoicas/Almacen-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC       *catalog.UseCase
	ImportUC        *importer.ImportUseCase
	ReplenishmentUC *replenishment.UseCase
	CartUC          *cart.UseCase
	LedgerUC        *ledger.UseCase
	ReportsUC       *reports.UseCase
	Stock           config.StockConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", productHandler.List)
	products.Get("/:name", productHandler.GetByName)
	products.Delete("/:name", productHandler.Delete)

	// Importaciones (reconciliación)
	imports := api.Group("/imports")
	importHandler := NewImportHandler(deps.ImportUC, deps.Stock)
	imports.Post("/resolve-mapping", importHandler.ResolveMapping)
	imports.Post("/stock-count", importHandler.ImportStockCount)
	imports.Post("/master-data", importHandler.ImportMasterData)

	// Sugerencias de reposición
	repl := api.Group("/replenishment")
	replHandler := NewReplenishmentHandler(deps.ReplenishmentUC)
	repl.Get("/transfers", replHandler.SuggestTransfers)
	repl.Get("/purchases", replHandler.SuggestPurchases)

	// Carrito de traslados
	cartGroup := api.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Post("/", cartHandler.Open)
	cartGroup.Post("/:id/lines", cartHandler.AddLines)
	cartGroup.Delete("/:id/lines/:index", cartHandler.ReverseLine)
	cartGroup.Post("/:id/finalize", cartHandler.Finalize)

	// Operaciones directas sobre el libro
	ledgerGroup := api.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgerGroup.Post("/adjustments", ledgerHandler.Adjust)
	ledgerGroup.Post("/sales", ledgerHandler.DeductSales)
	ledgerGroup.Post("/purchases", ledgerHandler.RegisterPurchase)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportsUC)
	api.Get("/reports/purchase-order", reportHandler.PurchaseOrder)
	api.Get("/audit", reportHandler.AuditLog)
}
