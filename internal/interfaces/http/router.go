package http

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appanalytics "github.com/jhoicas/estoque-analytics/internal/application/analytics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockHealth *appanalytics.StockHealthUseCase
	FleetStatus *appanalytics.FleetStatusUseCase
	Price       *appanalytics.PriceUseCase
	Consumption *appanalytics.ConsumptionUseCase
	Turnover    *appanalytics.TurnoverUseCase
	Reports     *appanalytics.ReportUseCase
	Metrics     http.Handler     // nil = sin /metrics
	Now         func() time.Time // nil = time.Now
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Salud de inventario
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockHealth, now)
	stock.Get("/health", stockHandler.Health)
	stock.Get("/health/:product_id", stockHandler.Product)

	// Flota
	fleet := api.Group("/fleet")
	fleetHandler := NewFleetHandler(deps.FleetStatus, now)
	fleet.Get("/status", fleetHandler.Status)
	fleet.Get("/status/:asset_id", fleetHandler.Asset)

	// Productos: precio y consumo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Price, deps.Consumption, now)
	products.Get("/:product_id/price", productHandler.Price)
	products.Get("/:product_id/consumption", productHandler.Consumption)

	// Curva ABC
	turnover := api.Group("/turnover")
	turnoverHandler := NewTurnoverHandler(deps.Turnover, now)
	turnover.Get("/abc", turnoverHandler.ABC)

	// Reportes descargables y caché
	reportHandler := NewReportHandler(deps.Reports, deps.StockHealth, deps.Turnover, now)
	api.Get("/reports/stock-health.:format", reportHandler.StockHealth)
	api.Delete("/cache", reportHandler.InvalidateCache)
}
