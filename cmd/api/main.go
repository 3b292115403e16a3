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

	appanalytics "github.com/jhoicas/estoque-analytics/internal/application/analytics"
	engine "github.com/jhoicas/estoque-analytics/internal/domain/analytics"
	infracache "github.com/jhoicas/estoque-analytics/internal/infrastructure/cache"
	inframetrics "github.com/jhoicas/estoque-analytics/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/estoque-analytics/internal/infrastructure/pdf"
	"github.com/jhoicas/estoque-analytics/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/estoque-analytics/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/estoque-analytics/internal/interfaces/http"
	"github.com/jhoicas/estoque-analytics/pkg/config"
	"github.com/jhoicas/estoque-analytics/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("workers", cfg.Engine.Workers).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.Engine.Workers)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	stockRepo := postgres.NewStockSnapshotRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	fleetRepo := postgres.NewFleetRepository(pool)

	reportCache, err := infracache.NewReportCache(cfg.Cache)
	if err != nil {
		// Sin Redis el servicio sigue: solo se pierde el caché.
		log.Warn().Err(err).Msg("caché Redis no disponible, se usa no-op")
		reportCache = infracache.NewNoopReportCache()
	}
	recorder := inframetrics.NewRecorder()
	settings := engineSettings(cfg.Engine)

	stockUC := appanalytics.NewStockHealthUseCase(stockRepo, reportCache, recorder, log, settings)
	fleetUC := appanalytics.NewFleetStatusUseCase(fleetRepo, nil, recorder, log, settings)
	priceUC := appanalytics.NewPriceUseCase(movementRepo, settings)
	consumptionUC := appanalytics.NewConsumptionUseCase(stockRepo, movementRepo, settings)
	turnoverUC := appanalytics.NewTurnoverUseCase(movementRepo, reportCache, recorder, log, settings)
	reportUC := appanalytics.NewReportUseCase(stockUC,
		infrapdf.NewStockHealthPDF(),
		infraxlsx.NewStockHealthXLSX(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque Analytics API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockHealth: stockUC,
		FleetStatus: fleetUC,
		Price:       priceUC,
		Consumption: consumptionUC,
		Turnover:    turnoverUC,
		Reports:     reportUC,
		Metrics:     recorder.Handler(),
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

// engineSettings traduce la configuración de entorno a parámetros del motor.
func engineSettings(c config.EngineConfig) appanalytics.Settings {
	s := appanalytics.DefaultSettings()
	s.Stock = engine.StockRules{NoMovementDays: c.NoMovementDays}
	s.Deadband = c.TrendDeadband
	s.ForecastMonths = c.ForecastMonths
	s.PriceWindowDays = c.PriceWindowDays
	s.TurnoverDays = c.TurnoverDays
	s.ABC = engine.ABCThresholds{A: c.ABCThresholdA, B: c.ABCThresholdB}
	s.Workers = c.Workers
	return s
}
