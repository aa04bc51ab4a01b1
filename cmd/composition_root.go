package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	api "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/in/feed"
	"warehouse/internal/adapters/out/csvfile"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/jobs"
	"warehouse/internal/metrics"
	"warehouse/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs  Config
	logger   *slog.Logger
	table    *kernel.LocationTable
	registry *prometheus.Registry
	runner   *engine.Runner

	// nil without a database
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot loads the reference tables and the policy, and starts
// the engine runner. Loaded requests are appended to orderLog. gormDB may be
// nil.
func NewCompositionRoot(
	configs Config,
	logger *slog.Logger,
	orderLog io.Writer,
	gormDB *gorm.DB,
	runnerOpts ...engine.RunnerOption,
) (*CompositionRoot, error) {
	policy, err := engine.LoadPolicyFile(configs.PolicyFile)
	if err != nil {
		return nil, err
	}

	table, stock, err := loadLayout(configs, policy.Inventory.FullStock)
	if err != nil {
		return nil, err
	}
	found, err := csvfile.ApplyInitialInventoryFile(configs.InitialInventoryFile, table, stock)
	if err != nil {
		return nil, err
	}
	if !found {
		logging.Config(context.Background(), logger, "SYSTEM: No initial inventory, every level is full")
	}

	translations, err := csvfile.LoadTranslationsFile(configs.TranslationFile)
	if err != nil {
		return nil, err
	}

	optimizer, err := services.NewRouteOptimizer(table)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	engineMetrics := metrics.NewEngineMetrics(registry)

	e, err := engine.NewAssignmentEngine(logger, policy, translations, optimizer, stock,
		engine.WithObserver(engineMetrics),
		engine.WithCompletedOrderSink(csvfile.NewOrderLog(orderLog)),
	)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		configs:  configs,
		logger:   logger,
		table:    table,
		registry: registry,
		runner:   engine.NewRunner(e, logger, append(runnerOpts, engine.WithCommandObserver(engineMetrics))...),
		gormDB:   gormDB,
	}
	if gormDB != nil {
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	}
	return root, nil
}

// loadLayout reads the traversal table, or falls back to the built-in
// layout when none is configured or the file is missing.
func loadLayout(configs Config, fullStock int) (*kernel.LocationTable, map[kernel.SKU]int, error) {
	if configs.TraversalFile != "" {
		table, stock, err := csvfile.LoadTraversalFile(configs.TraversalFile, fullStock)
		if err == nil {
			return table, stock, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, nil, err
		}
	}

	table := kernel.DefaultLocationTable()
	stock := make(map[kernel.SKU]int, table.Len())
	for _, sku := range table.SKUs() {
		stock[sku] = fullStock
	}
	return table, stock, nil
}

func (c *CompositionRoot) Runner() *engine.Runner {
	return c.runner
}

// Close stops the engine runner.
func (c *CompositionRoot) Close() {
	c.runner.Stop()
}

func (c *CompositionRoot) CreateDispatcher() *feed.Dispatcher {
	return feed.NewDispatcher(feed.NewHandlers(c.runner))
}

func (c *CompositionRoot) CreateSimulation() *feed.Simulation {
	return feed.NewSimulation(c.CreateDispatcher(), c.logger)
}

func (c *CompositionRoot) CreateSaveSnapshotCommandHandler() commands.SaveSnapshotCommandHandler {
	var f commands.SnapshotUoWFactory = FuncSnapshotUoWFactory(func() commands.SnapshotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveSnapshotCommandHandler(c.runner, f, c.table)
}

func (c *CompositionRoot) CreateGetRequestsQueryHandler() queries.GetRequestsQueryHandler {
	return queries.NewGetRequestsQueryHandler(c.runner)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.runner, c.table)
}

func (c *CompositionRoot) CreateGetWorkersQueryHandler() queries.GetWorkersQueryHandler {
	return queries.NewGetWorkersQueryHandler(c.runner)
}

// CreateGetCompletedRequestsQueryHandler returns nil without a database.
func (c *CompositionRoot) CreateGetCompletedRequestsQueryHandler() *queries.GetCompletedRequestsQueryHandler {
	if c.gormDB == nil {
		return nil
	}
	h := queries.NewGetCompletedRequestsQueryHandler(c.gormDB)
	return &h
}

func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	validator, err := api.NewValidator()
	if err != nil {
		return nil, err
	}

	server := api.NewServer(
		c.CreateDispatcher(),
		c.CreateGetRequestsQueryHandler(),
		c.CreateGetInventoryQueryHandler(),
		c.CreateGetWorkersQueryHandler(),
		c.CreateGetCompletedRequestsQueryHandler(),
	)
	return api.NewRouter(server, validator, metrics.Handler(c.registry), c.logger), nil
}

// CreateJobManager schedules the shortage report, and snapshots when a
// database is configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	scheduled := []jobs.Job{
		jobs.NewShortageReportJob(c.CreateGetInventoryQueryHandler(), c.configs.ShortageReportSchedule, c.logger),
	}
	if c.uowFactory != nil {
		scheduled = append(scheduled,
			jobs.NewSnapshotJob(c.CreateSaveSnapshotCommandHandler(), c.configs.SnapshotSchedule, c.logger))
	}
	return jobs.NewJobManager(scheduled...)
}

// WriteFinalReport writes every level below full stock to w.
func (c *CompositionRoot) WriteFinalReport(ctx context.Context, w io.Writer) error {
	levels, err := c.CreateGetInventoryQueryHandler().Handle(ctx, queries.NewGetInventoryQuery(true))
	if err != nil {
		return err
	}

	rows := make([]csvfile.Level, 0, len(levels))
	for _, l := range levels {
		rows = append(rows, csvfile.Level{Location: l.Location, Count: l.Count})
	}
	if err := csvfile.WriteFinalReport(w, rows); err != nil {
		return fmt.Errorf("write final report: %w", err)
	}
	return nil
}

type FuncSnapshotUoWFactory func() commands.SnapshotUoW

func (f FuncSnapshotUoWFactory) Create() commands.SnapshotUoW {
	return f()
}
