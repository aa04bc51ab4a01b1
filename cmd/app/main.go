package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"warehouse/cmd"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/pkg/logging"
	"warehouse/internal/tracing"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const version = "1.0.0"

func main() {
	configs := getConfigs()
	if len(os.Args) > 1 {
		configs.EventsFile = os.Args[1]
	}

	if err := run(configs); err != nil {
		log.Fatalf("warehouse: %v", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	serve, _ := strconv.ParseBool(os.Getenv("SERVE"))
	config := cmd.Config{
		EventsFile:             os.Getenv("EVENTS_FILE"),
		TranslationFile:        envOr("TRANSLATION_FILE", "translation.csv"),
		TraversalFile:          envOr("TRAVERSAL_FILE", "traversal_table.csv"),
		InitialInventoryFile:   envOr("INITIAL_INVENTORY_FILE", "initial.csv"),
		FinalReportFile:        envOr("FINAL_REPORT_FILE", "final.csv"),
		OrderLogFile:           envOr("ORDER_LOG_FILE", "order.csv"),
		LogFile:                envOr("LOG_FILE", "log.txt"),
		PolicyFile:             os.Getenv("POLICY_FILE"),
		TraceFile:              os.Getenv("TRACE_FILE"),
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		Serve:                  serve,
		SnapshotSchedule:       envOr("SNAPSHOT_SCHEDULE", "@every 1m"),
		ShortageReportSchedule: envOr("SHORTAGE_REPORT_SCHEDULE", "@every 5m"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 envOr("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
	}
	return config
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(configs cmd.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logFile, err := os.Create(configs.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := logging.New(io.MultiWriter(os.Stdout, logFile), logging.LevelConfig)

	var runnerOpts []engine.RunnerOption
	if configs.TraceFile != "" {
		provider, err := tracing.NewFileProvider(ctx, configs.TraceFile, version)
		if err != nil {
			return err
		}
		provider.Install()
		defer func() {
			_ = provider.Shutdown(context.Background())
		}()
		runnerOpts = append(runnerOpts, engine.WithTracer(provider.Tracer("warehouse/engine")))
	}

	gormDB, err := openDatabase(configs)
	if err != nil {
		return err
	}

	orderLog, err := os.Create(configs.OrderLogFile)
	if err != nil {
		return err
	}
	defer orderLog.Close()

	app, err := cmd.NewCompositionRoot(configs, logger, orderLog, gormDB, runnerOpts...)
	if err != nil {
		return err
	}
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	var server *http.Server
	if configs.Serve {
		e, err := app.CreateHTTPServer()
		if err != nil {
			return err
		}
		server = &http.Server{Addr: fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort), Handler: e, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("HTTP server failed", "error", err)
				stop()
			}
		}()
		logger.Info("HTTP server started", "port", configs.HTTPPort)
	}

	if configs.EventsFile != "" {
		if err := runFeed(ctx, app, configs.EventsFile, logger); err != nil {
			return err
		}
	}

	// An interrupted feed still leaves a report of the levels touched so far.
	if err := writeFinalReport(context.WithoutCancel(ctx), app, configs.FinalReportFile); err != nil {
		return err
	}

	if server != nil {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown failed", "error", err)
		}
	}

	if gormDB != nil {
		return saveSnapshot(app)
	}
	return nil
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	if !configs.DatabaseConfigured() {
		return nil, nil
	}

	gormDB, err := postgres.Open(postgres.DSN(
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode))
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(gormDB); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gormDB, nil
}

func runFeed(ctx context.Context, app *cmd.CompositionRoot, path string, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stats, err := app.CreateSimulation().Run(ctx, f)
	if errors.Is(err, context.Canceled) {
		logger.Warn("Feed interrupted", "lines", stats.Lines)
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("Feed processed", "lines", stats.Lines, "invalid", stats.Invalid, "rejected", stats.Rejected)
	return nil
}

func writeFinalReport(ctx context.Context, app *cmd.CompositionRoot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := app.WriteFinalReport(ctx, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// saveSnapshot records the state left by the run, whatever the schedule.
func saveSnapshot(app *cmd.CompositionRoot) error {
	command, err := commands.NewSaveSnapshotCommand(time.Now())
	if err != nil {
		return err
	}
	handler := app.CreateSaveSnapshotCommandHandler()
	return handler.Handle(context.Background(), command)
}
