package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/dashboard"
	dashboardPostgres "github.com/usahaku/erp-dashboard/internal/dashboard/postgres"
	"github.com/usahaku/erp-dashboard/internal/employee"
	"github.com/usahaku/erp-dashboard/internal/finance"
	"github.com/usahaku/erp-dashboard/internal/inventory"
	"github.com/usahaku/erp-dashboard/internal/marketing"
	"github.com/usahaku/erp-dashboard/internal/production"
	"github.com/usahaku/erp-dashboard/internal/report"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/internal/sales"
	"github.com/usahaku/erp-dashboard/internal/tax"
	"github.com/usahaku/erp-dashboard/internal/transport/rest"
	"github.com/usahaku/erp-dashboard/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	opts := resource.Options{
		Timeout:       deps.Config.Resource.OperationTimeout,
		RetryAttempts: deps.Config.Resource.RetryAttempts,
		RetryBackoff:  deps.Config.Resource.RetryBackoff,
	}
	log := deps.Logger

	productionStore := resource.NewRepository[production.Record](deps.GormDB, production.OrderColumn)
	inventoryStore := resource.NewRepository[inventory.Item](deps.GormDB, inventory.OrderColumn)
	financeStore := resource.NewRepository[finance.Transaction](deps.GormDB, finance.OrderColumn)
	salesStore := resource.NewRepository[sales.Order](deps.GormDB, sales.OrderColumn)
	marketingStore := resource.NewRepository[marketing.Campaign](deps.GormDB, marketing.OrderColumn)
	employeeStore := resource.NewRepository[employee.Employee](deps.GormDB, employee.OrderColumn)
	taxStore := resource.NewRepository[tax.Record](deps.GormDB, tax.OrderColumn)

	statsRepo := dashboardPostgres.NewStatsRepository(deps.DB)

	handlers := rest.Handlers{
		Production: production.NewHandler(production.NewService(productionStore, log, opts)),
		Inventory:  inventory.NewHandler(inventory.NewService(inventoryStore, log, opts)),
		Finance:    finance.NewHandler(finance.NewService(financeStore, log, opts)),
		Sales:      sales.NewHandler(sales.NewService(salesStore, log, opts)),
		Marketing:  marketing.NewHandler(marketing.NewService(marketingStore, log, opts)),
		Employee:   employee.NewHandler(employee.NewService(employeeStore, log, opts)),
		Tax:        tax.NewHandler(tax.NewService(taxStore, log, opts)),
		Dashboard:  dashboard.NewHandler(dashboard.NewService(statsRepo, log, deps.Config.Dashboard.QueryTimeout)),
		Report:     report.NewHandler(),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, log)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGormDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGormDB layers the ORM over the already-open pgx connection so
// both query paths share one pool.
func initGormDB(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
}
