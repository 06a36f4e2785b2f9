package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	marketapp "github.com/marketplace/backend/internal/application/marketplace"
	"github.com/marketplace/backend/internal/domain/marketplace"
	"github.com/marketplace/backend/internal/infrastructure/config"
	"github.com/marketplace/backend/internal/infrastructure/logger"
	"github.com/marketplace/backend/internal/infrastructure/persistence"
	"github.com/marketplace/backend/internal/infrastructure/seed"
	"github.com/marketplace/backend/internal/interfaces/http/handler"
	"github.com/marketplace/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(logger.FromAppConfig(cfg.Log))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting marketplace",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("ledger", cfg.Ledger.Backend),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ledger, store, closeLedger, err := openLedger(&cfg.Ledger, log)
	if err != nil {
		log.Fatal("Failed to open ledger", zap.Error(err))
	}
	defer closeLedger()

	if cfg.Ledger.Seed {
		res, err := seed.Load(context.Background(), ledger)
		if err != nil {
			log.Fatal("Failed to seed ledger", zap.Error(err))
		}
		log.Info("Sample catalog loaded",
			zap.Int("vendors", len(res.VendorIDs)),
			zap.Int("products", len(res.ProductIDs)),
			zap.Int("customers", len(res.CustomerIDs)),
		)
	}

	// Initialize application services
	vendorService := marketapp.NewVendorService(ledger, log)
	catalogService := marketapp.NewCatalogService(ledger, log)
	customerService := marketapp.NewCustomerService(ledger, log)
	cartService := marketapp.NewCartService(ledger, log)
	orderService := marketapp.NewOrderService(ledger, log)

	engine, err := router.NewEngine(cfg, log, router.Handlers{
		Vendor:   handler.NewVendorHandler(vendorService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Customer: handler.NewCustomerHandler(customerService),
		Cart:     handler.NewCartHandler(cartService),
		Order:    handler.NewOrderHandler(orderService),
		System:   handler.NewSystemHandler(cfg.App.Name, cfg.Ledger.Backend, store),
	})
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// openLedger returns the configured ledger, the store pinged by /health
// (nil for memory) and a close function for deferred cleanup.
func openLedger(cfg *config.LedgerConfig, log *zap.Logger) (marketplace.Ledger, handler.Pinger, func(), error) {
	switch cfg.Backend {
	case config.LedgerBackendMemory:
		return persistence.NewMemoryLedger(), nil, func() {}, nil

	case config.LedgerBackendSQLite:
		db, err := persistence.NewDatabase(cfg, logger.NewGormLogger(log, cfg.LogLevel))
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}
		log.Info("SQLite ledger ready", zap.String("dsn", cfg.DSN))

		closeDB := func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", zap.Error(err))
			}
		}
		return persistence.NewGormLedger(db.DB), db, closeDB, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown ledger backend %q", cfg.Backend)
	}
}
