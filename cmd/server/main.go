package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appledger "github.com/siteledger/backend/internal/application/ledger"
	"github.com/siteledger/backend/internal/infrastructure/auth"
	"github.com/siteledger/backend/internal/infrastructure/config"
	"github.com/siteledger/backend/internal/infrastructure/logger"
	"github.com/siteledger/backend/internal/infrastructure/persistence"
	"github.com/siteledger/backend/internal/interfaces/http/handler"
	"github.com/siteledger/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting SiteLedger backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate schema", zap.Error(err))
	}

	// Initialize repositories and the cascade coordinator
	companyRepo := persistence.NewCompanyRepository(db.DB)
	projectRepo := persistence.NewProjectRepository(db.DB)
	expenseRepo := persistence.NewExpenseRepository(db.DB)
	paymentRepo := persistence.NewPaymentRepository(db.DB)
	manpowerRepo := persistence.NewManpowerRepository(db.DB)
	cascade := persistence.NewCascadeCoordinator(db.DB)

	// Initialize application services
	companyService := appledger.NewCompanyService(companyRepo, cascade)
	projectService := appledger.NewProjectService(projectRepo, companyRepo, cascade)
	expenseService := appledger.NewExpenseService(expenseRepo, projectRepo)
	paymentService := appledger.NewPaymentService(paymentRepo, projectRepo)
	manpowerService := appledger.NewManpowerService(manpowerRepo, projectRepo)

	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize HTTP handlers and routes
	engine := router.New(cfg, jwtService, log, router.Handlers{
		System:   handler.NewSystemHandler(db, cfg.App.Name, log),
		Company:  handler.NewCompanyHandler(companyService, log),
		Project:  handler.NewProjectHandler(projectService, log),
		Expense:  handler.NewExpenseHandler(expenseService, log),
		Payment:  handler.NewPaymentHandler(paymentService, log),
		Manpower: handler.NewManpowerHandler(manpowerService, log),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
