package main

import (
	"flag"
	"os"

	"github.com/siteledger/backend/internal/infrastructure/config"
	"github.com/siteledger/backend/internal/infrastructure/logger"
	"github.com/siteledger/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// Applies the schema to the configured database and exits. Useful for
// deployments where the server runs without DDL privileges.
func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration", zap.Error(err))
		os.Exit(1)
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.Migrate(); err != nil {
		log.Error("Migration failed", zap.Error(err))
		os.Exit(1)
	}

	log.Info("Schema is up to date",
		zap.String("driver", cfg.Database.Driver),
		zap.String("dbname", cfg.Database.DBName),
	)
}
