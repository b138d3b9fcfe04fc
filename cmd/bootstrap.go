package cmd

import (
	"fmt"

	"roundest/core/config"
	"roundest/core/database"
	"roundest/core/logger"
	"roundest/core/metrics"
	"roundest/core/storage"
	"roundest/feature/ranking"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps holds the dependencies shared by every command.
type deps struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	store   storage.Client // nil unless storage.enabled
	metrics *metrics.Manager
	ranking *ranking.Service
}

// bootstrap loads configuration, connects to the database, migrates the
// ranking tables and builds the ranking service.
func bootstrap(cmd *cobra.Command) (*deps, error) {
	dir, _ := cmd.Flags().GetString("config")
	if dir == "" {
		dir = "."
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	if err := database.Migrate(db, ranking.Models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logg = logg.With(zap.String("driver", cfg.Database.Driver))

	var store storage.Client
	if cfg.Storage.Enabled {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	m := metrics.NewManager()
	svc := ranking.NewService(ranking.NewRepository(db), logg, m, cfg.Ranking)

	return &deps{
		cfg:     cfg,
		logger:  logg,
		db:      db,
		store:   store,
		metrics: m,
		ranking: svc,
	}, nil
}

// requireStorage fails when storage is disabled.
func (d *deps) requireStorage() error {
	if d.store == nil {
		return fmt.Errorf("storage is not enabled (set STORAGE_ENABLED=true)")
	}
	return nil
}

// close releases the database connection and flushes the logger.
func (d *deps) close() {
	if sqlDB, err := d.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = d.logger.Sync()
}
