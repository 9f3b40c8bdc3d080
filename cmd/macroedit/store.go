package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jask/macroedit/internal/catalog"
	"github.com/jask/macroedit/internal/config"
	"github.com/jask/macroedit/internal/database"
	"github.com/jask/macroedit/internal/database/repository"
)

type store struct {
	db   *sql.DB
	repo *repository.CatalogRepo
}

func openStore(ctx context.Context, cfg config.Config) (*store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return &store{db: db, repo: repository.NewCatalogRepo(db)}, nil
}

func (s *store) Close() error { return s.db.Close() }

// entries returns the catalog file when one is configured, else the stored catalog.
func (s *store) entries(ctx context.Context, file string) ([]catalog.Entry[catalog.SystemEvent], error) {
	if file != "" {
		entries, err := catalog.LoadFile(file)
		if err != nil {
			return nil, err
		}
		logger.Debug("catalog loaded from file", zap.String("path", file))
		return entries, nil
	}
	entries, err := s.repo.SystemEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return entries, nil
}
