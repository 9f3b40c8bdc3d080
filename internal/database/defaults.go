package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/macroedit/internal/catalog"
	"github.com/jask/macroedit/internal/database/repository"
)

// EntryID derives a stable id from a display string.
func EntryID(displayString string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("catalog:"+displayString)).String()
}

// SeedDefaults ensures the built-in system events exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewCatalogRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return ReplaceCatalog(ctx, db, catalog.SystemEvents())
}

// ReplaceCatalog swaps the stored catalog for entries in one transaction.
func ReplaceCatalog(ctx context.Context, db *sql.DB, entries []catalog.Entry[catalog.SystemEvent]) error {
	if err := catalog.CheckUnique(entries); err != nil {
		return err
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_entries`); err != nil {
			return err
		}
		for idx, e := range entries {
			data, err := json.Marshal(e.DefaultData)
			if err != nil {
				return fmt.Errorf("encode %q: %w", e.DisplayString, err)
			}
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO catalog_entries(id, display_string, description, default_data, sort_order)
			VALUES (?, ?, ?, ?, ?)`, EntryID(e.DisplayString), e.DisplayString, e.Description, string(data), idx); err != nil {
				return fmt.Errorf("insert %q: %w", e.DisplayString, err)
			}
		}
		return nil
	})
}
