package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jask/macroedit/internal/catalog"
)

// CatalogRepo handles catalog entries.
type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo { return &CatalogRepo{db: db} }

func (r *CatalogRepo) Upsert(ctx context.Context, e CatalogEntry) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO catalog_entries(id, display_string, description, default_data, sort_order)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		display_string=excluded.display_string,
		description=excluded.description,
		default_data=excluded.default_data,
		sort_order=excluded.sort_order,
		updated_at=CURRENT_TIMESTAMP;
	`, e.ID, e.DisplayString, e.Description, e.DefaultData, e.SortOrder)
	return err
}

func (r *CatalogRepo) ByDisplayString(ctx context.Context, name string) (*CatalogEntry, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, display_string, description, default_data, sort_order, created_at, updated_at
	FROM catalog_entries WHERE display_string = ?`, name)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("catalog entry %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *CatalogRepo) List(ctx context.Context) ([]CatalogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, display_string, description, default_data, sort_order, created_at, updated_at
	FROM catalog_entries ORDER BY sort_order, display_string`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CatalogEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM catalog_entries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("catalog entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *CatalogRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_entries`).Scan(&n)
	return n, err
}

// SystemEvents decodes the stored rows into system event catalog entries.
func (r *CatalogRepo) SystemEvents(ctx context.Context) ([]catalog.Entry[catalog.SystemEvent], error) {
	rows, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Entry[catalog.SystemEvent], 0, len(rows))
	for _, row := range rows {
		var data catalog.SystemEvent
		if err := json.Unmarshal([]byte(row.DefaultData), &data); err != nil {
			return nil, fmt.Errorf("decode %q: %w", row.DisplayString, err)
		}
		out = append(out, catalog.Entry[catalog.SystemEvent]{
			DisplayString: row.DisplayString,
			Description:   row.Description,
			DefaultData:   data,
		})
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (CatalogEntry, error) {
	var e CatalogEntry
	err := s.Scan(&e.ID, &e.DisplayString, &e.Description, &e.DefaultData, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}
