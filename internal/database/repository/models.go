package repository

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// CatalogEntry represents a catalog_entries row. DefaultData is JSON text.
type CatalogEntry struct {
	ID            string
	DisplayString string
	Description   string
	DefaultData   string
	SortOrder     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
