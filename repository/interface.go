package repository

import (
	"context"
	"time"

	"logo-banner/models"
)

// CatalogRepositoryInterface defines the contract for loading the logo dataset
type CatalogRepositoryInterface interface {
	// LoadItems returns the raw catalog entries. Entries may still lack SVG
	// content and may be invalid; the catalog store validates them.
	LoadItems(ctx context.Context) ([]models.LogoItem, error)
}

// ExportStoreInterface defines the contract for short-lived storage of exported banners
type ExportStoreInterface interface {
	Save(ctx context.Context, exportID string, png []byte, ttl time.Duration) error
	// Get returns models.ErrExportNotFound when the export is unknown or expired
	Get(ctx context.Context, exportID string) ([]byte, error)
	Close() error
}
