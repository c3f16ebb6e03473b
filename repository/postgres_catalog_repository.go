package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"logo-banner/models"
	"logo-banner/utils"
)

// PostgresCatalogRepository reads the logo dataset from the logo_items table
type PostgresCatalogRepository struct {
	db *sql.DB
}

// NewPostgresCatalogRepository creates a new PostgresCatalogRepository
func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

// Ensure PostgresCatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*PostgresCatalogRepository)(nil)

// LoadItems retrieves all active logo items.
// categories is stored as a comma separated list of labels.
func (r *PostgresCatalogRepository) LoadItems(ctx context.Context) ([]models.LogoItem, error) {
	utils.Log().Infof("🔍 LoadItems: Fetching active logo items")

	query := `
		SELECT
			id,
			title,
			COALESCE(description, '') as description,
			COALESCE(categories, '') as categories,
			COALESCE(url, '') as url,
			COALESCE(path, '') as path,
			COALESCE(svg_content, '') as svg_content
		FROM logo_items
		WHERE is_active = true
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		utils.Log().Errorf("❌ Error querying logo items: %v", err)
		return nil, fmt.Errorf("failed to query logo items: %w", err)
	}
	defer rows.Close()

	var items []models.LogoItem
	for rows.Next() {
		var item models.LogoItem
		var categories string

		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&categories,
			&item.URL,
			&item.Path,
			&item.SVGContent,
		)
		if err != nil {
			utils.Log().Warnf("⚠️  Error scanning logo item: %v", err)
			continue
		}

		item.Category = SplitCategories(categories)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		utils.Log().Errorf("❌ Error iterating logo items: %v", err)
		return nil, fmt.Errorf("failed to iterate logo items: %w", err)
	}

	utils.Log().Infof("✓ Successfully fetched %d logo items", len(items))
	return items, nil
}

// SplitCategories parses the stored "Library, Framework" form
func SplitCategories(s string) models.Categories {
	var out models.Categories
	for _, part := range strings.Split(s, ",") {
		if label := strings.TrimSpace(part); label != "" {
			out = append(out, label)
		}
	}
	return out
}
