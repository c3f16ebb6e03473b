package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"logo-banner/models"
	"logo-banner/utils"
)

// FileCatalogRepository reads the pre-built JSON dataset from disk
type FileCatalogRepository struct {
	path string
}

// NewFileCatalogRepository creates a new FileCatalogRepository
func NewFileCatalogRepository(path string) *FileCatalogRepository {
	return &FileCatalogRepository{path: path}
}

// Ensure FileCatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*FileCatalogRepository)(nil)

// LoadItems reads the dataset at the configured path
func (r *FileCatalogRepository) LoadItems(ctx context.Context) ([]models.LogoItem, error) {
	utils.Log().Infof("📂 LoadItems: Reading catalog dataset from %s", r.path)

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog dataset: %w", err)
	}

	items, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog dataset %s: %w", r.path, err)
	}

	utils.Log().Infof("✓ Read %d catalog entries from %s", len(items), r.path)
	return items, nil
}

// ParseCatalog decodes either dataset layout produced by the data preparation step:
// a flat array of items, or an array of categories each carrying its items.
// Grouped input is flattened and de-duplicated by id, keeping the first occurrence.
func ParseCatalog(data []byte) ([]models.LogoItem, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("dataset must be a JSON array: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	if isGrouped(raw[0]) {
		var groups []models.CategoryGroup
		if err := json.Unmarshal(data, &groups); err != nil {
			return nil, fmt.Errorf("failed to decode grouped dataset: %w", err)
		}
		return flattenGroups(groups), nil
	}

	return decodeEntries("", raw), nil
}

// decodeEntries decodes entry by entry so a malformed record does not discard the dataset
func decodeEntries(group string, raw []json.RawMessage) []models.LogoItem {
	items := make([]models.LogoItem, 0, len(raw))
	for i, entry := range raw {
		var item models.LogoItem
		if err := json.Unmarshal(entry, &item); err != nil {
			if group != "" {
				utils.Log().Warnf("⚠️  Skipping malformed catalog entry #%d in group %s: %v", i, group, err)
			} else {
				utils.Log().Warnf("⚠️  Skipping malformed catalog entry #%d: %v", i, err)
			}
			continue
		}
		items = append(items, item)
	}
	return items
}

// isGrouped detects the category-grouped layout by its "items" and "count" fields
func isGrouped(first json.RawMessage) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(first, &fields); err != nil {
		return false
	}
	items, hasItems := fields["items"]
	_, hasCount := fields["count"]
	return hasItems && hasCount && bytes.HasPrefix(bytes.TrimSpace(items), []byte("["))
}

func flattenGroups(groups []models.CategoryGroup) []models.LogoItem {
	seen := make(map[string]bool)
	var items []models.LogoItem
	for _, group := range groups {
		for _, item := range decodeEntries(group.ID, group.Items) {
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			items = append(items, item)
		}
	}
	return items
}
