package service

import (
	"context"
	"fmt"
	"slices"

	"logo-banner/models"
	"logo-banner/repository"
	"logo-banner/utils"
)

// CatalogStore holds the immutable list of selectable logos
type CatalogStore struct {
	items      []models.LogoItem
	index      map[string]int
	categories []models.CategoryItem
}

// LoadCatalog reads the dataset once, resolves missing images and builds the store
func LoadCatalog(ctx context.Context, repo repository.CatalogRepositoryInterface, loader *SVGLoader) (*CatalogStore, error) {
	raw, err := repo.LoadItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	valid := make([]models.LogoItem, 0, len(raw))
	for _, item := range raw {
		if err := item.Validate(); err != nil {
			utils.Log().Warnf("⚠️  Dropping invalid catalog entry: %v", err)
			continue
		}
		valid = append(valid, item)
	}

	if loader != nil {
		valid = loader.LoadAll(ctx, valid)
	}

	store, err := NewCatalogStore(valid)
	if err != nil {
		return nil, err
	}

	utils.Log().Infof("✓ Catalog ready: %d items, %d categories (%d entries dropped)",
		store.Len(), len(store.categories), len(raw)-store.Len())
	return store, nil
}

// NewCatalogStore builds a store from already loaded items.
// Invalid items, items without an image and duplicate ids are dropped.
func NewCatalogStore(items []models.LogoItem) (*CatalogStore, error) {
	s := &CatalogStore{index: make(map[string]int)}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			utils.Log().Warnf("⚠️  Dropping invalid catalog entry: %v", err)
			continue
		}
		if !item.HasImage() {
			utils.Log().Warnf("⚠️  Dropping %s: no image content", item.ID)
			continue
		}
		if _, exists := s.index[item.ID]; exists {
			utils.Log().Warnf("⚠️  Dropping duplicate catalog id %s", item.ID)
			continue
		}
		item.Category = slices.Clone(item.Category)
		s.index[item.ID] = len(s.items)
		s.items = append(s.items, item)
	}

	if len(s.items) == 0 {
		return nil, models.ErrEmptyCatalog
	}

	s.categories = buildCategories(s.items)
	return s, nil
}

// buildCategories groups item ids per category, sorted by title; empty categories are omitted.
// Labels outside the category enumeration stay searchable but get no entry.
func buildCategories(items []models.LogoItem) []models.CategoryItem {
	byID := make(map[string]*models.CategoryItem)
	var order []string

	for _, item := range items {
		seen := make(map[string]bool)
		for _, label := range item.Category {
			known, ok := models.LookupCategory(label)
			if !ok {
				continue
			}
			id := models.CategoryID(string(known))
			if seen[id] {
				continue
			}
			seen[id] = true

			category, exists := byID[id]
			if !exists {
				category = &models.CategoryItem{ID: id, Title: string(known)}
				byID[id] = category
				order = append(order, id)
			}
			category.Items = append(category.Items, item.ID)
			category.Count++
		}
	}

	out := make([]models.CategoryItem, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}

	cmp := newStringComparer()
	slices.SortStableFunc(out, func(a, b models.CategoryItem) int {
		return cmp.Compare(a.Title, b.Title)
	})
	return out
}

// All returns a copy of every item in catalog order
func (s *CatalogStore) All() []models.LogoItem {
	out := make([]models.LogoItem, len(s.items))
	for i, item := range s.items {
		item.Category = slices.Clone(item.Category)
		out[i] = item
	}
	return out
}

// Get returns the item with the given id
func (s *CatalogStore) Get(id string) (models.LogoItem, bool) {
	i, ok := s.index[id]
	if !ok {
		return models.LogoItem{}, false
	}
	item := s.items[i]
	item.Category = slices.Clone(item.Category)
	return item, true
}

// Contains reports whether id belongs to the catalog
func (s *CatalogStore) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *CatalogStore) Len() int {
	return len(s.items)
}

// Categories returns the category listing
func (s *CatalogStore) Categories() []models.CategoryItem {
	out := make([]models.CategoryItem, len(s.categories))
	for i, c := range s.categories {
		c.Items = slices.Clone(c.Items)
		out[i] = c
	}
	return out
}

// HasCategory reports whether a category id is present in the catalog
func (s *CatalogStore) HasCategory(id string) bool {
	for _, c := range s.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
