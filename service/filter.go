package service

import (
	"slices"

	"logo-banner/models"
	"logo-banner/utils"
)

// Filter computes the display set: text search first, then category restriction.
// Pure and deterministic; the input slice is never modified.
func Filter(all []models.LogoItem, searchText string, activeCategories []string) []models.LogoItem {
	return FilterCategories(Search(all, searchText), activeCategories)
}

// Search returns the items matching any search term.
// For each term in input order the matching catalog items are appended,
// skipping items already present, so items matching earlier terms rank first.
// Empty search text returns a copy of items.
func Search(items []models.LogoItem, searchText string) []models.LogoItem {
	terms := utils.SearchTerms(searchText)
	if len(terms) == 0 {
		return slices.Clone(items)
	}

	seen := make(map[string]bool)
	result := make([]models.LogoItem, 0)
	for _, term := range terms {
		for _, item := range items {
			if seen[item.ID] || !MatchesTerm(item, term) {
				continue
			}
			seen[item.ID] = true
			result = append(result, item)
		}
	}
	return result
}

// MatchesTerm reports whether a lower-case term is a substring of the title,
// of a category label or of the description
func MatchesTerm(item models.LogoItem, term string) bool {
	if utils.ContainsFold(item.Title, term) {
		return true
	}
	for _, label := range item.Category {
		if utils.ContainsFold(label, term) {
			return true
		}
	}
	return utils.ContainsFold(item.Description, term)
}

// FilterCategories keeps the items whose categories intersect the active category ids.
// No active category means no restriction.
func FilterCategories(items []models.LogoItem, activeCategories []string) []models.LogoItem {
	if len(activeCategories) == 0 {
		return slices.Clone(items)
	}

	active := make(map[string]bool, len(activeCategories))
	for _, id := range activeCategories {
		active[models.CategoryID(id)] = true
	}

	result := make([]models.LogoItem, 0)
	for _, item := range items {
		for _, id := range item.Category.IDs() {
			if active[id] {
				result = append(result, item)
				break
			}
		}
	}
	return result
}
