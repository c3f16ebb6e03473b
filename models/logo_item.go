package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LogoItem represents a single selectable logo in the catalog
type LogoItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Categories `json:"category"`
	URL         string     `json:"url"`
	Path        string     `json:"path"`                 // Public asset path, kept for attribution
	SVGContent  string     `json:"svgContent,omitempty"` // Inline vector payload
}

// Categories holds the category labels of an item.
// The dataset stores either a single label or a list of labels.
type Categories []string

// UnmarshalJSON accepts both "Library" and ["Library", "Framework"]
func (c *Categories) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*c = nil
			return nil
		}
		*c = Categories{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("category must be a string or a list of strings: %w", err)
	}
	*c = many
	return nil
}

// IDs returns the normalized category ids of the item
func (c Categories) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, label := range c {
		ids = append(ids, CategoryID(label))
	}
	return ids
}

// Validate checks the fields every catalog entry must carry.
// SVG content is checked separately, after the loader had a chance to fill it.
func (i LogoItem) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(i.Title) == "" {
		return fmt.Errorf("title is required for %s", i.ID)
	}
	if strings.TrimSpace(i.Path) == "" && strings.TrimSpace(i.SVGContent) == "" {
		return fmt.Errorf("path or svgContent is required for %s", i.ID)
	}
	return nil
}

// HasImage reports whether the item carries a usable SVG payload
func (i LogoItem) HasImage() bool {
	return strings.Contains(strings.ToLower(i.SVGContent), "<svg")
}

// LogoItemSummary is the listing representation of an item without its image payload
type LogoItemSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    []string `json:"category"`
	URL         string   `json:"url"`
	Path        string   `json:"path"`
}

// Summary strips the image payload from the item
func (i LogoItem) Summary() LogoItemSummary {
	return LogoItemSummary{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Category:    []string(i.Category),
		URL:         i.URL,
		Path:        i.Path,
	}
}

// ItemIDs returns the ids of the given items, in order
func ItemIDs(items []LogoItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
