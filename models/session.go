package models

// SessionSnapshot is the observable state of a banner session
type SessionSnapshot struct {
	ID               string   `json:"id"`
	Search           string   `json:"search"`
	ActiveCategories []string `json:"activeCategories"`
	DisplayItems     []string `json:"displayItems"`
	SelectedItems    []string `json:"selectedItems"` // Composition order
	Width            int      `json:"width"`
	Background       string   `json:"background"`
}

// SortDirection is the ordering applied to the composition
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Width bounds of the composition, in percent of the banner width
const (
	MinWidth     = 5
	MaxWidth     = 100
	DefaultWidth = 100
)

// SearchRequest represents the request body for a search update
type SearchRequest struct {
	Search    string `json:"search"`
	Immediate bool   `json:"immediate"`
}

// CategoriesRequest represents the request body for a category selection
type CategoriesRequest struct {
	Categories []string `json:"categories"`
}

// ToggleRequest represents the request body for toggling an item
type ToggleRequest struct {
	ID string `json:"id"`
}

// SortRequest represents the request body for sorting the composition
type SortRequest struct {
	Direction SortDirection `json:"direction"`
}

// WidthRequest represents the request body for a width change
type WidthRequest struct {
	Width int `json:"width"`
}

// BackgroundRequest represents the request body for a background change.
// Exactly one of Background, Gradient or Random is used, in that order of precedence.
type BackgroundRequest struct {
	Background string `json:"background"`
	Gradient   *int   `json:"gradient,omitempty"`
	Random     bool   `json:"random"`
}
