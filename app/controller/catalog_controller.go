package controller

import (
	"net/http"
	"strconv"
	"strings"

	"logo-banner/models"
	"logo-banner/service"
)

// CatalogController handles HTTP requests for the logo catalog
type CatalogController struct {
	catalog *service.CatalogStore
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalog *service.CatalogStore) *CatalogController {
	return &CatalogController{catalog: catalog}
}

type catalogResponse struct {
	Count int         `json:"count"`
	Items interface{} `json:"items"`
}

// ListItems handles GET /catalog?search=react&category=library,framework&includeSvg=true
func (c *CatalogController) ListItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	categories := splitList(query["category"])

	for _, id := range categories {
		if !c.catalog.HasCategory(models.CategoryID(id)) {
			writeError(w, "ListItems", models.ErrInvalidCategory)
			return
		}
	}

	items := service.Filter(c.catalog.All(), query.Get("search"), categories)

	includeSvg, _ := strconv.ParseBool(query.Get("includeSvg"))
	if includeSvg {
		writeJSON(w, http.StatusOK, catalogResponse{Count: len(items), Items: items})
		return
	}

	summaries := make([]models.LogoItemSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, item.Summary())
	}
	writeJSON(w, http.StatusOK, catalogResponse{Count: len(summaries), Items: summaries})
}

// ListCategories handles GET /catalog/categories
func (c *CatalogController) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.catalog.Categories())
}

// GetItemSVG handles GET /catalog/items/{id}/svg
func (c *CatalogController) GetItemSVG(w http.ResponseWriter, r *http.Request) {
	item, ok := c.catalog.Get(r.PathValue("id"))
	if !ok {
		writeError(w, "GetItemSVG", models.ErrItemNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(item.SVGContent))
}

// ListGradients handles GET /gradients
func (c *CatalogController) ListGradients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"default":   service.DefaultBackground,
		"gradients": service.Gradients,
	})
}

// splitList accepts both repeated and comma separated query values
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
