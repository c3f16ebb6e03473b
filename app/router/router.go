package router

import (
	"net/http"

	"logo-banner/app/controller"
)

type Controllers struct {
	Catalog *controller.CatalogController
	Session *controller.SessionController
	Export  *controller.ExportController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers every endpoint and wraps the mux in the common middleware
func SetupRoutes(controllers *Controllers) http.Handler {
	mux := http.NewServeMux()

	// Ping endpoint
	mux.HandleFunc("GET /ping", pingHandler)

	// Catalog routes
	mux.HandleFunc("GET /catalog", controllers.Catalog.ListItems)
	mux.HandleFunc("GET /catalog/categories", controllers.Catalog.ListCategories)
	mux.HandleFunc("GET /catalog/items/{id}/svg", controllers.Catalog.GetItemSVG)
	mux.HandleFunc("GET /gradients", controllers.Catalog.ListGradients)

	// Session routes
	mux.HandleFunc("POST /sessions", controllers.Session.Create)
	mux.HandleFunc("GET /sessions/{id}", controllers.Session.Get)
	mux.HandleFunc("DELETE /sessions/{id}", controllers.Session.Delete)
	mux.HandleFunc("GET /sessions/{id}/events", controllers.Session.Events)
	mux.HandleFunc("GET /sessions/{id}/banner", controllers.Session.Banner)

	// Filter inputs
	mux.HandleFunc("POST /sessions/{id}/search", controllers.Session.Search)
	mux.HandleFunc("POST /sessions/{id}/categories", controllers.Session.Categories)

	// Selection
	mux.HandleFunc("POST /sessions/{id}/selection/toggle", controllers.Session.Toggle)
	mux.HandleFunc("POST /sessions/{id}/selection/all", controllers.Session.SelectAll)
	mux.HandleFunc("POST /sessions/{id}/selection/none", controllers.Session.SelectNone)
	mux.HandleFunc("POST /sessions/{id}/selection/preset", controllers.Session.SelectPreset)
	mux.HandleFunc("POST /sessions/{id}/selection/random", controllers.Session.SelectRandom)

	// Composition
	mux.HandleFunc("POST /sessions/{id}/order/randomize", controllers.Session.Randomize)
	mux.HandleFunc("POST /sessions/{id}/order/sort", controllers.Session.Sort)
	mux.HandleFunc("POST /sessions/{id}/width", controllers.Session.Width)
	mux.HandleFunc("POST /sessions/{id}/background", controllers.Session.Background)

	// Export routes
	mux.HandleFunc("POST /sessions/{id}/export", controllers.Export.Export)
	mux.HandleFunc("GET /exports/{exportId}", controllers.Export.Download)
	mux.HandleFunc("GET /exports/{exportId}/preview", controllers.Export.Preview)

	return recoverPanics(logRequests(mux))
}
