package httpapi

import (
	"net/http"

	"github.com/glimmerhq/storyshowcase/internal/catalog"
	"github.com/glimmerhq/storyshowcase/internal/logging"
)

// CatalogAPI serves the treatment taxonomy.
type CatalogAPI struct {
	catalog *catalog.Catalog
	logger  *logging.Logger
}

// NewCatalogAPI creates a new catalog API handler.
func NewCatalogAPI(cat *catalog.Catalog, logger *logging.Logger) *CatalogAPI {
	return &CatalogAPI{
		catalog: cat,
		logger:  logger,
	}
}

// RegisterRoutes registers catalog routes.
func (api *CatalogAPI) RegisterRoutes(mux *http.ServeMux, corsMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("/api/catalog/treatments", corsMiddleware(api.handleGetTreatments))
}

func (api *CatalogAPI) handleGetTreatments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	treatments := api.catalog.Search(r.URL.Query().Get("q"))
	if treatments == nil {
		treatments = []catalog.Entry{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"treatments": treatments,
		"count":      len(treatments),
	})
}
