package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glimmerhq/storyshowcase/internal/catalog"
	"github.com/glimmerhq/storyshowcase/internal/testutil"
)

func catalogMux() *http.ServeMux {
	identity := func(next http.HandlerFunc) http.HandlerFunc { return next }
	mux := http.NewServeMux()
	NewCatalogAPI(catalog.New(), testutil.NullLogger()).RegisterRoutes(mux, identity)
	return mux
}

func TestGetTreatments_Query(t *testing.T) {
	rec := httptest.NewRecorder()
	catalogMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/treatments?q=balayage", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Treatments []catalog.Entry `json:"treatments"`
		Count      int             `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count == 0 {
		t.Fatal("expected results for balayage")
	}

	found := false
	for _, e := range resp.Treatments {
		if e.ID == 714 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected entry 714 in results, got %+v", resp.Treatments)
	}
}

func TestGetTreatments_NoQueryReturnsAll(t *testing.T) {
	rec := httptest.NewRecorder()
	catalogMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/treatments", nil))

	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != catalog.New().Len() {
		t.Fatalf("expected the whole catalog, got %d entries", resp.Count)
	}
}

func TestGetTreatments_NoResults(t *testing.T) {
	rec := httptest.NewRecorder()
	catalogMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/treatments?q=zzzz", nil))

	var resp struct {
		Treatments []catalog.Entry `json:"treatments"`
		Count      int             `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 0 || resp.Treatments == nil {
		t.Fatalf("expected empty list, got %+v", resp)
	}
}

func TestGetTreatments_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	catalogMux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/catalog/treatments", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
