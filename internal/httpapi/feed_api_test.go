package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glimmerhq/storyshowcase/internal/models"
	"github.com/glimmerhq/storyshowcase/internal/testutil"
)

type fakeFeedStore struct {
	stories  []models.PublishedStory
	err      error
	gotLimit int
}

func (f *fakeFeedStore) ListRecent(ctx context.Context, limit int) ([]models.PublishedStory, error) {
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.stories, nil
}

func feedMux(store FeedStore) *http.ServeMux {
	identity := func(next http.HandlerFunc) http.HandlerFunc { return next }
	mux := http.NewServeMux()
	NewFeedAPI(store, testutil.NullLogger()).RegisterRoutes(mux, identity)
	return mux
}

func TestGetFeed(t *testing.T) {
	treatmentID := 714
	store := &fakeFeedStore{stories: []models.PublishedStory{
		{
			ID:               "story-1",
			Owner:            "owner-1",
			ContentTypeLabel: "Balayage",
			TreatmentID:      &treatmentID,
			TreatmentName:    "Balayage",
			Tags:             []string{},
			MediaType:        models.MediaTypeImage,
			PublishedAt:      time.Now(),
		},
	}}

	rec := httptest.NewRecorder()
	feedMux(store).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/feed", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Stories []models.PublishedStory `json:"stories"`
		Count   int                     `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || len(resp.Stories) != 1 {
		t.Fatalf("expected one story, got %+v", resp)
	}
	if resp.Stories[0].TreatmentName != "Balayage" {
		t.Fatalf("unexpected story: %+v", resp.Stories[0])
	}
}

func TestGetFeed_LimitParam(t *testing.T) {
	store := &fakeFeedStore{}

	rec := httptest.NewRecorder()
	feedMux(store).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/feed?limit=5", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if store.gotLimit != 5 {
		t.Fatalf("expected limit 5 passed through, got %d", store.gotLimit)
	}
}

func TestGetFeed_StoreError(t *testing.T) {
	store := &fakeFeedStore{err: errors.New("db down")}

	rec := httptest.NewRecorder()
	feedMux(store).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/feed", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestGetFeed_NoStore(t *testing.T) {
	rec := httptest.NewRecorder()
	feedMux(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/feed", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 0 {
		t.Fatalf("expected empty feed, got %d", resp.Count)
	}
}
