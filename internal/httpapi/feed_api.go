package httpapi

import (
	"net/http"
	"strconv"

	"github.com/glimmerhq/storyshowcase/internal/logging"
	"github.com/glimmerhq/storyshowcase/internal/models"
)

// FeedAPI serves the public published-story feed.
type FeedAPI struct {
	feedStore FeedStore
	logger    *logging.Logger
}

// NewFeedAPI creates a new feed API handler.
func NewFeedAPI(feedStore FeedStore, logger *logging.Logger) *FeedAPI {
	return &FeedAPI{
		feedStore: feedStore,
		logger:    logger,
	}
}

// RegisterRoutes registers feed routes.
func (api *FeedAPI) RegisterRoutes(mux *http.ServeMux, corsMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("/api/feed", corsMiddleware(api.handleGetFeed))
}

func (api *FeedAPI) handleGetFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	feed := []models.PublishedStory{}
	if api.feedStore != nil {
		listed, err := api.feedStore.ListRecent(r.Context(), limit)
		if err != nil {
			api.logger.Error("failed to list published stories", logging.WithField("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "feed unavailable",
			})
			return
		}
		if listed != nil {
			feed = listed
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stories": feed,
		"count":   len(feed),
	})
}
