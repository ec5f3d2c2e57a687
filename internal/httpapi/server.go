package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/glimmerhq/storyshowcase/internal/auth"
	"github.com/glimmerhq/storyshowcase/internal/catalog"
	"github.com/glimmerhq/storyshowcase/internal/logging"
	"github.com/glimmerhq/storyshowcase/internal/models"
	"github.com/glimmerhq/storyshowcase/internal/ratelimit"
	"github.com/glimmerhq/storyshowcase/internal/stories"
)

// FeedStore reads the public published-story feed
type FeedStore interface {
	ListRecent(ctx context.Context, limit int) ([]models.PublishedStory, error)
}

type Server struct {
	storySvc       *stories.Service
	feedStore      FeedStore
	catalog        *catalog.Catalog
	authMiddleware *auth.Middleware
	uploadLimiter  *ratelimit.Limiter
	logger         *logging.Logger
	maxUploadSize  int64
	server         *http.Server
}

func New(storySvc *stories.Service, feedStore FeedStore, cat *catalog.Catalog, authMiddleware *auth.Middleware, uploadLimiter *ratelimit.Limiter, logger *logging.Logger, maxUploadSize int64) *Server {
	if maxUploadSize <= 0 {
		maxUploadSize = 50 << 20
	}
	return &Server{
		storySvc:       storySvc,
		feedStore:      feedStore,
		catalog:        cat,
		authMiddleware: authMiddleware,
		uploadLimiter:  uploadLimiter,
		logger:         logger,
		maxUploadSize:  maxUploadSize,
	}
}

func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()

	// Story pipeline routes
	storyAPI := NewStoryAPI(s.storySvc, s.authMiddleware, s.uploadLimiter, s.logger, s.maxUploadSize)
	storyAPI.RegisterRoutes(mux, s.corsMiddleware)

	// Public feed routes
	feedAPI := NewFeedAPI(s.feedStore, s.logger)
	feedAPI.RegisterRoutes(mux, s.corsMiddleware)

	// Treatment catalog routes
	catalogAPI := NewCatalogAPI(s.catalog, s.logger)
	catalogAPI.RegisterRoutes(mux, s.corsMiddleware)

	// Health check
	mux.HandleFunc("/health", s.handleHealth)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	s.logger.Info("HTTP API server starting", logging.WithField("addr", addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
