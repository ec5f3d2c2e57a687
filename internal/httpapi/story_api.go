package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/glimmerhq/storyshowcase/internal/auth"
	"github.com/glimmerhq/storyshowcase/internal/logging"
	"github.com/glimmerhq/storyshowcase/internal/ratelimit"
	"github.com/glimmerhq/storyshowcase/internal/stories"
)

// StoryAPI handles the story upload pipeline endpoints.
type StoryAPI struct {
	storySvc       *stories.Service
	authMiddleware *auth.Middleware
	uploadLimiter  *ratelimit.Limiter
	logger         *logging.Logger
	maxUploadSize  int64
}

// NewStoryAPI creates a new story API handler.
func NewStoryAPI(storySvc *stories.Service, authMiddleware *auth.Middleware, uploadLimiter *ratelimit.Limiter, logger *logging.Logger, maxUploadSize int64) *StoryAPI {
	return &StoryAPI{
		storySvc:       storySvc,
		authMiddleware: authMiddleware,
		uploadLimiter:  uploadLimiter,
		logger:         logger,
		maxUploadSize:  maxUploadSize,
	}
}

// RegisterRoutes registers story routes.
func (api *StoryAPI) RegisterRoutes(mux *http.ServeMux, corsMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("/api/stories/upload", corsMiddleware(api.authMiddleware.RequireAuth(api.handleUpload)))
	mux.HandleFunc("/api/stories/current", corsMiddleware(api.authMiddleware.RequireAuth(api.handleCurrent)))
	mux.HandleFunc("/api/stories/publish", corsMiddleware(api.authMiddleware.RequireAuth(api.handlePublish)))
	mux.HandleFunc("/api/stories/preview/", corsMiddleware(api.authMiddleware.RequireAuth(api.handlePreview)))
	mux.HandleFunc("/api/stories/", corsMiddleware(api.authMiddleware.RequireAuth(api.handleRemove)))
}

func (api *StoryAPI) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := auth.GetUserID(r.Context())

	if api.uploadLimiter != nil && !api.uploadLimiter.Allow(userID) {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"error": "too many uploads, slow down",
		})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, api.maxUploadSize)
	if err := r.ParseMultipartForm(api.maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid upload payload",
		})
		return
	}

	file, header, err := r.FormFile("media")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "media file is required",
		})
		return
	}
	defer file.Close()

	if header.Size > api.maxUploadSize {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{
			"error": "file exceeds the upload size limit",
		})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to read upload",
		})
		return
	}

	contentType, ok := detectMediaContentType(data, header.Header.Get("Content-Type"))
	if !ok {
		writeJSON(w, http.StatusUnsupportedMediaType, map[string]string{
			"error": "only image and video files are accepted",
		})
		return
	}

	asset := api.storySvc.SelectFile(userID, header.Filename, contentType, data)
	if asset == nil {
		writeJSON(w, http.StatusUnsupportedMediaType, map[string]string{
			"error": "only image and video files are accepted",
		})
		return
	}

	writeJSON(w, http.StatusAccepted, asset)
}

func (api *StoryAPI) handleCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := auth.GetUserID(r.Context())
	asset := api.storySvc.Current(userID)
	if asset == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "no story selected",
		})
		return
	}

	writeJSON(w, http.StatusOK, asset)
}

func (api *StoryAPI) handlePublish(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := auth.GetUserID(r.Context())

	story, err := api.storySvc.Publish(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, stories.ErrNoStory):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no story selected"})
		case errors.Is(err, stories.ErrNotApproved):
			writeJSON(w, http.StatusConflict, map[string]string{"error": "story is not approved"})
		default:
			api.logger.Error("publish failed",
				logging.WithField("owner", userID),
				logging.WithField("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "publish failed"})
		}
		return
	}

	// The pipeline is empty again; let the user upload immediately.
	if api.uploadLimiter != nil {
		api.uploadLimiter.Reset(userID)
	}

	writeJSON(w, http.StatusOK, story)
}

func (api *StoryAPI) handlePreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token := strings.TrimPrefix(r.URL.Path, "/api/stories/preview/")
	token = strings.TrimSuffix(token, "/")
	if token == "" {
		http.Error(w, "preview token required", http.StatusBadRequest)
		return
	}

	userID := auth.GetUserID(r.Context())
	media, ok := api.storySvc.Preview(userID, token)
	if !ok {
		http.Error(w, "preview not found", http.StatusNotFound)
		return
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Type", media.MIMEType)
	w.Header().Set("Content-Length", strconv.Itoa(len(media.Bytes)))
	w.Header().Set("Cache-Control", "private, max-age=60")
	w.WriteHeader(http.StatusOK)
	w.Write(media.Bytes)
}

func (api *StoryAPI) handleRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/stories/")
	id = strings.TrimSuffix(id, "/")
	if id == "" {
		http.Error(w, "story id required", http.StatusBadRequest)
		return
	}

	userID := auth.GetUserID(r.Context())
	if !api.storySvc.Remove(userID, id) {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "story not found",
		})
		return
	}

	if api.uploadLimiter != nil {
		api.uploadLimiter.Reset(userID)
	}

	w.WriteHeader(http.StatusNoContent)
}
