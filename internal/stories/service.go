package stories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/glimmerhq/storyshowcase/internal/catalog"
	"github.com/glimmerhq/storyshowcase/internal/frames"
	"github.com/glimmerhq/storyshowcase/internal/logging"
	"github.com/glimmerhq/storyshowcase/internal/models"
	"github.com/glimmerhq/storyshowcase/internal/moderation"
)

var (
	// ErrNoStory is returned when an operation needs a selected story and none exists.
	ErrNoStory = errors.New("no story selected")
	// ErrNotApproved is returned when publishing a story that is not approved.
	ErrNotApproved = errors.New("story is not approved")
)

// Publisher persists an approved story onto the public feed
type Publisher interface {
	PublishStory(ctx context.Context, story models.PublishedStory) error
}

// Service owns each business user's single story asset and drives it through
// analyzing -> approved/rejected/error.
type Service struct {
	analyzer  moderation.Analyzer
	extractor frames.Extractor
	catalog   *catalog.Catalog
	previews  PreviewStore
	publisher Publisher
	logger    *logging.Logger
	timeout   time.Duration

	mu     sync.Mutex
	assets map[string]*ownedAsset
}

// ownedAsset tracks the asset plus whether its preview handle was released.
// The release guard ensures the handle is freed exactly once no matter how
// the asset leaves the pipeline.
type ownedAsset struct {
	asset           models.StoryAsset
	previewReleased bool
}

// NewService creates the upload pipeline service.
func NewService(analyzer moderation.Analyzer, extractor frames.Extractor, cat *catalog.Catalog, previews PreviewStore, publisher Publisher, logger *logging.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		analyzer:  analyzer,
		extractor: extractor,
		catalog:   cat,
		previews:  previews,
		publisher: publisher,
		logger:    logger,
		timeout:   timeout,
	}
}

// SelectFile accepts a new media file for the owner. Files that are neither
// image nor video are ignored. A previous selection is replaced and its
// preview handle released. Analysis starts in the background.
func (s *Service) SelectFile(owner, fileName, mimeType string, data []byte) *models.StoryAsset {
	mediaType, ok := mediaTypeOf(mimeType)
	if !ok {
		return nil
	}

	token := s.previews.Put(owner, PreviewMedia{
		MIMEType: mimeType,
		Bytes:    data,
	})

	asset := models.StoryAsset{
		ID:           uuid.NewString(),
		Owner:        owner,
		FileName:     fileName,
		MediaType:    mediaType,
		PreviewToken: token,
		Status:       models.StatusAnalyzing,
		UploadedAt:   time.Now(),
	}

	s.mu.Lock()
	if s.assets == nil {
		s.assets = make(map[string]*ownedAsset)
	}
	if prev, ok := s.assets[owner]; ok {
		s.releaseLocked(prev)
	}
	s.assets[owner] = &ownedAsset{asset: asset}
	s.mu.Unlock()

	s.logger.Info("story selected",
		logging.WithField("owner", owner),
		logging.WithField("story_id", asset.ID),
		logging.WithField("media_type", string(mediaType)))

	go s.analyze(owner, asset.ID, mediaType, mimeType, data)

	snapshot := asset
	return &snapshot
}

// Current returns a snapshot of the owner's selected story, or nil.
func (s *Service) Current(owner string) *models.StoryAsset {
	s.mu.Lock()
	defer s.mu.Unlock()

	oa, ok := s.assets[owner]
	if !ok {
		return nil
	}
	snapshot := oa.asset
	return &snapshot
}

// Remove discards the owner's story if the id matches the current selection.
// Returns whether anything was removed.
func (s *Service) Remove(owner, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	oa, ok := s.assets[owner]
	if !ok || oa.asset.ID != id {
		return false
	}

	s.releaseLocked(oa)
	delete(s.assets, owner)
	return true
}

// Publish persists the owner's approved story onto the public feed, then
// resets the pipeline. Only an approved story can be published.
func (s *Service) Publish(ctx context.Context, owner string) (*models.PublishedStory, error) {
	s.mu.Lock()
	oa, ok := s.assets[owner]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoStory
	}
	if oa.asset.Status != models.StatusApproved {
		s.mu.Unlock()
		return nil, ErrNotApproved
	}
	asset := oa.asset
	s.mu.Unlock()

	story := models.PublishedStory{
		ID:          asset.ID,
		Owner:       owner,
		Tags:        []string{},
		MediaType:   asset.MediaType,
		PublishedAt: time.Now(),
	}
	if asset.Moderation != nil {
		story.ContentTypeLabel = asset.Moderation.ContentTypeLabel
		story.Confidence = asset.Moderation.Confidence
		if asset.Moderation.Tags != nil {
			story.Tags = asset.Moderation.Tags
		}
	}
	if asset.TreatmentMatch != nil {
		id := asset.TreatmentMatch.ID
		story.TreatmentID = &id
		story.TreatmentName = asset.TreatmentMatch.Name
	}

	if s.publisher != nil {
		if err := s.publisher.PublishStory(ctx, story); err != nil {
			return nil, fmt.Errorf("publish story: %w", err)
		}
	}

	s.mu.Lock()
	// The asset may have been replaced while publishing; only reset if it is
	// still the one we published.
	if cur, ok := s.assets[owner]; ok && cur.asset.ID == asset.ID {
		s.releaseLocked(cur)
		delete(s.assets, owner)
	}
	s.mu.Unlock()

	s.logger.Info("story published",
		logging.WithField("owner", owner),
		logging.WithField("story_id", story.ID),
		logging.WithField("treatment", story.TreatmentName))

	return &story, nil
}

// Preview returns the stored preview media for the owner's token
func (s *Service) Preview(owner, token string) (*PreviewMedia, bool) {
	return s.previews.Get(owner, token)
}

// analyze runs moderation for one selected asset. The completion is keyed on
// the asset id so a result arriving after replacement is dropped.
func (s *Service) analyze(owner, assetID string, mediaType models.MediaType, mimeType string, data []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	still := data
	stillMIME := mimeType
	if mediaType == models.MediaTypeVideo {
		frame, err := s.extractor.ExtractFrame(ctx, data)
		if err != nil {
			s.logger.Warn("frame extraction failed",
				logging.WithField("owner", owner),
				logging.WithField("story_id", assetID),
				logging.WithField("error", err.Error()))
			s.completeError(owner, assetID, "Could not read the video. Please try a different file.")
			return
		}
		still = frame
		stillMIME = "image/jpeg"
	}

	result, err := s.analyzer.Analyze(ctx, still, stillMIME)
	if err != nil {
		s.logger.Warn("moderation analysis failed",
			logging.WithField("owner", owner),
			logging.WithField("story_id", assetID),
			logging.WithField("error", err.Error()))
		s.completeError(owner, assetID, "Analysis failed. Please try again.")
		return
	}

	s.completeResult(owner, assetID, result)
}

// completeResult applies a finished analysis to the asset, unless the asset
// was replaced or removed in the meantime.
func (s *Service) completeResult(owner, assetID string, result *models.ModerationResult) {
	var match *models.TreatmentMatch
	if e, ok := s.catalog.Match(result.ContentTypeLabel); ok {
		match = &models.TreatmentMatch{ID: e.ID, Name: e.Name}
	}

	// The verdict alone decides the outcome; the analysis service owns the
	// consistency between moderationStatus and the category flags.
	status := models.StatusApproved
	if result.ModerationStatus == "unsafe" {
		status = models.StatusRejected
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	oa, ok := s.assets[owner]
	if !ok || oa.asset.ID != assetID {
		return
	}

	oa.asset.Status = status
	oa.asset.Moderation = result
	oa.asset.TreatmentMatch = match
	oa.asset.ErrorMessage = ""
}

// completeError moves the asset to the error state, unless it was replaced.
func (s *Service) completeError(owner, assetID, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	oa, ok := s.assets[owner]
	if !ok || oa.asset.ID != assetID {
		return
	}

	oa.asset.Status = models.StatusError
	oa.asset.Moderation = nil
	oa.asset.TreatmentMatch = nil
	oa.asset.ErrorMessage = message
}

func (s *Service) releaseLocked(oa *ownedAsset) {
	if oa.previewReleased || oa.asset.PreviewToken == "" {
		return
	}
	s.previews.Release(oa.asset.PreviewToken)
	oa.previewReleased = true
}

// mediaTypeOf classifies a MIME type; anything that is not image/* or
// video/* is rejected.
func mediaTypeOf(mimeType string) (models.MediaType, bool) {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return models.MediaTypeImage, true
	case strings.HasPrefix(mimeType, "video/"):
		return models.MediaTypeVideo, true
	default:
		return "", false
	}
}
