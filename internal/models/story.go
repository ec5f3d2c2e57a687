package models

import "time"

// MediaType distinguishes image and video uploads
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// StoryStatus is the lifecycle state of an uploaded story asset
type StoryStatus string

const (
	StatusAnalyzing StoryStatus = "analyzing"
	StatusApproved  StoryStatus = "approved"
	StatusRejected  StoryStatus = "rejected"
	StatusError     StoryStatus = "error"
)

// FlaggedCategories holds the per-category moderation verdicts
type FlaggedCategories struct {
	Nudity          bool `json:"nudity"`
	Profanity       bool `json:"profanity"`
	Violence        bool `json:"violence"`
	IllegalItems    bool `json:"illegalItems"`
	ContactInfo     bool `json:"contactInfo"`
	OffTopicContent bool `json:"offTopicContent"`
}

// Any reports whether at least one category was flagged
func (f FlaggedCategories) Any() bool {
	return f.Nudity || f.Profanity || f.Violence || f.IllegalItems || f.ContactInfo || f.OffTopicContent
}

// ModerationResult is the structured verdict returned by the analysis service
type ModerationResult struct {
	ContentTypeLabel  string            `json:"contentTypeLabel"`
	Tags              []string          `json:"tags"`
	ModerationStatus  string            `json:"moderationStatus"` // "safe" or "unsafe"
	ModerationReasons []string          `json:"moderationReasons"`
	Confidence        float64           `json:"confidence"`
	FlaggedCategories FlaggedCategories `json:"flaggedCategories"`
}

// TreatmentMatch is a resolved catalog entry for a moderation label
type TreatmentMatch struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StoryAsset is the single media item a business user currently owns
type StoryAsset struct {
	ID             string            `json:"id"`
	Owner          string            `json:"owner"`
	FileName       string            `json:"fileName"`
	MediaType      MediaType         `json:"mediaType"`
	PreviewToken   string            `json:"previewToken"`
	Status         StoryStatus       `json:"status"`
	Moderation     *ModerationResult `json:"moderation,omitempty"`
	TreatmentMatch *TreatmentMatch   `json:"treatmentMatch,omitempty"`
	ErrorMessage   string            `json:"errorMessage,omitempty"`
	UploadedAt     time.Time         `json:"uploadedAt"`
}

// PublishedStory is a story that made it onto the public feed
type PublishedStory struct {
	ID               string    `json:"id"`
	Owner            string    `json:"owner"`
	ContentTypeLabel string    `json:"contentTypeLabel"`
	TreatmentID      *int      `json:"treatmentId,omitempty"`
	TreatmentName    string    `json:"treatmentName,omitempty"`
	Tags             []string  `json:"tags"`
	Confidence       float64   `json:"confidence"`
	MediaType        MediaType `json:"mediaType"`
	PublishedAt      time.Time `json:"publishedAt"`
}
