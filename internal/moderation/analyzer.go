package moderation

import (
	"context"
	"errors"
	"fmt"

	"github.com/glimmerhq/storyshowcase/internal/models"
)

// Analyzer is the provider abstraction that screens one media still and
// returns the structured verdict.
type Analyzer interface {
	Analyze(ctx context.Context, mediaBytes []byte, mimeType string) (*models.ModerationResult, error)
}

// ErrMissingCredential means the analyzer has no API credential. It is
// returned before any network call is made.
var ErrMissingCredential = errors.New("moderation: missing API credential")

// ErrModelNotFound means the configured model name was not recognized by the
// analysis service.
var ErrModelNotFound = errors.New("moderation: model not found")

// ServiceError is any other non-success response from the analysis service.
// The raw response body is kept for diagnosis.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("moderation: service returned status %d: %s", e.StatusCode, e.Body)
}

// ParseError means the service responded but the payload could not be decoded
// into a verdict, even after stripping code fences.
type ParseError struct {
	Body string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("moderation: unparseable verdict: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
