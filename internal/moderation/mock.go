package moderation

import (
	"context"

	"github.com/glimmerhq/storyshowcase/internal/models"
)

// MockAnalyzer is a simple mock implementation for tests.
type MockAnalyzer struct {
	Result *models.ModerationResult
	Err    error
	Calls  int
}

// Analyze returns the configured result/error.
func (m *MockAnalyzer) Analyze(ctx context.Context, mediaBytes []byte, mimeType string) (*models.ModerationResult, error) {
	_ = ctx
	_ = mediaBytes
	_ = mimeType
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result != nil {
		return m.Result, nil
	}
	return &models.ModerationResult{
		ModerationStatus:  "safe",
		Tags:              []string{},
		ModerationReasons: []string{},
		Confidence:        1,
	}, nil
}
