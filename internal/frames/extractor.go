package frames

import (
	"context"
	"errors"
)

// Extractor produces one JPEG still from raw video bytes
type Extractor interface {
	ExtractFrame(ctx context.Context, videoBytes []byte) ([]byte, error)
}

// ErrExtraction means the video could not be decoded into a frame
var ErrExtraction = errors.New("frames: could not extract frame")

// MockExtractor is a simple mock implementation for tests.
type MockExtractor struct {
	Frame []byte
	Err   error
	Calls int
}

// ExtractFrame returns the configured frame/error.
func (m *MockExtractor) ExtractFrame(ctx context.Context, videoBytes []byte) ([]byte, error) {
	_ = ctx
	_ = videoBytes
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Frame != nil {
		return m.Frame, nil
	}
	return []byte("jpeg"), nil
}
