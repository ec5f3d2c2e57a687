package stories

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultPreviewTTL = 30 * time.Minute

// PreviewMedia is the stored media a preview token resolves to
type PreviewMedia struct {
	Token     string
	Owner     string
	MIMEType  string
	Bytes     []byte
	ExpiresAt time.Time
}

// PreviewStore holds preview media under revocable tokens. Put returns the
// token; Release revokes it.
type PreviewStore interface {
	Put(owner string, media PreviewMedia) string
	Get(owner, token string) (*PreviewMedia, bool)
	Release(token string)
}

// InMemoryPreviewStore keeps preview media in memory.
type InMemoryPreviewStore struct {
	mu    sync.Mutex
	media map[string]PreviewMedia
	ttl   time.Duration
}

// NewInMemoryPreviewStore creates a preview store with the provided TTL.
func NewInMemoryPreviewStore(ttl time.Duration) *InMemoryPreviewStore {
	if ttl <= 0 {
		ttl = defaultPreviewTTL
	}
	return &InMemoryPreviewStore{
		media: make(map[string]PreviewMedia),
		ttl:   ttl,
	}
}

// Put stores preview media and returns its token.
func (s *InMemoryPreviewStore) Put(owner string, media PreviewMedia) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.cleanupLocked(now)

	token := uuid.NewString()
	media.Token = token
	media.Owner = owner
	media.ExpiresAt = now.Add(s.ttl)
	s.media[token] = media

	return token
}

// Get fetches preview media scoped to its owner.
func (s *InMemoryPreviewStore) Get(owner, token string) (*PreviewMedia, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupLocked(time.Now())

	media, ok := s.media[token]
	if !ok {
		return nil, false
	}
	if media.Owner != owner {
		return nil, false
	}

	copyMedia := media
	return &copyMedia, true
}

// Release revokes a preview token.
func (s *InMemoryPreviewStore) Release(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.media, token)
}

func (s *InMemoryPreviewStore) cleanupLocked(now time.Time) {
	for token, media := range s.media {
		if now.After(media.ExpiresAt) {
			delete(s.media, token)
		}
	}
}

var _ PreviewStore = (*InMemoryPreviewStore)(nil)
