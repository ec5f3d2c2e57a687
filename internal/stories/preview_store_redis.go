package stories

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPreviewRedisPrefix  = "story-preview:"
	defaultPreviewRedisTimeout = 2 * time.Second
)

// RedisPreviewStore keeps preview media in Redis so any node can serve it.
type RedisPreviewStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisPreviewStore creates a Redis-backed preview store.
func NewRedisPreviewStore(client *redis.Client, ttl time.Duration) *RedisPreviewStore {
	return NewRedisPreviewStoreWithPrefix(client, ttl, defaultPreviewRedisPrefix)
}

// NewRedisPreviewStoreWithPrefix creates a Redis-backed preview store with explicit key prefix.
func NewRedisPreviewStoreWithPrefix(client *redis.Client, ttl time.Duration, prefix string) *RedisPreviewStore {
	if ttl <= 0 {
		ttl = defaultPreviewTTL
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPreviewRedisPrefix
	}

	return &RedisPreviewStore{
		client: client,
		ttl:    ttl,
		prefix: prefix,
	}
}

func (s *RedisPreviewStore) key(token string) string {
	return s.prefix + token
}

// Put stores preview media and returns its token.
func (s *RedisPreviewStore) Put(owner string, media PreviewMedia) string {
	if s.client == nil {
		return ""
	}

	token := uuid.NewString()
	media.Token = token
	media.Owner = owner
	media.ExpiresAt = time.Now().Add(s.ttl)

	payload, err := json.Marshal(media)
	if err != nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultPreviewRedisTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key(token), payload, s.ttl).Err(); err != nil {
		return ""
	}

	return token
}

// Get fetches preview media scoped to its owner.
func (s *RedisPreviewStore) Get(owner, token string) (*PreviewMedia, bool) {
	if s.client == nil {
		return nil, false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultPreviewRedisTimeout)
	defer cancel()

	payload, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		return nil, false
	}

	var media PreviewMedia
	if err := json.Unmarshal(payload, &media); err != nil {
		return nil, false
	}
	if media.Owner != owner {
		return nil, false
	}
	if media.Token == "" {
		media.Token = token
	}

	return &media, true
}

// Release revokes a preview token.
func (s *RedisPreviewStore) Release(token string) {
	if s.client == nil {
		return
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultPreviewRedisTimeout)
	defer cancel()

	s.client.Del(ctx, s.key(token))
}

var _ PreviewStore = (*RedisPreviewStore)(nil)
