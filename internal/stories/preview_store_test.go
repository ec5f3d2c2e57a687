package stories

import (
	"testing"
	"time"
)

func TestInMemoryPreviewStore_PutGet(t *testing.T) {
	store := NewInMemoryPreviewStore(time.Minute)

	token := store.Put("owner-1", PreviewMedia{MIMEType: "image/jpeg", Bytes: []byte("jpeg")})
	if token == "" {
		t.Fatal("expected a token")
	}

	media, ok := store.Get("owner-1", token)
	if !ok {
		t.Fatal("expected media for token")
	}
	if media.MIMEType != "image/jpeg" || string(media.Bytes) != "jpeg" {
		t.Fatalf("unexpected media: %+v", media)
	}
	if media.Owner != "owner-1" {
		t.Fatalf("expected owner recorded, got %q", media.Owner)
	}
}

func TestInMemoryPreviewStore_OwnerScoped(t *testing.T) {
	store := NewInMemoryPreviewStore(time.Minute)

	token := store.Put("owner-1", PreviewMedia{Bytes: []byte("jpeg")})
	if _, ok := store.Get("owner-2", token); ok {
		t.Fatal("expected no access for a different owner")
	}
}

func TestInMemoryPreviewStore_Release(t *testing.T) {
	store := NewInMemoryPreviewStore(time.Minute)

	token := store.Put("owner-1", PreviewMedia{Bytes: []byte("jpeg")})
	store.Release(token)
	if _, ok := store.Get("owner-1", token); ok {
		t.Fatal("expected released token to be gone")
	}

	// Releasing an unknown token is a no-op
	store.Release("missing")
}

func TestInMemoryPreviewStore_Expiry(t *testing.T) {
	store := NewInMemoryPreviewStore(10 * time.Millisecond)

	token := store.Put("owner-1", PreviewMedia{Bytes: []byte("jpeg")})
	time.Sleep(25 * time.Millisecond)
	if _, ok := store.Get("owner-1", token); ok {
		t.Fatal("expected expired token to be gone")
	}
}
