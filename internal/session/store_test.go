package session

import (
	"testing"
	"time"
)

func TestTokenDeterministic(t *testing.T) {
	url := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

	first := Token(url)
	second := Token(url)

	if first != second {
		t.Errorf("Expected identical tokens for the same URL, got %q and %q", first, second)
	}
	if len(first) != TokenLength {
		t.Errorf("Expected token length %d, got %d", TokenLength, len(first))
	}
}

func TestTokenDistinctURLs(t *testing.T) {
	a := Token("https://youtu.be/abc")
	b := Token("https://youtu.be/def")

	if a == b {
		t.Errorf("Expected different tokens for different URLs, both were %q", a)
	}
}

func TestStorePutGet(t *testing.T) {
	store := NewStore(16, time.Minute)
	url := "https://www.tiktok.com/@user/video/123"

	token := store.Put(url)

	got, ok := store.Get(token)
	if !ok {
		t.Fatal("Expected token to resolve immediately after Put")
	}
	if got != url {
		t.Errorf("Expected %q, got %q", url, got)
	}
}

func TestStoreGetAbsent(t *testing.T) {
	store := NewStore(16, time.Minute)

	if _, ok := store.Get("000000000000"); ok {
		t.Error("Expected absent token to report ok=false")
	}
}

func TestStoreRepeatedPutSameURL(t *testing.T) {
	store := NewStore(16, time.Minute)
	url := "https://x.com/user/status/42"

	first := store.Put(url)
	second := store.Put(url)

	if first != second {
		t.Errorf("Expected stable token across repeated puts, got %q and %q", first, second)
	}
	if got, ok := store.Get(first); !ok || got != url {
		t.Errorf("Expected %q to still resolve, got %q ok=%v", url, got, ok)
	}
}

func TestStoreCollidingTokenLastWriteWins(t *testing.T) {
	store := NewStore(16, time.Minute)
	url := "https://youtu.be/abc"
	token := Token(url)

	// Two URLs sharing a token cannot be constructed from outside, so the
	// earlier colliding entry is seeded into the cache directly.
	store.cache.Add(token, "https://youtu.be/earlier")

	if got := store.Put(url); got != token {
		t.Fatalf("Expected token %q, got %q", token, got)
	}
	got, ok := store.Get(token)
	if !ok {
		t.Fatal("Expected token to resolve after overwrite")
	}
	if got != url {
		t.Errorf("Expected last write to win, got %q", got)
	}
}

func TestStoreCapacityEviction(t *testing.T) {
	store := NewStore(2, time.Minute)

	oldest := store.Put("https://youtu.be/first")
	store.Put("https://youtu.be/second")
	store.Put("https://youtu.be/third")

	if _, ok := store.Get(oldest); ok {
		t.Error("Expected oldest entry to be evicted once capacity is exceeded")
	}
	if store.Len() != 2 {
		t.Errorf("Expected 2 live entries, got %d", store.Len())
	}
}

func TestStoreTTLExpiry(t *testing.T) {
	store := NewStore(16, 20*time.Millisecond)

	token := store.Put("https://youtu.be/shortlived")
	time.Sleep(120 * time.Millisecond)

	if _, ok := store.Get(token); ok {
		t.Error("Expected entry to expire after its TTL")
	}
}
