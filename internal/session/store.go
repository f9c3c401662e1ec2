package session

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TokenLength is the number of hex characters kept from the URL digest.
// Twelve characters fit inside the transport's 64-byte callback payload
// alongside the action, format and quality tags and their delimiters.
const TokenLength = 12

// Token derives the selection token for a URL. Derivation is deterministic,
// so resubmitting the same URL yields the same token.
func Token(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])[:TokenLength]
}

// Store maps selection tokens to submitted URLs between the link message and
// the option callback. Entries are capacity-bounded and expire after a TTL;
// a lookup after eviction reports absence, which callers surface to the user
// as an expired session. Distinct URLs that hash to the same token overwrite
// each other, last write wins.
type Store struct {
	cache *expirable.LRU[string, string]
}

// NewStore builds a store holding at most capacity entries, each for at
// most ttl.
func NewStore(capacity int, ttl time.Duration) *Store {
	return &Store{cache: expirable.NewLRU[string, string](capacity, nil, ttl)}
}

// Put registers url and returns its token.
func (s *Store) Put(url string) string {
	token := Token(url)
	s.cache.Add(token, url)
	return token
}

// Get resolves a token back to its URL. ok is false when the token was never
// registered or has been evicted.
func (s *Store) Get(token string) (string, bool) {
	return s.cache.Get(token)
}

// Len reports the number of live entries, for diagnostics.
func (s *Store) Len() int {
	return s.cache.Len()
}
