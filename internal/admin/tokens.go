package admin

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// tokenStore holds opaque session tokens in memory. Tokens die with the
// process, which is acceptable for a single-operator console.
type tokenStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	expiry map[string]time.Time
	now    func() time.Time
}

func newTokenStore(ttl time.Duration, now func() time.Time) *tokenStore {
	if now == nil {
		now = time.Now
	}
	return &tokenStore{
		ttl:    ttl,
		expiry: make(map[string]time.Time),
		now:    now,
	}
}

func (s *tokenStore) issue() (string, time.Time) {
	token := uuid.NewString()
	expires := s.now().Add(s.ttl)

	s.mu.Lock()
	s.purgeLocked()
	s.expiry[token] = expires
	s.mu.Unlock()

	return token, expires
}

func (s *tokenStore) valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expires, ok := s.expiry[token]
	if !ok {
		return false
	}
	if s.now().After(expires) {
		delete(s.expiry, token)
		return false
	}
	return true
}

func (s *tokenStore) revoke(token string) {
	s.mu.Lock()
	delete(s.expiry, token)
	s.mu.Unlock()
}

func (s *tokenStore) purgeLocked() {
	now := s.now()
	for token, expires := range s.expiry {
		if now.After(expires) {
			delete(s.expiry, token)
		}
	}
}
