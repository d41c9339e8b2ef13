package results

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Store is an expiring cache of rendered HTML fragments keyed by session ID.
// A result only needs to survive from the upload redirect to the results
// read; the TTL is slack for reloads. A new upload overwrites the old entry.
type Store struct {
	c *cache.Cache
}

func NewStore(ttl time.Duration) *Store {
	return &Store{c: cache.New(ttl, 2*ttl)}
}

func (s *Store) Put(sessionID, html string) {
	s.c.SetDefault(sessionID, html)
}

func (s *Store) Get(sessionID string) (string, bool) {
	v, ok := s.c.Get(sessionID)
	if !ok {
		return "", false
	}
	return v.(string), true
}
