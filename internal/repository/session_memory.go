package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"studyaid-backend/internal/session"
)

// MemoryStore keeps sessions in process. Entries expire after ttl without a
// Save or Get.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	// purge expired sessions every ttl/2, at least once a minute
	cleanup := ttl / 2
	if cleanup <= 0 || cleanup > time.Minute {
		cleanup = time.Minute
	}
	return &MemoryStore{cache: cache.New(ttl, cleanup)}
}

func (r *MemoryStore) Save(_ context.Context, s *session.State) error {
	r.cache.Set(s.ID.String(), s.Clone(), cache.DefaultExpiration)
	return nil
}

func (r *MemoryStore) Get(_ context.Context, id uuid.UUID) (*session.State, error) {
	key := id.String()
	x, found := r.cache.Get(key)
	if !found {
		return nil, ErrSessionNotFound
	}
	// stored snapshots are never mutated, so the same value is re-set to slide the TTL
	r.cache.Set(key, x, cache.DefaultExpiration)
	return x.(*session.State).Clone(), nil
}

func (r *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}

// Count returns the number of live sessions, expired ones included until purge.
func (r *MemoryStore) Count() int {
	return r.cache.ItemCount()
}
