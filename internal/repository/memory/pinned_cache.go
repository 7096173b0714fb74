package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/DeDsEC-7/NoteNest-Api/internal/entity"
)

// PinnedItems is the per-user dashboard shelf: the newest pinned notes and
// todos, capped at ten each.
type PinnedItems struct {
	Notes []*entity.Note
	Todos []*entity.Todo
}

// PinnedCache keeps the dashboard pinned shelf in process memory. Entries
// expire quickly and are dropped eagerly whenever a lifecycle mutation
// touches the owner's items, so staleness is bounded by the TTL.
type PinnedCache struct {
	cache *cache.Cache
}

func NewPinnedCache() *PinnedCache {
	// 30s expiration with a 5 minute janitor; the cache is advisory only
	c := cache.New(30*time.Second, 5*time.Minute)
	return &PinnedCache{
		cache: c,
	}
}

func (r *PinnedCache) Get(userId uuid.UUID) (*PinnedItems, bool) {
	if x, found := r.cache.Get(userId.String()); found {
		return x.(*PinnedItems), true
	}
	return nil, false
}

func (r *PinnedCache) Set(userId uuid.UUID, items *PinnedItems) {
	r.cache.Set(userId.String(), items, cache.DefaultExpiration)
}

// Invalidate drops the user's shelf after any mutation that could change
// pin placement.
func (r *PinnedCache) Invalidate(userId uuid.UUID) {
	r.cache.Delete(userId.String())
}
