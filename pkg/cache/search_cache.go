package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/DeDsEC-7/NoteNest-Api/internal/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keySearch = "search:"

// SearchCache caches unified search responses in Redis. A nil client
// disables caching entirely, so the service layer never has to care
// whether Redis is configured.
type SearchCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSearchCache returns a new SearchCache. rdb may be nil.
func NewSearchCache(rdb *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached response for this user and query, or nil on miss.
func (c *SearchCache) Get(ctx context.Context, userId uuid.UUID, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	if c.rdb == nil {
		return nil, nil
	}
	b, err := c.rdb.Get(ctx, c.key(userId, req)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var resp dto.SearchResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Set stores the response under this user and query.
func (c *SearchCache) Set(ctx context.Context, userId uuid.UUID, req *dto.SearchRequest, resp *dto.SearchResponse) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(userId, req), b, c.ttl).Err()
}

// Invalidate removes every cached search result for the user. Called on
// any write so stale results never survive a mutation.
func (c *SearchCache) Invalidate(ctx context.Context, userId uuid.UUID) error {
	if c.rdb == nil {
		return nil
	}
	pattern := keySearch + userId.String() + ":*"
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *SearchCache) key(userId uuid.UUID, req *dto.SearchRequest) string {
	q := strings.TrimSpace(strings.ToLower(req.Keyword))
	return fmt.Sprintf("%s%s:%s:%s:%s:%d:%d", keySearch, userId, q, req.Type, req.Category, req.Page, req.Limit)
}
