// Package cache keeps the merged graph in Redis so the read endpoint does
// not rebuild it on every request. The cache is optional: a nil *GraphCache
// is a safe no-op everywhere.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/epstein-graph/graph-backend/internal/graph"
)

const mergedGraphKey = "graph:merged"

type GraphCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis. An empty addr disables caching (nil return).
func New(addr string, ttl time.Duration) *GraphCache {
	if addr == "" {
		return nil
	}
	return &GraphCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

// Get returns the cached merged graph, or false on miss, decode failure or
// a disabled cache.
func (c *GraphCache) Get(ctx context.Context) (*graph.Graph, bool) {
	if c == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, mergedGraphKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[cache] get: %v", err)
		}
		return nil, false
	}
	var g graph.Graph
	if err := json.Unmarshal(b, &g); err != nil {
		log.Printf("[cache] decode: %v", err)
		return nil, false
	}
	return &g, true
}

// Set stores the merged graph with the configured TTL. Failures are logged
// and ignored; the cache is best effort.
func (c *GraphCache) Set(ctx context.Context, g *graph.Graph) {
	if c == nil {
		return
	}
	b, err := json.Marshal(g)
	if err != nil {
		log.Printf("[cache] encode: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, mergedGraphKey, b, c.ttl).Err(); err != nil {
		log.Printf("[cache] set: %v", err)
	}
}

// Invalidate drops the cached graph. Called after every accepted write and
// after a seed reload.
func (c *GraphCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, mergedGraphKey).Err(); err != nil {
		log.Printf("[cache] invalidate: %v", err)
	}
}
