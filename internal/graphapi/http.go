// Package graphapi serves the merged graph: the immutable seed dataset
// unioned with the append-only user submissions, optionally cached in
// Redis.
package graphapi

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epstein-graph/graph-backend/internal/cache"
	"github.com/epstein-graph/graph-backend/internal/graph"
)

type SeedSource interface {
	Graph() *graph.Graph
}

type NodeLister interface {
	List(ctx context.Context) ([]graph.Node, error)
}

type EdgeLister interface {
	List(ctx context.Context) ([]graph.Edge, error)
}

type Handler struct {
	seeds SeedSource
	nodes NodeLister
	edges EdgeLister
	cache *cache.GraphCache
}

func NewHandler(seeds SeedSource, nodes NodeLister, edges EdgeLister, c *cache.GraphCache) *Handler {
	return &Handler{seeds: seeds, nodes: nodes, edges: edges, cache: c}
}

func Register(rg *gin.RouterGroup, h *Handler) {
	rg.GET("/graph", h.graph)
}

// graph answers 200 always: a storage failure degrades to the seed graph
// alone, and an unreadable seed degrades to the empty graph.
func (h *Handler) graph(c *gin.Context) {
	ctx := c.Request.Context()

	if g, ok := h.cache.Get(ctx); ok {
		c.JSON(http.StatusOK, g)
		return
	}

	degraded := false
	userNodes, err := h.nodes.List(ctx)
	if err != nil {
		log.Printf("[graph] list user nodes: %v", err)
		degraded = true
	}
	userEdges, err := h.edges.List(ctx)
	if err != nil {
		log.Printf("[graph] list user edges: %v", err)
		degraded = true
	}

	merged := graph.Merge(h.seeds.Graph(), userNodes, userEdges)
	// A degraded merge is served but never cached, so user submissions
	// reappear as soon as storage recovers.
	if !degraded {
		h.cache.Set(ctx, merged)
	}
	c.JSON(http.StatusOK, merged)
}
