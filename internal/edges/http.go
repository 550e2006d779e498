package edges

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epstein-graph/graph-backend/internal/api/http/middleware"
	"github.com/epstein-graph/graph-backend/internal/graph"
	"github.com/epstein-graph/graph-backend/internal/turnstile"
)

// Repository is the storage surface the handlers need.
type Repository interface {
	Insert(ctx context.Context, e graph.Edge, ipAddress string) error
	List(ctx context.Context) ([]graph.Edge, error)
}

// NodeFinder checks endpoint existence among persisted user nodes.
type NodeFinder interface {
	HasID(ctx context.Context, id string) (bool, error)
}

// SeedSource exposes the current seed graph for endpoint checks.
type SeedSource interface {
	Graph() *graph.Graph
}

// Invalidator drops the cached merged graph after an accepted write.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type Handler struct {
	repo     Repository
	nodes    NodeFinder
	seeds    SeedSource
	verifier turnstile.Verifier
	cache    Invalidator
}

func NewHandler(repo Repository, nodes NodeFinder, seeds SeedSource, verifier turnstile.Verifier, cache Invalidator) *Handler {
	return &Handler{repo: repo, nodes: nodes, seeds: seeds, verifier: verifier, cache: cache}
}

func Register(rg *gin.RouterGroup, h *Handler) {
	rg.POST("/edges", h.create)
}

type createReq struct {
	graph.EdgeSubmission
	TurnstileToken string `json:"turnstileToken"`
}

// create validates and persists one user-submitted edge. Both endpoints
// must exist in the union of seed and persisted user nodes at write time;
// nothing enforces the reference afterward.
func (h *Handler) create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	ok, err := h.verifier.Verify(ctx, req.TurnstileToken, c.ClientIP())
	if err != nil {
		log.Printf("[edges] turnstile verify: %v", err)
	}
	if err != nil || !ok {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "verification failed"})
		return
	}

	e, err := req.EdgeSubmission.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	for _, endpoint := range []string{e.Source, e.Target} {
		known, err := h.nodeExists(ctx, endpoint)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "storage unavailable"})
			return
		}
		if !known {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": graph.ErrUnknownEndpoint.Error()})
			return
		}
	}

	e.ID = graph.NewEdgeID()
	if err := h.repo.Insert(ctx, e, c.ClientIP()); err != nil {
		log.Printf("[edges] insert id=%s: %v", middleware.FromContext(ctx), err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "storage unavailable"})
		return
	}

	h.cache.Invalidate(ctx)
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) nodeExists(ctx context.Context, id string) (bool, error) {
	if h.seeds.Graph().HasNode(id) {
		return true, nil
	}
	return h.nodes.HasID(ctx, id)
}
