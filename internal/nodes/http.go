package nodes

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epstein-graph/graph-backend/internal/api/http/middleware"
	"github.com/epstein-graph/graph-backend/internal/graph"
	"github.com/epstein-graph/graph-backend/internal/turnstile"
	"github.com/epstein-graph/graph-backend/internal/uploads"
)

// Repository is the storage surface the handlers need.
type Repository interface {
	Insert(ctx context.Context, n graph.Node, ipAddress string) error
	List(ctx context.Context) ([]graph.Node, error)
	LabelExists(ctx context.Context, label string) (bool, error)
}

// SeedSource exposes the current seed graph for duplicate checks and the
// lightweight node list.
type SeedSource interface {
	Graph() *graph.Graph
}

// Invalidator drops the cached merged graph after an accepted write. May
// be a no-op.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type Handler struct {
	repo     Repository
	seeds    SeedSource
	images   *uploads.Store
	verifier turnstile.Verifier
	cache    Invalidator
}

func NewHandler(repo Repository, seeds SeedSource, images *uploads.Store, verifier turnstile.Verifier, cache Invalidator) *Handler {
	return &Handler{repo: repo, seeds: seeds, images: images, verifier: verifier, cache: cache}
}

func Register(rg *gin.RouterGroup, h *Handler) {
	rg.GET("/nodes", h.list)
	rg.POST("/nodes", h.create)
}

type nodeRef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// list serves the lightweight id/label list for search and autocomplete,
// seed rows first. A storage error degrades to seed-only rather than
// failing the read.
func (h *Handler) list(c *gin.Context) {
	seed := h.seeds.Graph()
	out := make([]nodeRef, 0, len(seed.Nodes))
	for _, n := range seed.Nodes {
		out = append(out, nodeRef{ID: n.ID, Label: n.Label})
	}

	userNodes, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("[nodes] list user rows: %v", err)
	}
	for _, n := range userNodes {
		out = append(out, nodeRef{ID: n.ID, Label: n.Label})
	}
	c.JSON(http.StatusOK, out)
}

// create validates and persists one user-submitted node from a multipart
// form. The anti-abuse check runs before any validation.
func (h *Handler) create(c *gin.Context) {
	ctx := c.Request.Context()

	ok, err := h.verifier.Verify(ctx, c.PostForm("turnstileToken"), c.ClientIP())
	if err != nil {
		log.Printf("[nodes] turnstile verify: %v", err)
	}
	if err != nil || !ok {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "verification failed"})
		return
	}

	sub := graph.NodeSubmission{
		Label:  c.PostForm("label"),
		Role:   c.PostForm("role"),
		Group:  c.PostForm("group"),
		Gender: c.PostForm("gender"),
	}
	n, err := sub.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	// Duplicate check against the seed set and the persisted user set.
	// The unique index on lower(label) catches whatever races past it.
	if h.seeds.Graph().HasLabel(n.Label) {
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": graph.ErrDuplicateLabel.Error()})
		return
	}
	exists, err := h.repo.LabelExists(ctx, n.Label)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "storage unavailable"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": graph.ErrDuplicateLabel.Error()})
		return
	}

	// Optional image. Filter rejections and I/O failures drop the file
	// without failing the whole request.
	if fh, err := c.FormFile("image"); err == nil {
		name, stored, err := h.images.Save(fh)
		if err != nil {
			log.Printf("[nodes] image save: %v", err)
		} else if stored {
			n.Image = name
		}
	}

	n.ID = graph.NewNodeID(n.Label)
	if err := h.repo.Insert(ctx, n, c.ClientIP()); err != nil {
		// The file write is compensated when the insert fails, so no
		// orphaned upload stays behind.
		h.images.Remove(n.Image)
		if errors.Is(err, graph.ErrDuplicateLabel) {
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
			return
		}
		log.Printf("[nodes] insert id=%s: %v", middleware.FromContext(ctx), err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "storage unavailable"})
		return
	}

	h.cache.Invalidate(ctx)
	c.JSON(http.StatusCreated, n)
}
