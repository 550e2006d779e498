package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/epstein-graph/graph-backend/internal/graph"
)

// SeedStats exposes the currently loaded seed graph for reporting.
type SeedStats interface {
	Graph() *graph.Graph
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DB        string    `json:"db,omitempty"`
	SeedNodes int       `json:"seed_nodes"`
	SeedEdges int       `json:"seed_edges"`
}

type HealthHandler struct {
	serviceName string
	version     string
	db          *pgxpool.Pool
	seeds       SeedStats
}

func NewHealthHandler(serviceName, version string, db *pgxpool.Pool, seeds SeedStats) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		seeds:       seeds,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "disabled"
	if h.db != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.db.Ping(pingCtx); err != nil {
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        dbStatus,
	}
	if h.seeds != nil {
		if g := h.seeds.Graph(); g != nil {
			resp.SeedNodes = len(g.Nodes)
			resp.SeedEdges = len(g.Edges)
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
