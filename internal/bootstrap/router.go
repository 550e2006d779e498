package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/epstein-graph/graph-backend/config"
	httpapi "github.com/epstein-graph/graph-backend/internal/api/http"
	"github.com/epstein-graph/graph-backend/internal/api/http/middleware"
	"github.com/epstein-graph/graph-backend/internal/cache"
	"github.com/epstein-graph/graph-backend/internal/edges"
	"github.com/epstein-graph/graph-backend/internal/graphapi"
	"github.com/epstein-graph/graph-backend/internal/nodes"
	"github.com/epstein-graph/graph-backend/internal/seed"
	"github.com/epstein-graph/graph-backend/internal/turnstile"
	"github.com/epstein-graph/graph-backend/internal/uploads"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	DB          *pgxpool.Pool
	Seeds       *seed.Provider
	Images      *uploads.Store
	Cache       *cache.GraphCache
	Verifier    turnstile.Verifier
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	if dep.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins: dep.Config.Server.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Config.App.Version, dep.DB, dep.Seeds)
	healthHandler.RegisterRoutes(r)

	// Seed dataset and uploaded images are served statically.
	r.StaticFile("/data/graph.json", dep.Config.Seed.Path)
	r.Static("/uploads", dep.Images.Dir())

	api := r.Group("/api")

	nodeRepo := nodes.NewRepo(dep.DB)
	edgeRepo := edges.NewRepo(dep.DB)

	graphapi.Register(api, graphapi.NewHandler(dep.Seeds, nodeRepo, edgeRepo, dep.Cache))
	nodes.Register(api, nodes.NewHandler(nodeRepo, dep.Seeds, dep.Images, dep.Verifier, dep.Cache))
	edges.Register(api, edges.NewHandler(edgeRepo, nodeRepo, dep.Seeds, dep.Verifier, dep.Cache))

	return r
}
