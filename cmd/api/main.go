package main

import (
	"context"
	"log"
	"time"

	"github.com/epstein-graph/graph-backend/config"
	"github.com/epstein-graph/graph-backend/internal/bootstrap"
	"github.com/epstein-graph/graph-backend/internal/cache"
	"github.com/epstein-graph/graph-backend/internal/seed"
	"github.com/epstein-graph/graph-backend/internal/storage/postgres"
	"github.com/epstein-graph/graph-backend/internal/turnstile"
	"github.com/epstein-graph/graph-backend/internal/uploads"
)

const serviceName = "graph-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	images, err := uploads.NewStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	graphCache := cache.New(cfg.Redis.Addr, time.Duration(cfg.Redis.CacheTTL)*time.Second)
	seeds := seed.NewProvider(cfg.Seed.Path)

	if cfg.Seed.ReloadSpec != "" {
		scheduler := seed.NewScheduler(seeds, func() {
			graphCache.Invalidate(context.Background())
		})
		if err := scheduler.Start(cfg.Seed.ReloadSpec); err != nil {
			log.Fatalf("seed scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Config:      cfg,
		DB:          pool,
		Seeds:       seeds,
		Images:      images,
		Cache:       graphCache,
		Verifier:    turnstile.New(cfg.Turnstile.Secret),
	})

	log.Printf("[%s] listening on :%s", serviceName, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
