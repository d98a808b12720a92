package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"newsrec/api"
	"newsrec/cache"
	"newsrec/config"
	"newsrec/recommender"
	"newsrec/rssfeeds"
	"newsrec/session"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()
	cfg := config.FromEnv()

	ingestor := rssfeeds.NewIngestor()
	corpusCache := cache.New(cfg.CorpusTTL, ingestor.Ingest)
	rec := recommender.New(cfg, corpusCache)
	sessions := session.NewManager()

	if cfg.WarmCache {
		startCacheWarmer(corpusCache)
	}

	server := api.NewServer(cfg, corpusCache, rec, sessions)
	r := server.NewRouter()

	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/categories")
	log.Println("  GET  /api/news/:category")
	log.Println("  POST /api/article/content")
	log.Println("  POST /api/recommend")
	log.Println("  POST /api/session/keys")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// startCacheWarmer pre-fetches every category once at boot and then on
// a schedule matching the corpus TTL, so interactive requests rarely
// pay the ingestion cost.
func startCacheWarmer(corpusCache *cache.CorpusCache) {
	warm := func() {
		corpusCache.Warm(context.Background(), config.CategoryOrder)
	}
	go warm()

	c := cron.New()
	if _, err := c.AddFunc("@hourly", warm); err != nil {
		log.Printf("failed to schedule cache warmer: %v", err)
		return
	}
	c.Start()
}
