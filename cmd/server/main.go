package main

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/geo"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, Ola Maps) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if strings.TrimSpace(cfg.OlaMaps.APIKey) == "" {
		log.Fatal("TRIPPLANNER_OLAMAPS_API_KEY is required")
	}
	if strings.TrimSpace(cfg.Database.URL) == "" {
		log.Fatal("TRIPPLANNER_DATABASE_URL is required")
	}

	pg, err := db.Open(cfg.Database.URL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	// Schema init is idempotent; running it on startup keeps local runs simple.
	if err := repositories.InitSchema(pg); err != nil {
		log.Fatal(err)
	}

	// The Ola Maps client consults persistent caches to avoid repeated
	// geocode/matrix calls. Redis takes over geocode caching when configured.
	var geocodeCache geo.GeocodeCache = cache.NewSQLGeocodeCache(pg)
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		geocodeCache = cache.NewRedisGeocodeCache(client, 0)
		log.Printf("geocode cache backend=redis addr=%s", cfg.Redis.Addr)
	}
	matrixCache := cache.NewSQLMatrixCache(pg)

	olamaps, err := geo.NewOlaMapsClient(cfg.OlaMaps.APIKey, cfg.OlaMaps.BaseURL, geocodeCache, matrixCache)
	if err != nil {
		log.Fatal(err)
	}

	planner := services.NewPlanner(olamaps, olamaps)
	planner.Resolver.Concurrency = cfg.Planner.ResolveConcurrency

	repo := repositories.NewPGTripPlanRepository(pg)

	obs.RegisterDefault()
	router := api.NewRouter(planner, repo)

	// Timeouts are tuned for cold-cache planning (external API latency).
	addr := ":" + strconv.Itoa(cfg.Server.Port)
	log.Printf("Server listening addr=%s", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
