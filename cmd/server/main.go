package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"    // loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/lesson-seat-storefront/internal/config"
	"github.com/iliyamo/lesson-seat-storefront/internal/handler"
	"github.com/iliyamo/lesson-seat-storefront/internal/middleware"
	"github.com/iliyamo/lesson-seat-storefront/internal/queue"
	"github.com/iliyamo/lesson-seat-storefront/internal/repository"
	"github.com/iliyamo/lesson-seat-storefront/internal/router"
	"github.com/iliyamo/lesson-seat-storefront/internal/service"
	"github.com/iliyamo/lesson-seat-storefront/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	session := store.NewSession()
	lessons := repository.NewLessonRepo(cfg.LessonsAPIURL, cfg.HTTPTimeout)

	// Load the initial catalog.  A failure here is reported but not
	// fatal: the storefront starts with an empty catalog and the next
	// successful fetch replaces it wholesale.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	if subjects, err := lessons.FetchLessons(ctx); err != nil {
		log.Printf("initial catalog load failed: %v", err)
	} else {
		session.ReplaceCatalog(subjects)
		log.Printf("catalog loaded: %d subjects", len(subjects))
	}
	cancel()

	checkout := service.NewCheckout(session, lessons, cfg.HTTPTimeout, cfg.PublishEvents)

	// Redis is optional; a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, cache and rate limit disabled")
	}
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	if cfg.PublishEvents {
		go func() {
			if err := queue.StartOrderConsumer(); err != nil {
				log.Printf("order consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterStorefront(e,
		handler.NewCatalogHandler(session),
		handler.NewCartHandler(session),
		handler.NewCheckoutHandler(session, checkout),
		limit, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, lessons_api=%s)", addr, cfg.Env, cfg.LessonsAPIURL)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
