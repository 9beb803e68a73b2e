package main

import (
	"context"
	"os"

	"github.com/dmitrymomot/folio/pkg/clientip"
	"github.com/dmitrymomot/folio/pkg/config"
	"github.com/dmitrymomot/folio/pkg/environment"
	"github.com/dmitrymomot/folio/pkg/httpserver"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/ratelimiter"
	"github.com/dmitrymomot/folio/pkg/redis"
	"github.com/dmitrymomot/folio/pkg/requestid"
	"github.com/dmitrymomot/folio/svc/portfolio"
)

func main() {
	var cfg portfolio.Config
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.AppEnv)
	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	ctx := context.Background()

	tr, err := portfolio.NewTranslator(ctx, cfg.DefaultLocale, log)
	if err != nil {
		log.Error("failed to load translations", logger.Error(err))
		os.Exit(1)
	}

	pages := portfolio.NewPages(cfg, tr, portfolio.WithLogger(log))
	defer pages.Close()

	var (
		store  ratelimiter.Store
		checks []func(context.Context) error
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Error("failed to connect to redis", logger.Error(err))
			os.Exit(1)
		}
		defer client.Close()
		store = ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(cfg.AppName+":contact:"))
		checks = append(checks, redis.Healthcheck(client))
	} else {
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		store = mem
	}

	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       cfg.ContactRateLimit,
		RefillRate:     1,
		RefillInterval: cfg.ContactRateInterval,
	})
	if err != nil {
		log.Error("invalid contact rate limit", logger.Error(err))
		os.Exit(1)
	}

	h := portfolio.NewHandlers(pages, tr, log, portfolio.WithSubmitLimiter(limiter))
	router := portfolio.NewRouter(h, tr, env, log, checks...)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		pages.Close()
		os.Exit(1)
	}
}
