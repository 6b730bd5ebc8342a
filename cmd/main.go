package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"julianmorley.ca/con-plar/shopvibe/internal/router"
	"julianmorley.ca/con-plar/shopvibe/pkg/catalog"
	"julianmorley.ca/con-plar/shopvibe/pkg/global"
	"julianmorley.ca/con-plar/shopvibe/pkg/mongo"
	"julianmorley.ca/con-plar/shopvibe/pkg/redis"
	"julianmorley.ca/con-plar/shopvibe/pkg/session"
)

func main() {
	envErr := godotenv.Load()

	cfg := global.LoadConfig()
	log := global.NewLogger(cfg.LogLevel)
	if envErr != nil {
		log.WithError(envErr).Warn("no .env file loaded, using process environment")
	}

	stack, err := buildCatalog(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to set up catalog")
	}

	store := session.NewStore(stack.source,
		session.WithTTL(cfg.SessionTTL),
		session.WithLogger(log),
	)
	go sweepSessions(store, cfg.SessionTTL)

	engine := router.InitEngine(cfg, log)
	router.InitializeRoutes(engine, &router.Handler{
		Catalog:      stack.source,
		Finder:       stack.finder,
		ProductCache: stack.cache,
		Sessions:     store,
		Dependencies: stack.deps,
		Log:          log,
	})

	log.WithFields(logrus.Fields{
		"port":           cfg.Port,
		"catalog_source": cfg.CatalogSource,
		"cache":          cfg.CacheEnabled(),
	}).Info("server is running")

	if err := engine.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to run server")
	}
}

// catalogStack is the catalog wiring handed to the router. cache is nil when
// redis is not configured.
type catalogStack struct {
	source catalog.Source
	finder catalog.Finder
	cache  catalog.ProductCache
	deps   []router.Dependency
}

// buildCatalog picks the catalog origin and wraps it in the redis cache when
// one is configured.
func buildCatalog(cfg global.Config, log *logrus.Logger) (catalogStack, error) {
	var stack catalogStack

	switch cfg.CatalogSource {
	case global.CatalogSourceStatic:
		static := catalog.NewStaticSource(catalog.SampleProducts())
		stack.source, stack.finder = static, static

	case global.CatalogSourceMongo:
		ctx, cancel := global.GetDefaultTimer()
		defer cancel()

		client, err := mongo.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return stack, err
		}
		log.Info("connected to MongoDB")

		db := client.Database(cfg.MongoDatabase)
		if err := mongo.EnsureIndexes(ctx, db, log); err != nil {
			return stack, err
		}

		products := mongo.NewProductStore(db)
		seeded, err := products.Seed(ctx, catalog.SampleProducts())
		if err != nil {
			return stack, err
		}
		if seeded > 0 {
			log.WithField("count", seeded).Info("seeded product catalog")
		}

		stack.source, stack.finder = products, products
		stack.deps = append(stack.deps, router.Dependency{Name: "database", Ping: products.Ping})

	default:
		return stack, errors.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}

	if !cfg.CacheEnabled() {
		return stack, nil
	}

	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	client, err := redis.NewClient(ctx, cfg.RedisAddress, cfg.RedisPassword)
	if err != nil {
		return stack, err
	}
	cache := redis.NewCatalogCache(client, cfg.CatalogCacheTTL)
	if err := cache.Invalidate(ctx); err != nil {
		log.WithError(err).Warn("failed to clear stale catalog cache")
	}
	log.WithField("ttl", cfg.CatalogCacheTTL.String()).Info("catalog cache enabled")

	stack.source = &catalog.CachedSource{Origin: stack.source, Cache: cache, Log: log}
	stack.cache = cache
	stack.deps = append(stack.deps, router.Dependency{Name: "cache", Ping: cache.Ping})
	return stack, nil
}

func sweepSessions(store *session.Store, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for range ticker.C {
		store.Sweep()
	}
}
