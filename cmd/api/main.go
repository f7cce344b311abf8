package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/nutrilog/backend/config"
	"github.com/pageza/nutrilog/backend/internal/api"
	"github.com/pageza/nutrilog/backend/internal/catalog"
	"github.com/pageza/nutrilog/backend/internal/database"
	"github.com/pageza/nutrilog/backend/internal/logging"
	"github.com/pageza/nutrilog/backend/internal/middleware"
	"github.com/pageza/nutrilog/backend/internal/router"
	"github.com/pageza/nutrilog/backend/internal/server"
	"github.com/pageza/nutrilog/backend/internal/service"
)

func main() {
	migrationsDir := flag.String("migrations", "migrations", "directory holding SQL migrations")
	flag.Parse()

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	log := logging.New(cfg)
	if cfg.Environment.ReleaseMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	source, err := catalogSource(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to configure catalog source")
	}
	store, err := source.Load(ctx)
	if err != nil {
		var integrity *catalog.IntegrityError
		if errors.As(err, &integrity) {
			for _, v := range integrity.Violations {
				log.WithField("violation", v.String()).Error("catalog integrity violation")
			}
		}
		log.WithError(err).WithField("source", source.String()).Fatal("failed to load catalog")
	}
	holder := catalog.NewHolder(store)
	log.WithFields(logrus.Fields{
		"source": source.String(),
		"counts": store.Counts(),
	}).Info("catalog loaded")

	db, err := database.Open(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.RunMigrations(db, *migrationsDir, log); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	catalogService := service.NewCatalogService(holder, logging.WithComponent(log, "catalog"))
	deps := api.Dependencies{
		Catalog: catalogService,
		Meals:   service.NewMealService(db, catalogService, logging.WithComponent(log, "meals")),
		Tokens:  service.NewTokenService(cfg.JWTSecret),
		Ping: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
		Log: log,
	}

	if cfg.RedisEnabled() && cfg.SearchRateLimit > 0 {
		client, err := database.NewRedisClient(cfg, log)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, search is not rate limited")
		} else {
			defer client.Close()
			deps.SearchLimiter = middleware.NewSearchRateLimiter(client, cfg.SearchRateLimit)
		}
	}

	srv := server.New(cfg, router.SetupRouter(deps), log)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case err := <-errChan:
			if err != nil {
				log.WithError(err).Fatal("server error")
			}
			return
		case sig := <-signals:
			if sig == syscall.SIGHUP {
				reloadCatalog(ctx, holder, source, log)
				continue
			}
			log.WithField("signal", sig.String()).Info("received signal")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := srv.Stop(shutdownCtx); err != nil {
				cancel()
				log.WithError(err).Fatal("server shutdown error")
			}
			cancel()
			log.Info("server stopped")
			return
		}
	}
}

func catalogSource(ctx context.Context, cfg *config.Config) (catalog.Source, error) {
	if !cfg.CatalogFromS3() {
		return catalog.Source{Path: cfg.CatalogPath}, nil
	}
	s3cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		return catalog.Source{}, err
	}
	return catalog.Source{Key: cfg.CatalogS3Key, Objects: s3cfg}, nil
}

// reloadCatalog swaps in a fresh snapshot. A broken document is logged and
// the running snapshot keeps serving.
func reloadCatalog(ctx context.Context, holder *catalog.Holder, source catalog.Source, log logrus.FieldLogger) {
	counts, err := holder.Reload(ctx, source)
	if err != nil {
		log.WithError(err).WithField("source", source.String()).Error("catalog reload failed, keeping current snapshot")
		return
	}
	log.WithField("counts", counts).Info("catalog reloaded")
}
