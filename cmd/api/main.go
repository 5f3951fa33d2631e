package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/idanaslund/final-project-backend/internal/audit"
	"github.com/idanaslund/final-project-backend/internal/config"
	dbpkg "github.com/idanaslund/final-project-backend/internal/db"
	"github.com/idanaslund/final-project-backend/internal/domain/account"
	"github.com/idanaslund/final-project-backend/internal/infra/storage"
	"github.com/idanaslund/final-project-backend/internal/middleware"
	"github.com/idanaslund/final-project-backend/internal/observability"
	"github.com/idanaslund/final-project-backend/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {

	cfg := config.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		rdb = redis.NewClient(opt)
		log.Info().Str("addr", opt.Addr).Dur("ttl", cfg.CacheTTL).Msg("restaurant cache enabled")
	}

	var images account.ImageStore
	if cfg.ImageStorageEnabled() {
		images = storage.NewS3Store(cfg)
		log.Info().Str("bucket", cfg.S3Bucket).Msg("profile image storage enabled")
	}

	dispatcher := audit.NewDispatcher(audit.New(db), cfg.AuditQueueSize)
	reg := observability.InitRegistry()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())

	routes.RegisterRoutes(r, routes.Deps{
		DB:         db,
		Redis:      rdb,
		CacheTTL:   cfg.CacheTTL,
		Images:     images,
		Audit:      dispatcher,
		PingBudget: cfg.StorePingBudget,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", observability.MetricsHandler(reg))
		metricsSrv = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("server running")
		return serve(srv)
	})

	if metricsSrv != nil {
		g.Go(func() error {
			log.Info().Str("addr", metricsSrv.Addr).Msg("metrics server running")
			return serve(metricsSrv)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if metricsSrv != nil {
			_ = metricsSrv.Shutdown(shutdownCtx)
		}
		if cerr := dispatcher.Close(shutdownCtx); cerr != nil {
			log.Warn().Err(cerr).Msg("audit queue not fully drained")
		}
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}

	if rdb != nil {
		_ = rdb.Close()
	}
	if err := dbpkg.Close(db); err != nil {
		log.Warn().Err(err).Msg("close database")
	}
}

func serve(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
