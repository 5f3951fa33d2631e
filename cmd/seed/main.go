// Seed tool: loads the bundled restaurant dataset into the store and drops
// cached restaurant reads so the API serves the fresh rows.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/idanaslund/final-project-backend/internal/config"
	dbpkg "github.com/idanaslund/final-project-backend/internal/db"
	"github.com/idanaslund/final-project-backend/internal/infra/cache"
	"github.com/idanaslund/final-project-backend/internal/infra/repository"
	"github.com/idanaslund/final-project-backend/internal/observability"
	"github.com/idanaslund/final-project-backend/internal/seed"
)

func main() {
	var flush bool
	flag.BoolVar(&flush, "flush-cache", true, "drop cached restaurant reads when REDIS_URL is set")
	flag.Parse()

	cfg := config.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}
	defer dbpkg.Close(db)

	start := time.Now()
	n, err := seed.Run(ctx, repository.NewRestaurantGormRepository(db))
	if err != nil {
		log.Fatal().Err(err).Msg("seed restaurants")
	}
	log.Info().Int("restaurants", n).Dur("took", time.Since(start)).Msg("restaurants seeded")

	if !flush || cfg.RedisURL == "" {
		return
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid REDIS_URL")
	}
	rdb := redis.NewClient(opt)
	defer rdb.Close()

	if err := cache.Flush(ctx, rdb); err != nil {
		log.Error().Err(err).Msg("flush restaurant cache")
		return
	}
	log.Info().Msg("restaurant cache flushed")
}
