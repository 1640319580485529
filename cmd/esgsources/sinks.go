package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/user/esg-source-catalog/internal/adapter/postgres"
	redis_adapter "github.com/user/esg-source-catalog/internal/adapter/redis"
	"github.com/user/esg-source-catalog/internal/repository"
	"github.com/user/esg-source-catalog/internal/usecase"
	"github.com/user/esg-source-catalog/pkg/config"
	"github.com/user/esg-source-catalog/pkg/metrics"
)

// connectSinks opens the optional sinks that are configured. A sink that
// cannot be reached is logged and left out so the file update still runs.
func connectSinks(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log *zap.Logger) ([]usecase.Sink, func()) {
	var sinks []usecase.Sink
	var closers []func()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.SinkTimeout())
	defer cancel()

	// PostgreSQL
	if cfg.PostgresURL != "" {
		pool, err := connectPostgres(connectCtx, cfg.PostgresURL)
		if err != nil {
			m.IncSinkErrors("postgres")
			log.Warn("Postgres mirror disabled", zap.Error(err))
		} else {
			closers = append(closers, pool.Close)
			sinks = append(sinks, usecase.NewMirrorSink("postgres", postgres.NewSourceRepo(pool), log))
			log.Info("PostgreSQL connection pool established")
		}
	}

	// Redis
	if cfg.RedisAddr != "" {
		rdb, err := connectRedis(connectCtx, cfg)
		if err != nil {
			m.IncSinkErrors("crawl_queue")
			log.Warn("Crawl queue seeding disabled", zap.Error(err))
		} else {
			closers = append(closers, func() { _ = rdb.Close() })
			seeder := usecase.NewQueueSeeder(
				redis_adapter.NewQueueRepo(rdb, cfg.CrawlQueueKey),
				redis_adapter.NewSeedMarkerRepo(rdb),
				cfg.SeedDedupWindow(),
				m,
				log,
			)
			sinks = append(sinks, seeder)
			log.Info("Redis connection established", zap.String("queue", cfg.CrawlQueueKey))
		}
	}

	return sinks, func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}
}

func connectPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("%w: postgres: %v", repository.ErrSinkUnavailable, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: postgres: %v", repository.ErrSinkUnavailable, err)
	}
	if err := postgres.NewSourceRepo(pool).EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create esg_sources table: %w", err)
	}
	return pool, nil
}

func connectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: redis: %v", repository.ErrSinkUnavailable, err)
	}
	return rdb, nil
}
