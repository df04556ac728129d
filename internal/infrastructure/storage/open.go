// Package storage selects and opens the document storage driver named by configuration.
package storage

import (
	"context"
	"fmt"
	"net/http"

	"simorgh/internal/config"
	"simorgh/internal/domain/holding"
	"simorgh/internal/infrastructure/storage/file"
	"simorgh/internal/infrastructure/storage/memory"
	"simorgh/internal/infrastructure/storage/postgres"
	"simorgh/internal/infrastructure/storage/redis"
	"simorgh/internal/infrastructure/storage/remote"
	"simorgh/pkg/logger"
)

// HistoryReader lists saved revisions. Only the postgres driver keeps history.
type HistoryReader interface {
	History(ctx context.Context, limit uint64) ([]postgres.Revision, error)
}

// Backend is an opened storage driver.
type Backend struct {
	Driver  string
	Storage holding.Storage
	// History is nil when the driver keeps no revisions.
	History HistoryReader

	closers []func()
}

// Close releases connections held by the driver.
func (b *Backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
	b.closers = nil
}

// Open connects the driver selected in opts. Every call through the returned storage
// is bounded by opts.Timeout.
func Open(ctx context.Context, opts config.StorageOptions, log *logger.Logger) (*Backend, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}

	b := &Backend{Driver: opts.Driver}
	var s holding.Storage

	switch opts.Driver {
	case config.DriverMemory:
		s = memory.New()

	case config.DriverFile:
		s = file.New(opts.FilePath)

	case config.DriverPostgres:
		repo, err := openPostgres(ctx, opts, b)
		if err != nil {
			b.Close()
			return nil, err
		}
		s = repo
		b.History = repo

	case config.DriverRedis:
		connectCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
		client, err := redis.Connect(connectCtx, opts.RedisURL)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { _ = client.Close() })
		s = redis.New(client, opts.RedisKey)

	case config.DriverRemote:
		s = remote.New(opts.RemoteURL, &http.Client{Timeout: opts.Timeout})
	}

	b.Storage = WithTimeout(s, opts.Timeout)
	log.WithContext(ctx).Infow("storage opened", "driver", opts.Driver)
	return b, nil
}

func openPostgres(ctx context.Context, opts config.StorageOptions, b *Backend) (*postgres.DocumentRepo, error) {
	poolCfg := postgres.DefaultPoolConfig(opts.PostgresDSN)
	if opts.PostgresMaxConns > 0 {
		poolCfg.MaxConns = opts.PostgresMaxConns
	}

	connectCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	b.closers = append(b.closers, pool.Close)

	if err := postgres.EnsureSchema(connectCtx, pool); err != nil {
		return nil, err
	}
	pool.LogStats(ctx)

	codec, err := postgres.NewHistoryCodec(0)
	if err != nil {
		return nil, err
	}
	return postgres.NewDocumentRepo(postgres.NewTxManager(pool), codec, opts.HistoryLimit), nil
}
