// Package redis stores the document in one Redis hash.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"simorgh/internal/domain/holding"
)

const (
	fieldDocument  = "document"
	fieldUpdatedAt = "updated_at"
)

var _ holding.Storage = (*Storage)(nil)

// hashClient is the part of *goredis.Client the storage uses.
type hashClient interface {
	HGet(ctx context.Context, key, field string) *goredis.StringCmd
	HSet(ctx context.Context, key string, values ...any) *goredis.IntCmd
}

// Storage is a Redis-backed holding.Storage.
type Storage struct {
	client hashClient
	key    string
	now    func() time.Time
}

// New creates a storage that keeps the document under key.
func New(client *goredis.Client, key string) *Storage {
	return newStorage(client, key)
}

func newStorage(client hashClient, key string) *Storage {
	return &Storage{client: client, key: key, now: time.Now}
}

// Connect parses url, connects and pings the server.
func Connect(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Read implements holding.Storage.
func (s *Storage) Read(ctx context.Context) (*holding.Snapshot, error) {
	raw, err := s.client.HGet(ctx, s.key, fieldDocument).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, holding.ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("redis HGET %s: %w", s.key, err)
	}

	var snap holding.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &snap, nil
}

// Write implements holding.Storage.
func (s *Storage) Write(ctx context.Context, snap holding.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	updatedAt := strconv.FormatInt(s.now().UTC().Unix(), 10)
	if err := s.client.HSet(ctx, s.key, fieldDocument, raw, fieldUpdatedAt, updatedAt).Err(); err != nil {
		return fmt.Errorf("redis HSET %s: %w", s.key, err)
	}
	return nil
}
