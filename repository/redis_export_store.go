package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"logo-banner/models"
)

const exportKeyPrefix = "logo-banner:export:"

// RedisExportStore keeps exported banners in Redis so any replica can serve the download
type RedisExportStore struct {
	client *redis.Client
}

// NewRedisExportStore connects to the Redis instance at url (e.g. "redis://localhost:6379")
func NewRedisExportStore(ctx context.Context, url string) (*RedisExportStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisExportStore{client: client}, nil
}

// Ensure RedisExportStore implements ExportStoreInterface
var _ ExportStoreInterface = (*RedisExportStore)(nil)

func (s *RedisExportStore) Save(ctx context.Context, exportID string, png []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, exportKeyPrefix+exportID, png, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store export %s: %w", exportID, err)
	}
	return nil
}

func (s *RedisExportStore) Get(ctx context.Context, exportID string) ([]byte, error) {
	data, err := s.client.Get(ctx, exportKeyPrefix+exportID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, models.ErrExportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", exportID, err)
	}
	return data, nil
}

func (s *RedisExportStore) Close() error {
	return s.client.Close()
}
