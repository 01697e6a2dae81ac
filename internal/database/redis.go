package database

import (
	"context"
	"errors"
	"fmt"

	"stroymarket/internal/metrics"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// keyPrefix отделяет слайсы состояния от прочих ключей Redis.
const keyPrefix = "state:"

// redisStorage хранит слайсы состояния в Redis. Альтернатива Postgres
// для развертываний без реляционной БД.
type redisStorage struct {
	client *redis.Client
	tracer trace.Tracer
}

// NewRedis подключается к Redis и возвращает реализацию Storage.
func NewRedis(addr string, db int) (Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("не удалось подключиться к Redis: %w", err)
	}

	return &redisStorage{
		client: client,
		tracer: otel.Tracer("redis-storage"),
	}, nil
}

// SaveSlice пишет значение слайса без TTL (last write wins).
func (s *redisStorage) SaveSlice(ctx context.Context, key string, value []byte) error {
	ctx, span := s.tracer.Start(ctx, "Redis.SaveSlice")
	defer span.End()

	if err := s.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		metrics.StorageErrors.WithLabelValues("save_slice").Inc()
		return fmt.Errorf("ошибка сохранения слайса %q: %w", key, err)
	}
	return nil
}

// LoadSlice читает значение слайса по ключу.
func (s *redisStorage) LoadSlice(ctx context.Context, key string) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "Redis.LoadSlice")
	defer span.End()

	value, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSliceNotFound
		}
		metrics.StorageErrors.WithLabelValues("load_slice").Inc()
		return nil, fmt.Errorf("ошибка чтения слайса %q: %w", key, err)
	}
	return value, nil
}

// Close закрывает соединение с Redis.
func (s *redisStorage) Close() error {
	return s.client.Close()
}
