package storage

import (
	"context"
	"fmt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type RedisStorage struct {
	Connection *redis.Client

	// embedded is set when the storage runs its own in-process server.
	embedded *miniredis.Miniredis
}

// NewRedisStorage connects to addr and pings it once before returning.
func NewRedisStorage(ctx context.Context, addr string) (*RedisStorage, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	_, err := conn.Ping(ctx).Result()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStorage{Connection: conn}, nil
}

// NewEmbeddedStorage starts an in-process Redis server on a loopback port and connects to it.
// Keys live as long as the process; expirations are stored but never fire on their own.
func NewEmbeddedStorage(ctx context.Context) (*RedisStorage, error) {
	server, err := miniredis.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start embedded Redis: %w", err)
	}

	redisStorage, err := NewRedisStorage(ctx, server.Addr())
	if err != nil {
		server.Close()
		return nil, err
	}

	redisStorage.embedded = server

	return redisStorage, nil
}

func (that *RedisStorage) Close() error {
	if that.embedded != nil {
		defer that.embedded.Close()
	}

	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}
	return nil
}
