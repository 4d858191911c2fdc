// SPDX-License-Identifier: MIT
package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/thatcatcamp/colorstudio/internal/db"
)

// Options selects and configures a backend
type Options struct {
	Driver      string // "sqlite", "redis" or "memory"
	Path        string // SQLite file
	RedisAddr   string
	RedisPrefix string
}

// OpenBackend builds the backend named by opts.Driver. The returned close
// function releases its connections.
func OpenBackend(ctx context.Context, opts Options) (Backend, func() error, error) {
	switch opts.Driver {
	case "", "sqlite":
		database, err := db.Open(opts.Path)
		if err != nil {
			return nil, nil, err
		}
		return NewGormBackend(database), func() error { return db.Close(database) }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.RedisAddr, err)
		}
		return NewRedisBackend(client, WithPrefix(opts.RedisPrefix)), client.Close, nil

	case "memory":
		return NewMemoryBackend(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
