package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Backend when a key has never been written
var ErrNotFound = errors.New("key not found")

// Backend is a durable key/value store holding raw payloads.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
