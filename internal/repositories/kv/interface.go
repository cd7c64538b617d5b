package kv

import (
	"context"

	"github.com/dmitrijs2005/studyhub/internal/dbx"
)

// Repository stores opaque values under string keys.
type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Clear removes every key.
	Clear(ctx context.Context) error
}

// Factory binds a Repository implementation to a connection or transaction.
type Factory func(db dbx.DBTX) Repository
