package kv

import (
	"context"
)

// Repository is the durable key-value slot the store persists into.
//
// Get returns (nil, nil) when the key is absent. Set replaces the whole value.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
