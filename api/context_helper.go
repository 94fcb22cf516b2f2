package api

import (
	"context"
	"time"
)

// StoreTimeout bounds a single write-through to the store
const StoreTimeout = 5 * time.Second

// WithStoreTimeout creates a context with the store timeout
func WithStoreTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, StoreTimeout)
}
