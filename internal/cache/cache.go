// Package cache is a small JSON read-through cache used for the settings
// lookup lists and the dashboard aggregates. Mutating calls invalidate keys
// explicitly; when no redis is configured the Noop implementation turns every
// operation into a miss.
package cache

import (
	"context"
	"time"
)

type Store interface {
	// Get unmarshals the cached value into dest and reports whether the key
	// was present.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Noop struct{}

func (Noop) Get(_ context.Context, _ string, _ interface{}) (bool, error) {
	return false, nil
}

func (Noop) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (Noop) Delete(_ context.Context, _ ...string) error {
	return nil
}
