package imagestore

import (
	"context"
	"errors"
)

var ErrImageNotFound = errors.New("image not found")

// Store persists item photos by an opaque storage key. Callers are expected
// to have validated the bytes before saving.
type Store interface {
	Save(ctx context.Context, prefix, ext string, data []byte) (storageKey string, err error)
	Get(ctx context.Context, storageKey string) (data []byte, contentType string, err error)
	Delete(ctx context.Context, storageKey string) error
}
