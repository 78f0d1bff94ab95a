package model

import (
	"context"
	"io"
	"time"
)

// Asset is an opened static file. Callers must close Body.
type Asset struct {
	Body         io.ReadCloser
	ContentType  string
	Size         int64
	LastModified time.Time
}

// AssetStorage reads static application assets.
// Open returns ErrNotFound when key does not exist.
type AssetStorage interface {
	Open(ctx context.Context, key string) (Asset, error)
}
