// internal/core/ports/storage.go
package ports

import (
	"context"
	"io"
	"time"
)

// StoredObject describes an object kept in file storage
type StoredObject struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// FileStorage stores export and import files
type FileStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]StoredObject, error)
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
