package contracts

import (
	"context"
	"io"
	"time"
)

// MediaStorage caches upstream media objects in MinIO so repeated profile
// picture and blog image loads do not round-trip to the hospital host.
type MediaStorage interface {
	PutObject(ctx context.Context, objectName, contentType string, body io.Reader, size int64) error
	GetObject(ctx context.Context, objectName string) (io.ReadCloser, string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error)
}

type MediaUsecase interface {
	// FetchMedia serves a media path from the cache, pulling it from the
	// upstream media host on a miss.
	FetchMedia(ctx context.Context, mediaPath string) (io.ReadCloser, string, error)
}
