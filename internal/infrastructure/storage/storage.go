package storage

import (
	"context"
	"io"
)

// MediaStorage stores uploaded shop media. Upload returns a stable URL
// reference; Delete is the compensating action when a later intake step
// fails.
type MediaStorage interface {
	Upload(ctx context.Context, r io.Reader, name, folder string) (string, error)
	Delete(ctx context.Context, url string) error
}
