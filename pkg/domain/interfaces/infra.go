package interfaces

import (
	"context"
	"io"
)

// ObjectStorage reads archive objects from a cloud bucket
type ObjectStorage interface {
	NewReader(ctx context.Context, bucket, object string) (io.ReadCloser, error)
}
