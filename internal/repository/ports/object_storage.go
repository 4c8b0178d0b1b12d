package ports

import (
	"context"
	"io"
)

// ObjectStorage stores binary image content and returns a durable URL. The
// rest of the system treats the returned URL as an opaque string.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error)
}
