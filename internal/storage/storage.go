package storage

import "context"

// ImageStore persists uploaded profile images. The local filesystem is the
// default backend; S3 is used when a bucket is configured.
type ImageStore interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
}
