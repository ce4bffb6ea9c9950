// Package export writes serial group documents to a gocloud.dev blob bucket.
package export

import (
	"context"
	"fmt"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"

	apperrors "github.com/allisson/serials/internal/errors"
)

// contentType is set on every exported object.
const contentType = "application/json"

// BlobExporter writes exported documents to a blob bucket.
type BlobExporter struct {
	bucket *blob.Bucket
}

// NewBlobExporter opens the export bucket. A non-empty bucketURL is opened
// through the gocloud URL mux (file://, mem:// and s3:// are registered).
// Otherwise dir is opened as a local directory, created if missing.
func NewBlobExporter(ctx context.Context, bucketURL, dir string) (*BlobExporter, error) {
	if bucketURL != "" {
		bucket, err := blob.OpenBucket(ctx, bucketURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open export bucket %q: %w", bucketURL, err)
		}
		return NewBlobExporterFromBucket(bucket), nil
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open export directory %q: %w", dir, err)
	}
	return NewBlobExporterFromBucket(bucket), nil
}

// NewBlobExporterFromBucket wraps an already opened bucket.
func NewBlobExporterFromBucket(bucket *blob.Bucket) *BlobExporter {
	return &BlobExporter{bucket: bucket}
}

// Write stores data under key, replacing any existing object.
func (e *BlobExporter) Write(ctx context.Context, key string, data []byte) error {
	err := e.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return apperrors.Wrapf(err, "failed to write %s", key)
	}
	return nil
}

// Close releases the bucket.
func (e *BlobExporter) Close() error {
	return e.bucket.Close()
}
