// Package upload delegates a finished workbook to Cloud Storage.
package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"google.golang.org/api/option"
	gcs "google.golang.org/api/storage/v1"
)

// Result describes the outcome of an upload attempt.
type Result struct {
	// Skipped is true when no bucket was configured; skipping is not an error.
	Skipped bool
	Bucket  string
	Object  string
}

// Uploader stores a local file in an object-storage bucket.
type Uploader interface {
	Upload(ctx context.Context, localPath, bucket, object string) (Result, error)
}

// GCSUploader uploads files through the Cloud Storage JSON API.
type GCSUploader struct {
	service *gcs.Service
}

// NewGCSUploader builds an uploader from the given client options.
func NewGCSUploader(ctx context.Context, opts ...option.ClientOption) (*GCSUploader, error) {
	service, err := gcs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSUploader{service: service}, nil
}

// Upload stores localPath as object in bucket. An empty bucket means upload
// is not configured: the call is a no-op reported as skipped. An empty
// object defaults to the file's base name. Upload failures are returned to
// the caller, who treats them as non-fatal; the local file remains available.
func (u *GCSUploader) Upload(ctx context.Context, localPath, bucket, object string) (Result, error) {
	if bucket == "" {
		return Result{Skipped: true}, nil
	}
	if object == "" {
		object = filepath.Base(localPath)
	}

	f, err := os.Open(localPath) // #nosec G304 -- path is the file this run wrote
	if err != nil {
		return Result{Bucket: bucket, Object: object}, fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer func() { _ = f.Close() }()

	obj := &gcs.Object{Name: object}
	if _, err := u.service.Objects.Insert(bucket, obj).Media(f).Context(ctx).Do(); err != nil {
		return Result{Bucket: bucket, Object: object},
			fmt.Errorf("failed to upload %s to gs://%s/%s: %w", localPath, bucket, object, err)
	}
	return Result{Bucket: bucket, Object: object}, nil
}
