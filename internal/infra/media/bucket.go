// Package media stores uploaded gift images in a blob bucket. The bucket is
// addressed by URL, so dev runs on the local filesystem and prod on GCS
// without code changes.
package media

import (
	"context"
	"io"
	"strings"

	"cumple/config"
	"cumple/internal/domain/lifecycle"
	"cumple/internal/domain/service"
	"cumple/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registered bucket schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

type bucketStore struct {
	bucket    *blob.Bucket
	urlPrefix string
}

// New opens the configured bucket and returns it as a service.ImageStore.
func New(params Params) (service.ImageStore, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket URL must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &bucketStore{
		bucket:    bucket,
		urlPrefix: strings.TrimSuffix(cfg.URLPrefix, "/"),
	}, nil
}

// Save writes the image under the given key and returns its public URL.
func (s *bucketStore) Save(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, r); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write image to bucket")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish image write")
	}

	return s.urlPrefix + "/" + key, nil
}
