package service

import (
	"context"
	"io"
)

// ImageStore persists uploaded gift images in a blob bucket and returns the
// public URL to store on the registry item.
type ImageStore interface {
	// Save writes the image under the given key and returns its public URL.
	Save(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}
