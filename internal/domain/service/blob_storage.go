package service

import (
	"context"
	"time"

	"mapbook/internal/errors"
)

// ErrSigningUnsupported is returned by buckets that cannot sign upload URLs, e.g. in-memory ones.
var ErrSigningUnsupported = errors.New("bucket does not support signed URLs")

// BlobStorage names, signs and removes photo objects. Image bytes never pass through the server.
type BlobStorage interface {
	// PublicURL returns the download URL of an object key.
	PublicURL(key string) string

	// KeyFromURL extracts the object key from a download URL produced by this bucket
	// or by the Firebase Storage download endpoint.
	KeyFromURL(rawURL string) (string, bool)

	// SignedUploadURL returns a URL the client can PUT the object to.
	// Returns ErrSigningUnsupported when the bucket cannot sign.
	SignedUploadURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)

	// Delete removes an object. A missing object is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the bucket.
	Close() error
}
