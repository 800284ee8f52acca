// Package storage names, signs and deletes photo objects in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mapbook/config"
	"mapbook/internal/domain/service"
	"mapbook/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const (
	defaultBucketURL   = "mem://"
	firebaseStorageURL = "https://firebasestorage.googleapis.com/v0/b/"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type bucketStorage struct {
	bucket         *blob.Bucket
	publicBaseURL  string
	firebaseBucket string
}

// New opens the bucket named by storage.bucketUrl and closes it on shutdown.
func New(params Params) (service.BlobStorage, error) {
	bucketURL := params.Config.Storage.BucketURL
	if bucketURL == "" {
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	var firebaseBucket string
	if params.Config.Firebase != nil {
		firebaseBucket = params.Config.Firebase.StorageBucket
	}

	storage := NewBucketStorage(bucket, params.Config.Storage.PublicBaseURL, firebaseBucket)
	params.Logger.Info("Opened photo bucket", slog.String("bucket", bucketURL))

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// NewBucketStorage wraps an open bucket. Download URLs use publicBaseURL when set,
// else the Firebase Storage endpoint of firebaseBucket.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL, firebaseBucket string) service.BlobStorage {
	return &bucketStorage{
		bucket:         bucket,
		publicBaseURL:  strings.TrimRight(publicBaseURL, "/"),
		firebaseBucket: firebaseBucket,
	}
}

func (s *bucketStorage) PublicURL(key string) string {
	switch {
	case s.publicBaseURL != "":
		return s.publicBaseURL + "/" + escapeKey(key)
	case s.firebaseBucket != "":
		return firebaseStorageURL + s.firebaseBucket + "/o/" + url.PathEscape(key) + "?alt=media"
	default:
		return key
	}
}

func (s *bucketStorage) KeyFromURL(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}

	if s.publicBaseURL != "" && strings.HasPrefix(rawURL, s.publicBaseURL+"/") {
		return unescapeKey(strings.TrimPrefix(rawURL, s.publicBaseURL+"/"))
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	switch {
	case u.Scheme == "gs":
		return strings.TrimPrefix(u.Path, "/"), u.Path != "" && u.Path != "/"
	case u.Host == "firebasestorage.googleapis.com":
		_, escaped, found := strings.Cut(u.EscapedPath(), "/o/")
		if !found {
			return "", false
		}

		return unescapeKey(escaped)
	default:
		return "", false
	}
}

func (s *bucketStorage) SignedUploadURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	signed, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Expiry:      expiry,
		Method:      http.MethodPut,
		ContentType: contentType,
	})
	if err != nil {
		if gcerrors.Code(err) == gcerrors.Unimplemented {
			return "", service.ErrSigningUnsupported
		}

		return "", errors.Wrapf(err, "failed to sign upload URL for %s", key)
	}

	return signed, nil
}

func (s *bucketStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

func (s *bucketStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}

func unescapeKey(escaped string) (string, bool) {
	escaped, _, _ = strings.Cut(escaped, "?")

	key, err := url.PathUnescape(escaped)
	if err != nil || key == "" {
		return "", false
	}

	return key, true
}
