package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"promogen/internal/contextutil"
)

// GCSStore implements Store using Google Cloud Storage.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore creates a new GCS-backed blob store for the given bucket.
// Credentials are resolved from the environment (GOOGLE_APPLICATION_CREDENTIALS
// or ambient service-account identity).
func NewGCSStore(ctx context.Context, bucket string, opts ...option.ClientOption) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

// Get fetches the raw bytes of an object.
func (s *GCSStore) Get(ctx context.Context, key string) ([]byte, error) {
	logger := contextutil.LoggerFromContext(ctx)

	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		logger.ErrorContext(ctx, "failed to open object reader", "key", key, "error", err)
		return nil, fmt.Errorf("failed to open object %s: %w", key, err)
	}
	defer func() {
		_ = r.Close()
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read object", "key", key, "error", err)
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}

// Put uploads an object, overwriting any existing object at the key.
func (s *GCSStore) Put(ctx context.Context, key string, contentType string, r io.Reader) error {
	logger := contextutil.LoggerFromContext(ctx)

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		logger.ErrorContext(ctx, "failed to write object", "key", key, "error", err)
		return fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close writer for %s: %w", key, err)
	}

	logger.InfoContext(ctx, "uploaded object", "key", key)
	return nil
}

// ListPrefixes enumerates one level of directory-style prefixes under basePrefix.
func (s *GCSStore) ListPrefixes(ctx context.Context, basePrefix string) ([]string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{
		Prefix:    basePrefix,
		Delimiter: "/",
	})

	var ids []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.ErrorContext(ctx, "failed to list prefixes", "prefix", basePrefix, "error", err)
			return nil, fmt.Errorf("failed to list prefixes under %s: %w", basePrefix, err)
		}
		// Synthetic directory entries come back in attrs.Prefix; plain
		// objects directly under basePrefix are skipped.
		if attrs.Prefix == "" {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(attrs.Prefix, basePrefix), "/")
		if id != "" {
			ids = append(ids, id)
		}
	}

	logger.InfoContext(ctx, "listed product prefixes", "prefix", basePrefix, "count", len(ids))
	return ids, nil
}

// Close releases the underlying storage client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
