package blob

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_store.go -package=mocks promogen/internal/blob Store

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when a requested object does not exist.
var ErrNotFound = errors.New("blob: object not found")

// Store defines the interface for blob storage operations.
// Objects are addressed by hierarchical keys of the form
// "{basePrefix}{productID}/{fileType}".
type Store interface {
	// Get fetches the raw bytes of an object. Returns ErrNotFound if the
	// object does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put uploads an object, overwriting any existing object at the key.
	Put(ctx context.Context, key string, contentType string, r io.Reader) error

	// ListPrefixes enumerates one level of directory-style prefixes under
	// basePrefix, returning the path component between basePrefix and the
	// next separator (e.g. product IDs).
	ListPrefixes(ctx context.Context, basePrefix string) ([]string, error)
}
