package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks promogen/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with its source text and metadata.
// Text is stored in the point payload so that queries can return the
// indexed content directly.
type Point struct {
	ID   string
	Vec  []float32
	Text string
	Meta map[string]any
}

// SearchResult represents a search result from vector search,
// ordered by descending similarity.
type SearchResult struct {
	PointID string
	Score   float32
	Content string
	Meta    map[string]any
}

// VectorStore defines the interface for vector storage operations.
type VectorStore interface {
	// Upsert inserts or updates points in the collection. Re-upserting an
	// existing point ID overwrites the prior entry and its metadata.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search performs a k-nearest-neighbor search with an optional
	// metadata filter (exact match per key).
	Search(ctx context.Context, collection string, query []float32, k int, filters map[string]any) ([]SearchResult, error)

	// Delete removes points by their IDs.
	Delete(ctx context.Context, collection string, ids []string) error
}
