package docstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_stores.go -package=mocks promogen/internal/docstore CrossRefStore,ContentStore

import "context"

// CrossRefStore records, per product, the vector-index id and the campaign
// identifier generated at indexing time. Puts to the same product overwrite.
type CrossRefStore interface {
	Put(ctx context.Context, ref *CrossRef) error
	Get(ctx context.Context, productID string) (*CrossRef, error)
}

// ContentStore holds generated campaign content keyed by campaign id.
// Each Put is a full overwrite, not an append.
type ContentStore interface {
	Put(ctx context.Context, content *CampaignContent) error
	Get(ctx context.Context, campaignID string) (*CampaignContent, error)
}
