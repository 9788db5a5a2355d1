package captions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"promogen/internal/blob"
	"promogen/internal/contextutil"
	"promogen/internal/docstore"
	"promogen/internal/llm"
	"promogen/internal/product"
	"promogen/internal/storage"
	"promogen/internal/vectorstore"
)

// ErrCampaignNotFound is returned when no campaign record exists for the
// requested client and product pair.
var ErrCampaignNotFound = errors.New("captions: no campaign for client and product")

// Service runs the single-product generation flow: load the campaign
// parameters and assets, retrieve similar indexed content, generate the
// multi-day captions, and store the result under the campaign id.
type Service struct {
	fetcher      *product.Fetcher
	extractor    *product.Extractor
	embedder     *llm.EmbeddingsClient
	vectorStore  vectorstore.VectorStore
	campaigns    storage.CampaignStore
	contents     docstore.ContentStore
	generator    *Generator
	collection   string
	uploadPrefix string
	retrievalK   int
}

// NewService creates a new caption Service. k <= 0 selects the default of 2
// nearest neighbors.
func NewService(
	blobs blob.Store,
	extractor *product.Extractor,
	embedder *llm.EmbeddingsClient,
	vectorStore vectorstore.VectorStore,
	campaigns storage.CampaignStore,
	contents docstore.ContentStore,
	generator *Generator,
	collection string,
	uploadPrefix string,
	retrievalK int,
) *Service {
	if retrievalK <= 0 {
		retrievalK = 2
	}
	return &Service{
		fetcher:      product.NewFetcher(blobs),
		extractor:    extractor,
		embedder:     embedder,
		vectorStore:  vectorStore,
		campaigns:    campaigns,
		contents:     contents,
		generator:    generator,
		collection:   collection,
		uploadPrefix: uploadPrefix,
		retrievalK:   retrievalK,
	}
}

// GenerateMarketingCaptions generates and stores the caption sequence for
// one client-uploaded product. Any failure short-circuits before the
// content write; the stored document is always complete.
func (s *Service) GenerateMarketingCaptions(ctx context.Context, clientID, productID string) (*docstore.CampaignContent, error) {
	logger := contextutil.LoggerFromContext(ctx)

	record, err := s.campaigns.GetByClientAndProduct(ctx, clientID, productID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: client %s product %s", ErrCampaignNotFound, clientID, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign record: %w", err)
	}

	// Client uploads live under {uploadPrefix}{clientID}/{productID}/.
	basePrefix := s.uploadPrefix + clientID + "/"
	asset, err := s.fetcher.Fetch(ctx, basePrefix, productID)
	if err != nil {
		return nil, err
	}

	features := s.extractor.ExtractFeatures(ctx, asset.Image)
	combined := product.BuildCombinedText(features, asset.Description)

	searchContext, err := s.retrieveContext(ctx, combined)
	if err != nil {
		return nil, err
	}

	days, err := s.generator.Generate(ctx, combined, searchContext, record.CampaignType, record.TargetDemographic, record.LengthDays)
	if err != nil {
		return nil, err
	}

	// Generation can take a while; re-resolve the campaign id right before
	// the write so the document lands under the current record.
	record, err = s.campaigns.GetByClientAndProduct(ctx, clientID, productID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: client %s product %s", ErrCampaignNotFound, clientID, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reload campaign record: %w", err)
	}

	content := &docstore.CampaignContent{
		CampaignID: record.CampaignID,
		ClientID:   clientID,
		ProductID:  productID,
		Days:       days,
	}
	if err := s.contents.Put(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to store campaign content: %w", err)
	}

	logger.InfoContext(ctx, "generated marketing captions",
		"client_id", clientID,
		"product_id", productID,
		"campaign_id", record.CampaignID,
		"days", len(days),
	)
	return content, nil
}

// retrieveContext embeds the query and fetches the nearest indexed entries
// from the product collection. Zero matches is a valid, empty context.
func (s *Service) retrieveContext(ctx context.Context, query string) (string, error) {
	embeddings, err := s.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return "", fmt.Errorf("failed to embed retrieval query: %w", err)
	}
	if len(embeddings) == 0 {
		return "", fmt.Errorf("no embedding returned for retrieval query")
	}

	results, err := s.vectorStore.Search(ctx, s.collection, embeddings[0], s.retrievalK, map[string]any{"source": s.collection})
	if err != nil {
		return "", fmt.Errorf("similarity search failed: %w", err)
	}

	parts := make([]string, 0, len(results))
	for _, res := range results {
		parts = append(parts, res.Content)
	}
	return strings.Join(parts, "\n\n"), nil
}

// SearchSimilar embeds free text and returns its nearest indexed entries.
func (s *Service) SearchSimilar(ctx context.Context, query string, k int) ([]vectorstore.SearchResult, error) {
	if k <= 0 {
		k = s.retrievalK
	}
	embeddings, err := s.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned for query")
	}
	results, err := s.vectorStore.Search(ctx, s.collection, embeddings[0], k, map[string]any{"source": s.collection})
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}
	return results, nil
}
