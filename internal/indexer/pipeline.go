package indexer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"promogen/internal/blob"
	"promogen/internal/contextutil"
	"promogen/internal/docstore"
	"promogen/internal/llm"
	"promogen/internal/product"
	"promogen/internal/vectorstore"
)

// DefaultWorkers is the default width of the batch indexing worker pool.
const DefaultWorkers = 5

// Pipeline orchestrates the indexing of product assets into the vector
// store, with a durable cross-reference record per product.
type Pipeline struct {
	blobs       blob.Store
	fetcher     *product.Fetcher
	extractor   *product.Extractor
	embedder    *llm.EmbeddingsClient
	vectorStore vectorstore.VectorStore
	crossRefs   docstore.CrossRefStore
	collection  string
	bucket      string
	basePrefix  string
	workers     int
	logger      *slog.Logger
}

// NewPipeline creates a new indexing pipeline. workers <= 0 selects
// DefaultWorkers.
func NewPipeline(
	blobs blob.Store,
	extractor *product.Extractor,
	embedder *llm.EmbeddingsClient,
	vectorStore vectorstore.VectorStore,
	crossRefs docstore.CrossRefStore,
	collection string,
	bucket string,
	basePrefix string,
	workers int,
) *Pipeline {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Pipeline{
		blobs:       blobs,
		fetcher:     product.NewFetcher(blobs),
		extractor:   extractor,
		embedder:    embedder,
		vectorStore: vectorStore,
		crossRefs:   crossRefs,
		collection:  collection,
		bucket:      bucket,
		basePrefix:  basePrefix,
		workers:     workers,
		logger:      slog.Default(),
	}
}

// IndexProduct indexes a single product: fetch assets, extract features,
// build combined text, upsert the vector entry, and write the
// cross-reference record. A feature-extraction failure is soft (the
// sentinel text is indexed); a missing or undecodable asset returns
// product.ErrAssetMissing so batch callers can skip the item.
func (p *Pipeline) IndexProduct(ctx context.Context, productID string) error {
	logger := contextutil.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "indexing product", "product_id", productID)

	asset, err := p.fetcher.Fetch(ctx, p.basePrefix, productID)
	if err != nil {
		return err
	}

	// Extraction failures index the sentinel text; the item is not dropped.
	features := p.extractor.ExtractFeatures(ctx, asset.Image)
	combined := product.BuildCombinedText(features, asset.Description)

	embeddings, err := p.embedder.EmbedTexts(ctx, []string{combined})
	if err != nil {
		return fmt.Errorf("failed to embed combined text for %s: %w", productID, err)
	}
	if len(embeddings) == 0 {
		return fmt.Errorf("no embedding returned for %s", productID)
	}

	// Product ids are rarely UUIDs, so the stored point id is the derived
	// one; the raw product id stays in the payload and the cross-reference.
	vectorID := vectorstore.DerivePointID(productID)
	point := vectorstore.Point{
		ID:   vectorID,
		Vec:  embeddings[0],
		Text: combined,
		Meta: map[string]any{
			"source":           p.collection,
			"product_id":       productID,
			"image_path":       fmt.Sprintf("gs://%s/%s", p.bucket, asset.ImageKey),
			"description_path": fmt.Sprintf("gs://%s/%s", p.bucket, asset.DescriptionKey),
		},
	}
	if err := p.vectorStore.Upsert(ctx, p.collection, []vectorstore.Point{point}); err != nil {
		return fmt.Errorf("failed to upsert vector entry for %s: %w", productID, err)
	}

	// The cross-reference campaign id is minted here, at indexing time. It
	// is distinct from any campaign id later created through the campaign
	// flow; the generation flow resolves the record-store id instead.
	campaignID := uuid.New().String()
	ref := &docstore.CrossRef{
		ProductID:  productID,
		VectorID:   vectorID,
		CampaignID: campaignID,
	}
	if err := p.crossRefs.Put(ctx, ref); err != nil {
		return fmt.Errorf("failed to write cross-reference for %s: %w", productID, err)
	}

	logger.InfoContext(ctx, "indexed product", "product_id", productID, "campaign_id", campaignID)
	return nil
}

// BatchResult summarizes one IndexAll run.
type BatchResult struct {
	Total   int
	Success int
	Skipped int
	Failed  int
}

// IndexAll lists every product under the base prefix and indexes each with
// a bounded worker pool. Per-item failures and skips are isolated and
// collected; the batch returns an error only when the initial listing
// fails or yields no products. The call returns after every submitted
// task has resolved.
func (p *Pipeline) IndexAll(ctx context.Context) (BatchResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	productIDs, err := p.blobs.ListPrefixes(ctx, p.basePrefix)
	if err != nil {
		return BatchResult{}, fmt.Errorf("failed to list products under %s: %w", p.basePrefix, err)
	}
	if len(productIDs) == 0 {
		return BatchResult{}, fmt.Errorf("no products found under %s", p.basePrefix)
	}

	logger.InfoContext(ctx, "starting batch indexing", "total_products", len(productIDs), "workers", p.workers)

	result := BatchResult{Total: len(productIDs)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for _, productID := range productIDs {
		g.Go(func() error {
			err := p.IndexProduct(gctx, productID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				result.Success++
			case errors.Is(err, product.ErrAssetMissing):
				result.Skipped++
				logger.WarnContext(gctx, "skipping product", "product_id", productID, "error", err)
			default:
				result.Failed++
				logger.ErrorContext(gctx, "failed to index product", "product_id", productID, "error", err)
			}
			// Item outcomes never cancel sibling tasks.
			return nil
		})
	}

	// errgroup tasks always return nil; Wait is the join barrier.
	_ = g.Wait()

	logger.InfoContext(ctx, "batch indexing completed",
		"total", result.Total,
		"success", result.Success,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)

	return result, nil
}
