package product

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"promogen/internal/blob"
	"promogen/internal/contextutil"
)

// ErrAssetMissing is returned when a required product asset is absent from
// blob storage or its image bytes cannot be decoded.
var ErrAssetMissing = errors.New("product: asset missing or undecodable")

// Asset holds the raw marketing assets of one product: a decoded image and
// a free-text description. Read-only; fetched fresh on every indexing or
// generation request.
type Asset struct {
	ProductID   string
	Image       image.Image
	ImageBytes  []byte
	Description string

	// Resolved blob keys the asset was loaded from.
	ImageKey       string
	DescriptionKey string
}

// imageFileNames are the accepted image object names under a product
// prefix, tried in order.
var imageFileNames = []string{"image.png", "image0.jpg"}

// DescriptionKey returns the blob key of a product's description file.
func DescriptionKey(basePrefix, productID string) string {
	return fmt.Sprintf("%s%s/description.txt", basePrefix, productID)
}

// ImageKey returns the blob key of a product's image file for the given
// file name.
func ImageKey(basePrefix, productID, fileName string) string {
	return fmt.Sprintf("%s%s/%s", basePrefix, productID, fileName)
}

// Fetcher loads product assets from blob storage.
type Fetcher struct {
	blobs blob.Store
}

// NewFetcher creates a new Fetcher.
func NewFetcher(blobs blob.Store) *Fetcher {
	return &Fetcher{blobs: blobs}
}

// Fetch loads and decodes the image and description for a product under the
// given base prefix. Returns ErrAssetMissing when either asset is absent or
// the image fails to decode.
func (f *Fetcher) Fetch(ctx context.Context, basePrefix, productID string) (*Asset, error) {
	logger := contextutil.LoggerFromContext(ctx)

	imageBytes, imageKey, err := f.fetchImage(ctx, basePrefix, productID)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		logger.WarnContext(ctx, "failed to decode product image", "product_id", productID, "error", err)
		return nil, fmt.Errorf("%w: image for %s does not decode: %v", ErrAssetMissing, productID, err)
	}

	descKey := DescriptionKey(basePrefix, productID)
	descBytes, err := f.blobs.Get(ctx, descKey)
	if errors.Is(err, blob.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrAssetMissing, descKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch description for %s: %w", productID, err)
	}

	return &Asset{
		ProductID:      productID,
		Image:          img,
		ImageBytes:     imageBytes,
		Description:    string(descBytes),
		ImageKey:       imageKey,
		DescriptionKey: descKey,
	}, nil
}

// fetchImage tries each accepted image file name in order and returns the
// bytes together with the key they were found under.
func (f *Fetcher) fetchImage(ctx context.Context, basePrefix, productID string) ([]byte, string, error) {
	var lastKey string
	for _, name := range imageFileNames {
		lastKey = ImageKey(basePrefix, productID, name)
		data, err := f.blobs.Get(ctx, lastKey)
		if errors.Is(err, blob.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to fetch image for %s: %w", productID, err)
		}
		return data, lastKey, nil
	}
	return nil, "", fmt.Errorf("%w: %s", ErrAssetMissing, lastKey)
}
