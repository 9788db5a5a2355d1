package product

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	"promogen/internal/contextutil"
	"promogen/internal/llm"
)

// FeatureFailure is the sentinel returned when feature extraction fails.
// Callers treat it as a soft failure: log and continue, never abort a batch.
const FeatureFailure = "Error in generating image features"

// featureInstruction is the fixed instruction given to the vision model.
// It forbids brand and product names so the extracted features stay
// visually grounded and reusable across campaigns.
const featureInstruction = "Generate a list of features separated by commas of the products from this photo. " +
	"Generate 10 prominent features from this image about whatever product it focuses on. " +
	"Generate just a paragraph of words separated by commas. " +
	"The features should not contain names of any brand or product. It can contain chemical names, " +
	"colour, other visually identifiable features."

// Extractor derives a short natural-language feature description from a
// product image via a vision-capable generative model.
type Extractor struct {
	client    *llm.Client
	maxTokens int
}

// NewExtractor creates a new Extractor backed by the given vision-capable
// chat client.
func NewExtractor(client *llm.Client) *Extractor {
	return &Extractor{client: client, maxTokens: 4096}
}

// ExtractFeatures describes the visually salient features of the image as a
// comma-separated paragraph. On any model error or empty response it returns
// the FeatureFailure sentinel instead of an error; identical images are
// re-described on every call (no caching).
func (e *Extractor) ExtractFeatures(ctx context.Context, img image.Image) string {
	logger := contextutil.LoggerFromContext(ctx)

	encoded, err := encodeImagePNG(img)
	if err != nil {
		logger.ErrorContext(ctx, "failed to encode image for feature extraction", "error", err)
		return FeatureFailure
	}

	messages := []llm.ChatMessage{
		{Role: "assistant", Content: featureInstruction},
		{Role: "user", Content: []llm.ContentPart{
			{Type: "text", Text: "Describe the contents of this image."},
			{Type: "image_url", ImageURL: &llm.ImageURL{
				URL: fmt.Sprintf("data:image/png;base64,%s", encoded),
			}},
		}},
	}

	reply, err := e.client.ChatMultimodal(ctx, messages, llm.ChatParams{MaxTokens: e.maxTokens})
	if err != nil {
		logger.ErrorContext(ctx, "feature extraction call failed", "error", err)
		return FeatureFailure
	}

	features := strings.TrimSpace(reply)
	if features == "" {
		logger.ErrorContext(ctx, "feature extraction returned empty response")
		return FeatureFailure
	}

	return features
}

// encodeImagePNG re-encodes a decoded image as base64 PNG for the data URL.
func encodeImagePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
