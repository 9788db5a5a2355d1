package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"promogen/internal/blob"
	"promogen/internal/contextutil"
	"promogen/internal/product"
)

// AssetsHandler stores and serves the assets of catalog products under the
// shared asset prefix, where the indexing pipeline discovers them.
type AssetsHandler struct {
	blobs      blob.Store
	basePrefix string
}

// NewAssetsHandler creates a new AssetsHandler.
func NewAssetsHandler(blobs blob.Store, basePrefix string) *AssetsHandler {
	return &AssetsHandler{
		blobs:      blobs,
		basePrefix: basePrefix,
	}
}

// PutAssetsRequest represents the request payload for storing product
// assets. Image is base64-encoded; ImageFormat selects the stored object
// name ("png" by default, or "jpg").
type PutAssetsRequest struct {
	Image       string `json:"image"`
	ImageFormat string `json:"image_format,omitempty"`
	Description string `json:"description"`
}

// AssetsResponse represents a product's stored assets. Image is
// base64-encoded.
type AssetsResponse struct {
	Description string `json:"description"`
	Image       string `json:"image"`
}

// StatusResponse is a generic status payload.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Put stores the image and description for a product.
func (h *AssetsHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	productID := strings.TrimSpace(chi.URLParam(r, "productID"))
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product id is required")
		return
	}

	var req PutAssetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Image == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "Missing description file or image file")
		return
	}

	imageBytes, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		writeError(w, http.StatusBadRequest, "image must be base64-encoded")
		return
	}

	imageName := "image.png"
	contentType := "image/png"
	switch strings.ToLower(req.ImageFormat) {
	case "", "png":
	case "jpg", "jpeg":
		imageName = "image0.jpg"
		contentType = "image/jpeg"
	default:
		writeError(w, http.StatusBadRequest, "image_format must be png or jpg")
		return
	}

	imageKey := product.ImageKey(h.basePrefix, productID, imageName)
	if err := h.blobs.Put(ctx, imageKey, contentType, bytes.NewReader(imageBytes)); err != nil {
		logger.ErrorContext(ctx, "failed to store image", "product_id", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Error uploading files")
		return
	}

	descKey := product.DescriptionKey(h.basePrefix, productID)
	if err := h.blobs.Put(ctx, descKey, "text/plain", strings.NewReader(req.Description)); err != nil {
		logger.ErrorContext(ctx, "failed to store description", "product_id", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Error uploading files")
		return
	}

	logger.InfoContext(ctx, "stored product assets", "product_id", productID)
	writeJSON(w, http.StatusOK, StatusResponse{
		Status:  "success",
		Message: "Files uploaded successfully",
	})
}

// Get returns the stored image and description for a product.
func (h *AssetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	productID := strings.TrimSpace(chi.URLParam(r, "productID"))
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product id is required")
		return
	}

	fetcher := product.NewFetcher(h.blobs)
	asset, err := fetcher.Fetch(ctx, h.basePrefix, productID)
	if errors.Is(err, product.ErrAssetMissing) {
		writeError(w, http.StatusNotFound, "Image or description not found")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to fetch product assets", "product_id", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch product assets")
		return
	}

	writeJSON(w, http.StatusOK, AssetsResponse{
		Description: asset.Description,
		Image:       base64.StdEncoding.EncodeToString(asset.ImageBytes),
	})
}
