package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"promogen/internal/contextutil"
	"promogen/internal/indexer"
	"promogen/internal/product"
)

// IndexHandler handles HTTP requests for triggering indexing.
type IndexHandler struct {
	pipeline *indexer.Pipeline
}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler(pipeline *indexer.Pipeline) *IndexHandler {
	return &IndexHandler{pipeline: pipeline}
}

// IndexResponse represents the response from the batch index endpoint.
type IndexResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// IndexProductResponse represents the response after indexing one product.
type IndexProductResponse struct {
	Status    string `json:"status"`
	ProductID string `json:"product_id"`
}

// IndexAll triggers a full batch-indexing run in the background and
// returns immediately with an accepted status.
func (h *IndexHandler) IndexAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	logger.InfoContext(ctx, "batch indexing triggered via API")

	// Background context so the run outlives the HTTP request.
	go func() {
		indexCtx := context.Background()
		result, err := h.pipeline.IndexAll(indexCtx)
		if err != nil {
			logger.ErrorContext(indexCtx, "batch indexing failed", "error", err)
			return
		}
		logger.InfoContext(indexCtx, "batch indexing finished",
			"total", result.Total,
			"success", result.Success,
			"skipped", result.Skipped,
			"failed", result.Failed,
		)
	}()

	writeJSON(w, http.StatusAccepted, IndexResponse{
		Message: "Indexing started. Check server logs for progress.",
		Status:  "accepted",
	})
}

// IndexProduct indexes a single product synchronously.
func (h *IndexHandler) IndexProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	productID := strings.TrimSpace(chi.URLParam(r, "productID"))
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product id is required")
		return
	}

	err := h.pipeline.IndexProduct(ctx, productID)
	if errors.Is(err, product.ErrAssetMissing) {
		writeError(w, http.StatusNotFound, "Image or description not found")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to index product", "product_id", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to index product")
		return
	}

	writeJSON(w, http.StatusOK, IndexProductResponse{
		Status:    "success",
		ProductID: productID,
	})
}
