package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"promogen/internal/captions"
	"promogen/internal/contextutil"
	"promogen/internal/docstore"
	"promogen/internal/product"
	"promogen/internal/storage"
)

// CaptionsHandler handles caption generation and retrieval.
type CaptionsHandler struct {
	service   *captions.Service
	campaigns storage.CampaignStore
	contents  docstore.ContentStore
}

// NewCaptionsHandler creates a new CaptionsHandler.
func NewCaptionsHandler(service *captions.Service, campaigns storage.CampaignStore, contents docstore.ContentStore) *CaptionsHandler {
	return &CaptionsHandler{
		service:   service,
		campaigns: campaigns,
		contents:  contents,
	}
}

// Generate runs the caption generation flow for a client's product and
// returns the stored campaign content.
func (h *CaptionsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	clientID := strings.TrimSpace(chi.URLParam(r, "clientID"))
	productID := strings.TrimSpace(chi.URLParam(r, "productID"))
	if clientID == "" || productID == "" {
		writeError(w, http.StatusBadRequest, "client id and product id are required")
		return
	}

	content, err := h.service.GenerateMarketingCaptions(ctx, clientID, productID)
	switch {
	case errors.Is(err, captions.ErrCampaignNotFound):
		writeError(w, http.StatusNotFound, "No campaign found for the given client and product")
		return
	case errors.Is(err, product.ErrAssetMissing):
		writeError(w, http.StatusNotFound, "Image or description not found")
		return
	case err != nil:
		logger.ErrorContext(ctx, "caption generation failed", "client_id", clientID, "product_id", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Caption generation failed")
		return
	}

	writeJSON(w, http.StatusOK, content)
}

// ListForClient returns the stored campaign content for every campaign of
// a client. Campaigns whose content was never generated are skipped with a
// warning.
func (h *CaptionsHandler) ListForClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	clientID := strings.TrimSpace(chi.URLParam(r, "clientID"))
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "client id is required")
		return
	}

	records, err := h.campaigns.ListByClient(ctx, clientID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list campaigns", "client_id", clientID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list campaigns")
		return
	}
	if len(records) == 0 {
		writeError(w, http.StatusNotFound, "No campaigns found for the given client")
		return
	}

	all := make([]*docstore.CampaignContent, 0, len(records))
	for _, record := range records {
		content, err := h.contents.Get(ctx, record.CampaignID)
		if errors.Is(err, docstore.ErrNotFound) {
			logger.WarnContext(ctx, "no content for campaign", "campaign_id", record.CampaignID)
			continue
		}
		if err != nil {
			logger.ErrorContext(ctx, "failed to load campaign content", "campaign_id", record.CampaignID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to load campaign content")
			return
		}
		all = append(all, content)
	}

	if len(all) == 0 {
		writeError(w, http.StatusNotFound, "No captions found for the given client")
		return
	}
	writeJSON(w, http.StatusOK, all)
}
