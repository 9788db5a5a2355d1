package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promogen/internal/contextutil"
	"promogen/internal/storage"
)

// CampaignHandler handles campaign record creation.
type CampaignHandler struct {
	campaigns storage.CampaignStore
}

// NewCampaignHandler creates a new CampaignHandler.
func NewCampaignHandler(campaigns storage.CampaignStore) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

// CreateCampaignRequest represents the request payload for creating a
// campaign record.
type CreateCampaignRequest struct {
	CampaignType      string `json:"campaign_type"`
	Length            int    `json:"length"`
	TargetDemographic string `json:"target_demographic"`
}

// CreateCampaignResponse represents the response after creating a
// campaign record.
type CreateCampaignResponse struct {
	Status     string `json:"status"`
	CampaignID string `json:"campaign_id"`
}

// ServeHTTP creates a campaign record for a client and product pair,
// minting a fresh campaign id.
func (h *CampaignHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	clientID := strings.TrimSpace(chi.URLParam(r, "clientID"))
	productID := strings.TrimSpace(chi.URLParam(r, "productID"))
	if clientID == "" || productID == "" {
		writeError(w, http.StatusBadRequest, "client id and product id are required")
		return
	}

	var req CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CampaignType == "" || req.TargetDemographic == "" || req.Length <= 0 {
		writeError(w, http.StatusBadRequest, "campaign_type, length and target_demographic are required")
		return
	}

	record := &storage.CampaignRecord{
		ClientID:          clientID,
		ProductID:         productID,
		CampaignID:        uuid.New().String(),
		CampaignType:      req.CampaignType,
		LengthDays:        req.Length,
		TargetDemographic: req.TargetDemographic,
	}
	if err := h.campaigns.Insert(ctx, record); err != nil {
		logger.ErrorContext(ctx, "failed to insert campaign record", "client_id", clientID, "product_id", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Campaign generation failed")
		return
	}

	logger.InfoContext(ctx, "created campaign record",
		"client_id", clientID,
		"product_id", productID,
		"campaign_id", record.CampaignID,
	)
	writeJSON(w, http.StatusOK, CreateCampaignResponse{
		Status:     "success",
		CampaignID: record.CampaignID,
	})
}
