package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"promogen/internal/captions"
	"promogen/internal/contextutil"
)

// SimilarHandler handles similarity search queries against the product
// index.
type SimilarHandler struct {
	service *captions.Service
}

// NewSimilarHandler creates a new SimilarHandler.
func NewSimilarHandler(service *captions.Service) *SimilarHandler {
	return &SimilarHandler{service: service}
}

// SimilarResult is one similarity match.
type SimilarResult struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
	Score    float32        `json:"score"`
}

// SimilarResponse represents the response of a similarity query.
type SimilarResponse struct {
	Results []SimilarResult `json:"results"`
}

// ServeHTTP answers GET /api/similar?q=...&k=... with the nearest indexed
// entries.
func (h *SimilarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "q parameter is required")
		return
	}

	k := 0
	if rawK := r.URL.Query().Get("k"); rawK != "" {
		parsed, err := strconv.Atoi(rawK)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "k must be a positive integer")
			return
		}
		k = parsed
	}

	results, err := h.service.SearchSimilar(ctx, query, k)
	if err != nil {
		logger.ErrorContext(ctx, "similarity search failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Similarity search failed")
		return
	}

	resp := SimilarResponse{Results: make([]SimilarResult, 0, len(results))}
	for _, res := range results {
		resp.Results = append(resp.Results, SimilarResult{
			Content:  res.Content,
			Metadata: res.Meta,
			Score:    res.Score,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
