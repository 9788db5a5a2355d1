package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	blob_mocks "promogen/internal/blob/mocks"
	"promogen/internal/captions"
	docstore_mocks "promogen/internal/docstore/mocks"
	"promogen/internal/llm"
	"promogen/internal/product"
	storage_mocks "promogen/internal/storage/mocks"
	"promogen/internal/vectorstore"
	vectorstore_mocks "promogen/internal/vectorstore/mocks"
)

func TestSimilarHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := llm.EmbeddingsResponse{
			Data: []llm.EmbeddingData{{Embedding: []float64{0.1, 0.2, 0.3, 0.4}}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(embedServer.Close)

	vectorStore := vectorstore_mocks.NewMockVectorStore(ctrl)
	service := captions.NewService(
		blob_mocks.NewMockStore(ctrl),
		product.NewExtractor(llm.NewClient("http://localhost:0", "k", "vision")),
		llm.NewEmbeddingsClient(embedServer.URL, "k", "embed", 4),
		vectorStore,
		storage_mocks.NewMockCampaignStore(ctrl),
		docstore_mocks.NewMockContentStore(ctrl),
		captions.NewGenerator(llm.NewClient("http://localhost:0", "k", "chat")),
		"insta_posts",
		"client_uploads/",
		2,
	)
	handler := NewSimilarHandler(service)

	vectorStore.EXPECT().
		Search(gomock.Any(), "insta_posts", gomock.Any(), 3, map[string]any{"source": "insta_posts"}).
		Return([]vectorstore.SearchResult{
			{PointID: "42", Score: 0.91, Content: "Features: matte\nDescription: lip balm", Meta: map[string]any{"product_id": "42"}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/similar?q=pink+lip+balm&k=3", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("similar status = %v, body = %s", w.Code, w.Body.String())
	}

	var resp SimilarResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(resp.Results))
	}
	if resp.Results[0].Content != "Features: matte\nDescription: lip balm" {
		t.Errorf("result content = %q", resp.Results[0].Content)
	}
	if resp.Results[0].Metadata["product_id"] != "42" {
		t.Errorf("result metadata = %v", resp.Results[0].Metadata)
	}
}

func TestSimilarHandler_ServeHTTP_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "missing query", url: "/api/similar"},
		{name: "non-numeric k", url: "/api/similar?q=x&k=two"},
		{name: "negative k", url: "/api/similar?q=x&k=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSimilarHandler(nil)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("similar status = %v, want %v", w.Code, http.StatusBadRequest)
			}
		})
	}
}
