package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"promogen/internal/blob"
	blob_mocks "promogen/internal/blob/mocks"
	docstore_mocks "promogen/internal/docstore/mocks"
	"promogen/internal/indexer"
	"promogen/internal/llm"
	"promogen/internal/product"
	vectorstore_mocks "promogen/internal/vectorstore/mocks"
)

func newIndexRouter(handler *IndexHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/index", handler.IndexAll)
	r.Post("/api/index/{productID}", handler.IndexProduct)
	return r
}

func newIndexPipeline(ctrl *gomock.Controller, blobStore *blob_mocks.MockStore) *indexer.Pipeline {
	return indexer.NewPipeline(
		blobStore,
		product.NewExtractor(llm.NewClient("http://localhost:0", "k", "vision")),
		llm.NewEmbeddingsClient("http://localhost:0", "k", "embed", 4),
		vectorstore_mocks.NewMockVectorStore(ctrl),
		docstore_mocks.NewMockCrossRefStore(ctrl),
		"insta_posts",
		"test-bucket",
		"insta_posts/",
		2,
	)
}

func TestIndexHandler_IndexProduct_MissingAssets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blobStore := blob_mocks.NewMockStore(ctrl)
	blobStore.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, blob.ErrNotFound).Times(2)

	router := newIndexRouter(NewIndexHandler(newIndexPipeline(ctrl, blobStore)))

	req := httptest.NewRequest(http.MethodPost, "/api/index/42", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("index product status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestIndexHandler_IndexAll_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blobStore := blob_mocks.NewMockStore(ctrl)
	// The background run may or may not reach the listing before the test
	// exits; fail it fast either way.
	blobStore.EXPECT().
		ListPrefixes(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("bucket unreachable")).
		AnyTimes()

	router := newIndexRouter(NewIndexHandler(newIndexPipeline(ctrl, blobStore)))

	req := httptest.NewRequest(http.MethodPost, "/api/index", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Errorf("index all status = %v, want %v", w.Code, http.StatusAccepted)
	}
}
