package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"promogen/internal/blob"
	"promogen/internal/captions"
	"promogen/internal/docstore"
	"promogen/internal/handlers"
	"promogen/internal/indexer"
	"promogen/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Blobs           blob.Store
	Pipeline        *indexer.Pipeline
	CaptionsService *captions.Service
	Campaigns       storage.CampaignStore
	Contents        docstore.ContentStore
	VectorStore     handlers.CollectionChecker
	DocStorePinger  handlers.Pinger
	CollectionName  string
	AssetBasePrefix string
	UploadPrefix    string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	uploadHandler := handlers.NewUploadHandler(deps.Blobs, deps.UploadPrefix)
	assetsHandler := handlers.NewAssetsHandler(deps.Blobs, deps.AssetBasePrefix)
	indexHandler := handlers.NewIndexHandler(deps.Pipeline)
	similarHandler := handlers.NewSimilarHandler(deps.CaptionsService)
	campaignHandler := handlers.NewCampaignHandler(deps.Campaigns)
	captionsHandler := handlers.NewCaptionsHandler(deps.CaptionsService, deps.Campaigns, deps.Contents)
	healthHandler := handlers.NewHealthHandler(deps.VectorStore, deps.DocStorePinger, deps.CollectionName)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/upload/{clientID}", uploadHandler)

		r.Post("/products/{productID}/assets", assetsHandler.Put)
		r.Get("/products/{productID}/assets", assetsHandler.Get)

		r.Post("/index", http.HandlerFunc(indexHandler.IndexAll))
		r.Post("/index/{productID}", http.HandlerFunc(indexHandler.IndexProduct))

		r.Method(http.MethodGet, "/similar", similarHandler)

		r.Method(http.MethodPost, "/campaigns/{clientID}/{productID}", campaignHandler)

		r.Post("/captions/{clientID}/{productID}", captionsHandler.Generate)
		r.Get("/captions/{clientID}", captionsHandler.ListForClient)
	})

	r.Method(http.MethodGet, "/health", healthHandler)

	return r
}
