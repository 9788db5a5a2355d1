package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"promogen/internal/blob"
	"promogen/internal/captions"
	"promogen/internal/config"
	"promogen/internal/docstore"
	"promogen/internal/http"
	"promogen/internal/indexer"
	"promogen/internal/llm"
	"promogen/internal/product"
	"promogen/internal/storage"
	"promogen/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database for campaign records
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	campaignRepo := storage.NewCampaignRepo(db)

	ctx := context.Background()

	// Initialize redis for cross-references and campaign content
	rdb, err := docstore.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer func() {
		_ = rdb.Close()
	}()
	crossRefRepo := docstore.NewRedisCrossRefRepo(rdb)
	contentRepo := docstore.NewRedisContentRepo(rdb)
	slog.Info("Redis connected", "addr", cfg.RedisAddr)

	// Initialize Qdrant vector store
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}

	// Ensure collection exists with correct vector size
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

	// Validate embedding client vector size (fail-fast)
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
	testEmbeddings, err := embedder.EmbedTexts(ctx, []string{"test"})
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbeddings) == 0 {
		log.Fatalf("Embedding client returned no vectors")
	}
	if len(testEmbeddings[0]) != cfg.QdrantVectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.QdrantVectorSize, len(testEmbeddings[0]))
	}
	slog.Info("Embedding client validated", "vector_size", cfg.QdrantVectorSize)

	// Initialize blob storage
	blobStore, err := blob.NewGCSStore(ctx, cfg.BucketName)
	if err != nil {
		log.Fatalf("Failed to create GCS client: %v", err)
	}
	defer func() {
		_ = blobStore.Close()
	}()
	slog.Info("Blob storage ready", "bucket", cfg.BucketName)

	// Model clients: vision for feature extraction, chat for caption
	// generation
	visionClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.VisionModelName)
	chatClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)
	extractor := product.NewExtractor(visionClient)

	// Create indexing pipeline
	pipeline := indexer.NewPipeline(
		blobStore,
		extractor,
		embedder,
		vectorStore,
		crossRefRepo,
		cfg.QdrantCollection,
		cfg.BucketName,
		cfg.AssetBasePrefix,
		cfg.IndexWorkers,
	)

	// Create caption generation service
	captionsService := captions.NewService(
		blobStore,
		extractor,
		embedder,
		vectorStore,
		campaignRepo,
		contentRepo,
		captions.NewGenerator(chatClient),
		cfg.QdrantCollection,
		cfg.UploadBasePrefix,
		cfg.RetrievalK,
	)
	slog.Info("Caption service initialized", "retrieval_k", cfg.RetrievalK)

	// Create router with dependencies
	deps := &http.Deps{
		Blobs:           blobStore,
		Pipeline:        pipeline,
		CaptionsService: captionsService,
		Campaigns:       campaignRepo,
		Contents:        contentRepo,
		VectorStore:     vectorStore,
		DocStorePinger:  docstore.NewRedisPinger(rdb),
		CollectionName:  cfg.QdrantCollection,
		AssetBasePrefix: cfg.AssetBasePrefix,
		UploadPrefix:    cfg.UploadBasePrefix,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName, "vision_model", cfg.VisionModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
