package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Generative model endpoints (OpenAI-compatible APIs).
	LLMBaseURL         string
	LLMModelName       string
	LLMAPIKey          string
	VisionModelName    string
	EmbeddingBaseURL   string
	EmbeddingModelName string

	// Blob storage.
	BucketName       string
	AssetBasePrefix  string // products indexed by the batch live under this prefix
	UploadBasePrefix string // per-client uploads live under this prefix

	// Vector store.
	QdrantURL        string
	QdrantCollection string
	QdrantVectorSize int

	// Campaign record store.
	DBPath string

	// Cross-reference / campaign content store.
	RedisAddr string

	// Pipeline tuning.
	IndexWorkers int
	RetrievalK   int

	APIPort   string
	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMBaseURL:         getEnv("LLM_BASE_URL", "https://api.openai.com"),
		LLMModelName:       getEnv("LLM_MODEL", "gpt-4"),
		LLMAPIKey:          getEnv("LLM_API_KEY", ""),
		VisionModelName:    getEnv("VISION_MODEL", "gpt-4o"),
		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", ""),
		EmbeddingModelName: getEnv("EMBEDDING_MODEL_NAME", "text-embedding-ada-002"),
		BucketName:         getEnv("BUCKET_NAME", ""),
		AssetBasePrefix:    getEnv("ASSET_BASE_PREFIX", "insta_posts/"),
		UploadBasePrefix:   getEnv("UPLOAD_BASE_PREFIX", "client_uploads/"),
		QdrantURL:          getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection:   getEnv("QDRANT_COLLECTION", "insta_posts"),
		DBPath:             getEnv("DB_PATH", "./data/promogen.db"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		APIPort:            getEnv("API_PORT", "9000"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
	}

	// Embedding endpoint defaults to the LLM endpoint when not set separately.
	if cfg.EmbeddingBaseURL == "" {
		cfg.EmbeddingBaseURL = cfg.LLMBaseURL
	}

	// Prefixes are used for directory-style listing and key construction, so
	// they must end with a separator.
	if !strings.HasSuffix(cfg.AssetBasePrefix, "/") {
		cfg.AssetBasePrefix += "/"
	}
	if !strings.HasSuffix(cfg.UploadBasePrefix, "/") {
		cfg.UploadBasePrefix += "/"
	}

	// Parse QDRANT_VECTOR_SIZE
	// Note: This must match the output vector size of the embeddings model.
	// For text-embedding-ada-002 this is 1536 dimensions. If the vector size
	// changes, the Qdrant collection must be recreated.
	vectorSizeStr := getEnv("QDRANT_VECTOR_SIZE", "")
	if vectorSizeStr == "" {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE is required")
	}
	vectorSize, err := strconv.Atoi(vectorSizeStr)
	if err != nil {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be a valid integer: %w", err)
	}
	if vectorSize <= 0 {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be greater than 0")
	}
	cfg.QdrantVectorSize = vectorSize

	cfg.IndexWorkers, err = getEnvInt("INDEX_WORKERS", 5)
	if err != nil {
		return nil, err
	}
	cfg.RetrievalK, err = getEnvInt("RETRIEVAL_K", 2)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(getEnv("LOG_LEVEL", "info")) {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "info":
		cfg.LogLevel = slog.LevelInfo
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}

	// Validate required fields
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("BUCKET_NAME is required")
	}
	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required")
	}

	// Create ./data directory if it doesn't exist (for the DB file)
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets a positive integer environment variable or returns a default value.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return n, nil
}
