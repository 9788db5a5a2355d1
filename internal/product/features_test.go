package product

import (
	"context"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"promogen/internal/llm"
)

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 2, 2))
}

func TestExtractor_ExtractFeatures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		raw, _ := json.Marshal(req["messages"])
		body := string(raw)
		if !strings.Contains(body, "should not contain names of any brand") {
			t.Error("request missing brand-agnostic instruction")
		}
		if !strings.Contains(body, "data:image/png;base64,") {
			t.Error("request missing base64 PNG data URL")
		}

		resp := llm.ChatResponse{
			Choices: []llm.ChatChoice{
				{Message: llm.ChatChoiceMessage{Role: "assistant", Content: "  matte texture, pink tone  "}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	extractor := NewExtractor(llm.NewClient(server.URL, "test-key", "vision-model"))
	features := extractor.ExtractFeatures(context.Background(), testImage())
	if features != "matte texture, pink tone" {
		t.Errorf("ExtractFeatures() = %q, want trimmed feature text", features)
	}
}

func TestExtractor_ExtractFeatures_Sentinel(t *testing.T) {
	tests := []struct {
		name       string
		serverResp func(w http.ResponseWriter, r *http.Request)
	}{
		{
			name: "server error",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "empty response",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				resp := llm.ChatResponse{
					Choices: []llm.ChatChoice{
						{Message: llm.ChatChoiceMessage{Role: "assistant", Content: "   "}},
					},
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(resp)
			},
		},
		{
			name: "no choices",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(llm.ChatResponse{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResp))
			defer server.Close()

			extractor := NewExtractor(llm.NewClient(server.URL, "test-key", "vision-model"))
			features := extractor.ExtractFeatures(context.Background(), testImage())
			if features != FeatureFailure {
				t.Errorf("ExtractFeatures() = %q, want sentinel %q", features, FeatureFailure)
			}
		})
	}
}
