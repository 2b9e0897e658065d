package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/minsu-oh/hallabong/internal/content"
	"github.com/minsu-oh/hallabong/internal/models"
)

// TrendingKeywords handles GET /api/trending. The list degrades to a fixed
// fallback when the generator is unreachable, so this endpoint never errors
// once a generator is configured.
func TrendingKeywords(assembler *content.Assembler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if assembler == nil {
			writeError(w, http.StatusServiceUnavailable,
				"Generator not configured. Add your API key to config.toml")
			return
		}

		keywords := assembler.TrendingKeywords(r.Context())
		writeJSON(w, http.StatusOK, map[string][]string{"keywords": keywords})
	}
}

// TopicsRequest is the body of POST /api/topics and POST /api/research.
type TopicsRequest struct {
	Keyword       string              `json:"keyword"`
	Source        models.SearchSource `json:"source"`
	ExcludeTopics []string            `json:"excludeTopics,omitempty"`
}

// RecommendTopics handles POST /api/topics. It returns ranked topic
// suggestions for a seed keyword, grounded with live web retrieval.
func RecommendTopics(assembler *content.Assembler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if assembler == nil {
			writeError(w, http.StatusServiceUnavailable,
				"Generator not configured. Add your API key to config.toml")
			return
		}

		var req TopicsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if req.Keyword == "" {
			writeError(w, http.StatusBadRequest, "keyword is required")
			return
		}
		if req.Source == "" {
			req.Source = models.SourceAll
		}

		topics, err := assembler.RecommendTopics(ctx, req.Keyword, req.Source, req.ExcludeTopics)
		if err != nil {
			slog.Error("topic recommendation failed", "keyword", req.Keyword, "error", err)
			writeError(w, http.StatusBadGateway, "Topic recommendation failed. Please try again.")
			return
		}

		writeJSON(w, http.StatusOK, topics)
	}
}

// Research handles POST /api/research. It fetches trending keywords and
// topic suggestions in one request, fanning out to the generator
// concurrently.
func Research(assembler *content.Assembler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if assembler == nil {
			writeError(w, http.StatusServiceUnavailable,
				"Generator not configured. Add your API key to config.toml")
			return
		}

		var req TopicsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if req.Keyword == "" {
			writeError(w, http.StatusBadRequest, "keyword is required")
			return
		}
		if req.Source == "" {
			req.Source = models.SourceAll
		}

		result, err := assembler.Research(ctx, req.Keyword, req.Source, req.ExcludeTopics)
		if err != nil {
			slog.Error("research failed", "keyword", req.Keyword, "error", err)
			writeError(w, http.StatusBadGateway, "Research failed. Please try again.")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
