package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/minsu-oh/hallabong/internal/content"
)

// SEOAnalyzeRequest is the body of POST /api/seo/analyze.
type SEOAnalyzeRequest struct {
	Keyword string `json:"keyword"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AnalyzeSEO handles POST /api/seo/analyze. It diagnoses an existing draft
// against a target keyword; scoring is delegated entirely to the generator.
func AnalyzeSEO(assembler *content.Assembler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if assembler == nil {
			writeError(w, http.StatusServiceUnavailable,
				"Generator not configured. Add your API key to config.toml")
			return
		}

		var req SEOAnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if req.Keyword == "" {
			writeError(w, http.StatusBadRequest, "keyword is required")
			return
		}
		if req.Content == "" {
			writeError(w, http.StatusBadRequest, "content is required")
			return
		}

		result, err := assembler.AnalyzeSEO(ctx, req.Keyword, req.Title, req.Content)
		if err != nil {
			slog.Error("seo analysis failed", "keyword", req.Keyword, "error", err)
			writeError(w, http.StatusBadGateway, "SEO analysis failed. Please try again.")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
