package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Compile-time interface check.
var _ Generator = (*GeminiGenerator)(nil)

const geminiAPIURLFormat = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// GeminiGenerator implements Generator using the Gemini generateContent API.
// It is the only provider that supports live web retrieval; when WebSearch
// is requested, the google_search tool is attached and grounding metadata
// from the response is mapped to citations.
type GeminiGenerator struct {
	apiKey string
	model  string
	client *http.Client
}

// NewGeminiGenerator creates a GeminiGenerator with a 120-second timeout
// HTTP client. Content generation with web grounding is slow; the timeout
// accounts for that.
func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// geminiRequest is the request body for the generateContent API.
type geminiRequest struct {
	SystemInstruction *geminiContent `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	Tools             []geminiTool    `json:"tools,omitempty"`
}

// geminiContent is a block of parts in a Gemini request or response.
type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

// geminiPart is a single text part.
type geminiPart struct {
	Text string `json:"text"`
}

// geminiTool enables a built-in tool on the request.
type geminiTool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

// geminiResponse is the response body from the generateContent API.
type geminiResponse struct {
	Candidates []struct {
		Content           geminiContent `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []struct {
				Web *struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends a single generateContent request and returns the combined
// candidate text plus any grounding citations.
func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (*Response, error) {
	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: SystemInstruction}}},
		Contents:          []geminiContent{{Parts: []geminiPart{{Text: req.Instructions}}}},
	}
	if req.WebSearch {
		reqBody.Tools = []geminiTool{{GoogleSearch: &struct{}{}}}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf(geminiAPIURLFormat, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("x-goog-api-key", g.apiKey)
	httpReq.Header.Set("content-type", "application/json")

	slog.Debug("calling Gemini API", "model", g.model, "kind", req.Kind, "web_search", req.WebSearch)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing response (status %d): %w", resp.StatusCode, err)
	}

	if apiResp.Error != nil {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if len(apiResp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response: no candidates returned")
	}

	candidate := apiResp.Candidates[0]

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		b.WriteString(part.Text)
	}

	var citations []Citation
	if candidate.GroundingMetadata != nil {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil {
				continue
			}
			citations = append(citations, Citation{
				Title: chunk.Web.Title,
				URL:   chunk.Web.URI,
			})
		}
	}

	return &Response{
		Text:      b.String(),
		Citations: citations,
	}, nil
}
