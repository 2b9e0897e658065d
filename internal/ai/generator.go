// Package ai wraps the external generative text service behind the
// Generator interface. The core only depends on the capability contract:
// send an instruction, optionally ask for live web retrieval, get back
// free-form text plus optional citation metadata. Any service meeting that
// contract is substitutable.
package ai

import (
	"context"
	"fmt"
)

// Kind identifies one of the generator operations.
type Kind string

const (
	KindTrendKeywords       Kind = "trend-keywords"
	KindTopicRecommendation Kind = "topic-recommendation"
	KindSEOAnalysis         Kind = "seo-analysis"
	KindContentGeneration   Kind = "content-generation"
)

// Request is a single generation request.
type Request struct {
	Kind         Kind
	Instructions string
	// WebSearch asks the provider to ground the response in live search
	// results. Providers without that capability ignore the flag.
	WebSearch bool
}

// Citation is one source the generator reports having consulted.
type Citation struct {
	Title string
	URL   string
}

// Response is the raw outcome of a generation request. Text is free-form
// and may wrap its structured payload in prose or code fences; callers run
// it through the extract package.
type Response struct {
	Text      string
	Citations []Citation
}

// Generator is the interface all generative-service providers implement.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// ProviderConfig holds the configuration needed to create a generator.
type ProviderConfig struct {
	Provider string // "gemini" | "openai"
	APIKey   string
	Model    string
}

// NewGenerator creates the appropriate provider based on config.
func NewGenerator(cfg ProviderConfig) (Generator, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiGenerator(cfg.APIKey, cfg.Model), nil
	case "openai":
		return NewOpenAIGenerator(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", cfg.Provider)
	}
}
