package ai

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Compile-time interface check.
var _ Generator = (*OpenAIGenerator)(nil)

// OpenAIGenerator implements Generator using the official openai-go SDK
// (chat completions). It has no live-retrieval capability, so WebSearch is
// ignored and responses carry no citations.
type OpenAIGenerator struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAIGenerator creates an OpenAIGenerator for the given key and model.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	return &OpenAIGenerator{
		model: model,
		opts:  []option.RequestOption{option.WithAPIKey(apiKey)},
	}
}

// Generate sends a single chat completion request and returns the first
// choice's text.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (*Response, error) {
	client := openai.NewClient(g.opts...)

	slog.Debug("calling OpenAI API", "model", g.model, "kind", req.Kind)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemInstruction),
			openai.UserMessage(req.Instructions),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response: no choices returned")
	}

	return &Response{Text: resp.Choices[0].Message.Content}, nil
}
