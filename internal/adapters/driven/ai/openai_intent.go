package ai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/vitragvani-labs/granth-core/internal/core/ports/driven"
)

// Ensure OpenAIIntentOracle implements IntentOracle
var _ driven.IntentOracle = (*OpenAIIntentOracle)(nil)

// intentInstruction constrains the model to intent fields only. The model
// never sees table names and is never asked for query syntax; its output is
// strictly validated downstream before anything touches a catalog.
const intentInstruction = `You are an AI librarian for a Jain scripture library. Extract search parameters from the user's request.
- If the user says 'watch', 'video', or 'youtube', category is WATCH.
- If the user says 'pravachan', 'audio', or 'listen', category is LISTEN.
- If the user says 'book', 'pdf', or 'read', category is READ.
- If the request fits more than one, category is BOTH.
Return JSON only, with this exact shape:
{"shastra": "string", "gatha": "string", "month": "string", "title": "string", "category": "READ|LISTEN|WATCH|BOTH"}
Omit any field you cannot extract. Never include anything else.`

// OpenAIIntentOracle implements IntentOracle against the OpenAI chat API
// (or any OpenAI-compatible endpoint via a custom base URL).
type OpenAIIntentOracle struct {
	client *openai.Client
	model  string
}

// NewOpenAIIntentOracle creates a new oracle adapter
func NewOpenAIIntentOracle(apiKey, model, baseURL string) (*OpenAIIntentOracle, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIIntentOracle{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// Infer issues one chat completion in JSON mode and returns the raw payload.
// No parsing happens here: the oracle's output is untrusted until the intent
// resolver has validated it.
func (o *OpenAIIntentOracle) Infer(ctx context.Context, query string) ([]byte, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: intentInstruction},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	return []byte(resp.Choices[0].Message.Content), nil
}

// Model returns the model name being used
func (o *OpenAIIntentOracle) Model() string {
	return o.model
}

// parseAPIError extracts a readable error from the API response without
// leaking the request body.
func parseAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("oracle API error %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("oracle API error %d", reqErr.HTTPStatusCode)
	}

	return fmt.Errorf("oracle request failed: %w", err)
}
