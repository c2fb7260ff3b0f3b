package services

import (
	"context"
	"net/http"

	"github/itish2003/notes-optimizer/models"

	"github.com/sashabaranov/go-openai"
)

// OpenAICompleter talks to an OpenAI compatible chat-completion endpoint.
// A fresh client is built for every call so the caller's key is never shared
// between requests. The output cap goes out as the classic max_tokens field,
// which every compatible server understands.
type OpenAICompleter struct {
	httpClient *http.Client
	baseURL    string
}

// NewOpenAICompleter creates a completer. An empty baseURL keeps the library
// default (api.openai.com).
func NewOpenAICompleter(httpClient *http.Client, baseURL string) *OpenAICompleter {
	return &OpenAICompleter{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// Complete implements Completer.
func (o *OpenAICompleter) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	if req.APIKey == "" {
		return "", errEmptyCredential
	}

	cfg := openai.DefaultConfig(req.APIKey)
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	if o.httpClient != nil {
		cfg.HTTPClient = o.httpClient
	}
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
