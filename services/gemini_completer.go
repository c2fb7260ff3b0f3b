package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github/itish2003/notes-optimizer/models"

	"google.golang.org/genai"
)

// GeminiCompleter serves the same contract as OpenAICompleter against the
// Gemini API. The system prompt goes in as the system instruction.
type GeminiCompleter struct {
	httpClient *http.Client
	baseURL    string
}

func NewGeminiCompleter(httpClient *http.Client, baseURL string) *GeminiCompleter {
	return &GeminiCompleter{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// Complete implements Completer.
func (g *GeminiCompleter) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	if req.APIKey == "" {
		return "", errEmptyCredential
	}

	cfg := &genai.ClientConfig{
		APIKey:     req.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.httpClient,
	}
	if g.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.UserPrompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens:   int32(req.MaxTokens),
	})
	if err != nil {
		return "", err
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}

	// A candidate may be split over several text parts.
	var responseText strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		if p.Text != "" {
			responseText.WriteString(p.Text)
		}
	}
	return responseText.String(), nil
}
