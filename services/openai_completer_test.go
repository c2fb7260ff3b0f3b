package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github/itish2003/notes-optimizer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type openAIChatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

const openAIReply = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4",
  "choices": [
    {"index": 0, "message": {"role": "assistant", "content": "Behaviors Observed:\n- None noted\n"}, "finish_reason": "stop"},
    {"index": 1, "message": {"role": "assistant", "content": "second choice"}, "finish_reason": "stop"}
  ],
  "usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
}`

func testCompletionRequest(apiKey string) models.CompletionRequest {
	return models.CompletionRequest{
		APIKey:       apiKey,
		SystemPrompt: SystemPrompt,
		UserPrompt:   BuildUserPrompt("Client completed 8/10 trials."),
		Model:        "gpt-4",
		Temperature:  Temperature,
		MaxTokens:    MaxTokens,
	}
}

func TestOpenAICompleter_Complete(t *testing.T) {
	t.Run("sends chat completion and returns first choice", func(t *testing.T) {
		var got openAIChatRequest
		var fields map[string]json.RawMessage
		var auth, path string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			path = r.URL.Path
			body, err := io.ReadAll(r.Body)
			if err == nil {
				err = json.Unmarshal(body, &got)
			}
			if err == nil {
				err = json.Unmarshal(body, &fields)
			}
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(openAIReply))
		}))
		defer srv.Close()

		completer := NewOpenAICompleter(srv.Client(), srv.URL)
		text, err := completer.Complete(context.Background(), testCompletionRequest("sk-test123"))
		require.NoError(t, err)
		assert.Equal(t, "Behaviors Observed:\n- None noted\n", text)

		assert.Equal(t, "Bearer sk-test123", auth)
		assert.True(t, strings.HasSuffix(path, "/chat/completions"))
		assert.Equal(t, "gpt-4", got.Model)
		assert.InDelta(t, 0.7, got.Temperature, 1e-9)
		assert.Equal(t, 1000, got.MaxTokens)
		assert.Contains(t, fields, "max_tokens")
		assert.NotContains(t, fields, "max_completion_tokens")

		require.Len(t, got.Messages, 2)
		assert.Equal(t, "system", got.Messages[0].Role)
		assert.Equal(t, SystemPrompt, got.Messages[0].Content)
		assert.Equal(t, "user", got.Messages[1].Role)
		assert.Equal(t, "Please optimize these ABA therapy session notes:\n\nClient completed 8/10 trials.", got.Messages[1].Content)
	})

	t.Run("provider error is returned", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
		}))
		defer srv.Close()

		completer := NewOpenAICompleter(srv.Client(), srv.URL)
		_, err := completer.Complete(context.Background(), testCompletionRequest("sk-bad"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Incorrect API key provided")
	})

	t.Run("no choices is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "x", "object": "chat.completion", "model": "gpt-4", "choices": []}`))
		}))
		defer srv.Close()

		completer := NewOpenAICompleter(srv.Client(), srv.URL)
		_, err := completer.Complete(context.Background(), testCompletionRequest("sk-test123"))
		assert.ErrorIs(t, err, ErrEmptyCompletion)
	})

	t.Run("empty key never reaches the provider", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer srv.Close()

		t.Setenv("OPENAI_API_KEY", "sk-from-env")
		completer := NewOpenAICompleter(srv.Client(), srv.URL)
		_, err := completer.Complete(context.Background(), testCompletionRequest(""))
		assert.ErrorIs(t, err, errEmptyCredential)
		assert.Zero(t, calls.Load())
	})

	t.Run("unreachable provider", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		completer := NewOpenAICompleter(nil, url)
		_, err := completer.Complete(context.Background(), testCompletionRequest("sk-test123"))
		assert.Error(t, err)
	})
}
