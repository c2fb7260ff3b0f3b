package models

// CompletionRequest is everything a provider needs for one chat completion.
// APIKey is the caller's credential and lives only for the duration of the call.
type CompletionRequest struct {
	APIKey       string
	SystemPrompt string
	UserPrompt   string
	Model        string
	Temperature  float64
	MaxTokens    int
}
