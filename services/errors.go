package services

import "errors"

// ErrMissingAPIKey is returned when the Authorization header is absent or is
// not a bearer credential. The text is part of the HTTP contract.
var ErrMissingAPIKey = errors.New("Missing or invalid API key")

// ErrEmptyCompletion is returned when the provider answered without choices.
var ErrEmptyCompletion = errors.New("provider returned no completion choices")

// errEmptyCredential guards provider SDKs that fall back to environment
// variables when no key is supplied.
var errEmptyCredential = errors.New("empty API key")

// ProviderError wraps any failure talking to, or decoding the answer of, the
// upstream LLM provider. Its message is the underlying error's message.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
