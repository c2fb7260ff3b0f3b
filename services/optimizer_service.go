package services

import (
	"context"
	"time"

	"github/itish2003/notes-optimizer/models"

	"go.uber.org/zap"
)

const (
	// Temperature used for every completion.
	Temperature = 0.7
	// MaxTokens caps the generated output length.
	MaxTokens = 1000
)

// NoteOptimizer turns free-form session notes into the five-section format.
type NoteOptimizer interface {
	OptimizeNotes(ctx context.Context, notes, apiKey string) (string, error)
}

// OptimizerOptions selects the provider label and model sent upstream.
type OptimizerOptions struct {
	Provider string
	Model    string
}

type noteOptimizerImpl struct {
	completer Completer
	opts      OptimizerOptions
	logger    *zap.Logger
	metrics   *Metrics
}

// NewNoteOptimizer creates a new optimizer service instance.
func NewNoteOptimizer(completer Completer, opts OptimizerOptions, logger *zap.Logger) NoteOptimizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &noteOptimizerImpl{
		completer: completer,
		opts:      opts,
		logger:    logger,
		metrics:   NewMetrics(),
	}
}

// OptimizeNotes implements NoteOptimizer. Every failure comes back as a
// *ProviderError; the completion text is returned without post-processing.
func (n *noteOptimizerImpl) OptimizeNotes(ctx context.Context, notes, apiKey string) (string, error) {
	req := models.CompletionRequest{
		APIKey:       apiKey,
		SystemPrompt: SystemPrompt,
		UserPrompt:   BuildUserPrompt(notes),
		Model:        n.opts.Model,
		Temperature:  Temperature,
		MaxTokens:    MaxTokens,
	}

	n.logger.Debug("sending notes to provider",
		zap.String("provider", n.opts.Provider),
		zap.String("model", n.opts.Model),
		zap.Int("notes_length", len(notes)),
	)

	start := time.Now()
	optimized, err := n.completer.Complete(ctx, req)
	n.metrics.ProviderDuration.WithLabelValues(n.opts.Provider).Observe(time.Since(start).Seconds())
	if err != nil {
		n.metrics.OptimizationsTotal.WithLabelValues(n.opts.Provider, "error").Inc()
		n.logger.Error("provider call failed",
			zap.String("provider", n.opts.Provider),
			zap.Error(err),
		)
		return "", &ProviderError{Provider: n.opts.Provider, Err: err}
	}

	n.metrics.OptimizationsTotal.WithLabelValues(n.opts.Provider, "success").Inc()
	return optimized, nil
}
