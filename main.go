package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github/itish2003/notes-optimizer/config"
	"github/itish2003/notes-optimizer/controller"
	"github/itish2003/notes-optimizer/router"
	"github/itish2003/notes-optimizer/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("FATAL: Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	// No timeout of our own; the provider client's defaults apply.
	completer := newCompleter(cfg, http.DefaultClient)

	optimizer := services.NewNoteOptimizer(completer, services.OptimizerOptions{
		Provider: cfg.Provider,
		Model:    cfg.Model(),
	}, logger)
	optimizeController := controller.NewOptimizeController(optimizer, logger)

	r := router.NewRouter(optimizeController, cfg.AllowedOrigin, logger)

	logger.Info("notes optimizer starting",
		zap.String("address", cfg.ServerAddress),
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model()),
		zap.String("allowed_origin", cfg.AllowedOrigin),
	)

	if err := r.Run(cfg.ServerAddress); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newCompleter(cfg *config.Config, httpClient *http.Client) services.Completer {
	if cfg.Provider == config.ProviderGemini {
		return services.NewGeminiCompleter(httpClient, cfg.BaseURL())
	}
	return services.NewOpenAICompleter(httpClient, cfg.BaseURL())
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	return zapCfg.Build()
}
