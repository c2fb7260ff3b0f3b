package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds the server configuration. None of it is a credential: the
// provider key always comes from the caller's Authorization header.
type Config struct {
	ServerAddress string
	AllowedOrigin string
	Provider      string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiModel   string
	GeminiBaseURL string
	GinMode       string
	LogLevel      string
}

// Load reads .env (when present) and the process environment. Variables
// already set in the environment win over .env entries.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("SERVER_ADDRESS", ":8000")
	v.SetDefault("ALLOWED_ORIGIN", "http://localhost:3000")
	v.SetDefault("LLM_PROVIDER", ProviderOpenAI)
	v.SetDefault("OPENAI_MODEL", "gpt-4")
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_BASE_URL", "")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	cfg := &Config{
		ServerAddress: v.GetString("SERVER_ADDRESS"),
		AllowedOrigin: v.GetString("ALLOWED_ORIGIN"),
		Provider:      v.GetString("LLM_PROVIDER"),
		OpenAIModel:   v.GetString("OPENAI_MODEL"),
		OpenAIBaseURL: v.GetString("OPENAI_BASE_URL"),
		GeminiModel:   v.GetString("GEMINI_MODEL"),
		GeminiBaseURL: v.GetString("GEMINI_BASE_URL"),
		GinMode:       v.GetString("GIN_MODE"),
		LogLevel:      v.GetString("LOG_LEVEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can start a server.
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	if cfg.AllowedOrigin == "" {
		return fmt.Errorf("allowed origin cannot be empty")
	}
	switch cfg.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unsupported LLM provider %q", cfg.Provider)
	}
	if cfg.Model() == "" {
		return fmt.Errorf("model for provider %q cannot be empty", cfg.Provider)
	}
	return nil
}

// Model returns the model identifier of the selected provider.
func (cfg *Config) Model() string {
	if cfg.Provider == ProviderGemini {
		return cfg.GeminiModel
	}
	return cfg.OpenAIModel
}

// BaseURL returns the endpoint override of the selected provider, if any.
func (cfg *Config) BaseURL() string {
	if cfg.Provider == ProviderGemini {
		return cfg.GeminiBaseURL
	}
	return cfg.OpenAIBaseURL
}
