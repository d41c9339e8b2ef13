package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration, loaded from the environment.
type Config struct {
	ProjectID     string        `env:"PROJECT_ID"`
	Region        string        `env:"VERTEX_AI_REGION" envDefault:"us-central1"`
	ModelName     string        `env:"MODEL_NAME"       envDefault:"gemini-pro"`
	LLMBackend    string        `env:"LLM_BACKEND"      envDefault:"vertex"`
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIModel   string        `env:"OPENAI_MODEL"     envDefault:"gpt-4o-mini"`
	ListenAddr    string        `env:"LISTEN_ADDR"      envDefault:"0.0.0.0:8080"`
	SessionSecret string        `env:"SESSION_SECRET"   envDefault:"dev"`
	ResultTTL     time.Duration `env:"RESULT_TTL"       envDefault:"10m"`
}

// Load parses the environment and validates the backend selection.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	switch cfg.LLMBackend {
	case "vertex":
		if cfg.ProjectID == "" {
			return Config{}, fmt.Errorf("PROJECT_ID must be set for the vertex backend")
		}
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return Config{}, fmt.Errorf("OPENAI_API_KEY must be set for the openai backend")
		}
	default:
		return Config{}, fmt.Errorf("unknown LLM_BACKEND %q", cfg.LLMBackend)
	}
	return cfg, nil
}
