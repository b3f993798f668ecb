package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/gemcp/pkg/log"
)

// GeminiConfig carries everything the upstream client needs. The per-class
// default models can all be overridden per tool call.
type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY,required,notEmpty"`

	TextModel     string `env:"GEMINI_TEXT_MODEL" envDefault:"gemini-2.5-flash"`
	ThinkingModel string `env:"GEMINI_THINKING_MODEL" envDefault:"gemini-2.5-pro"`
	ImageModel    string `env:"GEMINI_IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`

	// Base timeout for plain text generation; slower capability classes
	// scale this up.
	Timeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"30s"`
}

func NewGeminiConfig(ctx context.Context) *GeminiConfig {
	c := &GeminiConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Gemini config")
	}
	return c
}
