package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/gemcp/internal/config"
	"github.com/sandevgo/gemcp/internal/gemini"
	"github.com/sandevgo/gemcp/internal/transport/mcpserver"
	"github.com/sandevgo/gemcp/pkg/log"
	"github.com/sandevgo/gemcp/pkg/srv"
)

func NewServices(ctx context.Context) ([]srv.Service, error) {
	logger := log.FromCtx(ctx)

	initEnv(ctx)

	geminiCfg := config.NewGeminiConfig(ctx)

	adapter, err := gemini.New(ctx, geminiCfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize the Gemini adapter")
		return nil, err
	}

	return []srv.Service{mcpserver.New(adapter)}, nil
}

// initEnv loads the runtime-dir .env when present; a missing file is fine,
// the environment may carry everything already.
func initEnv(ctx context.Context) {
	envPath := config.GetEnvPath()
	if _, err := os.Stat(envPath); err != nil {
		return
	}
	if err := godotenv.Load(envPath); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
	}
}
