package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandevgo/gemcp/internal/config"
	"github.com/sandevgo/gemcp/pkg/env"
	"github.com/sandevgo/gemcp/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Create the runtime directory and a .env template",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		runtimePath := config.GetRuntimePath()
		if err := os.MkdirAll(runtimePath, 0o755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}

		envPath := filepath.Join(runtimePath, ".env")
		if _, err := os.Stat(envPath); err == nil {
			logger.Info().Str("path", envPath).Msg(".env already exists, leaving it alone")
			return nil
		}

		content, err := env.MarshalEnv(&config.GeminiConfig{})
		if err != nil {
			return err
		}
		if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
			return fmt.Errorf("failed to write .env template: %w", err)
		}

		logger.Info().Str("path", envPath).Msg("wrote .env template")
		logger.Info().Msg("fill in GEMINI_API_KEY, then run 'gemcp serve'")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
