package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/gemcp/pkg/log"
	"github.com/sandevgo/gemcp/pkg/srv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Gemini tools over MCP stdio",
	Long:  `Starts the MCP server on stdin/stdout. Point your agent host at this command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting gemcp")

		services, err := NewServices(ctx)
		if err != nil {
			flushLog()
			return err
		}

		// The log ring buffer drains last, after every service is down.
		services = append(services, srv.NewCleanup(func() error {
			logger.Info().Msg("gemcp has been shut down gracefully")
			flushLog()
			return nil
		}))

		srv.StartServices(ctx, services)
		srv.ShutdownServices(ctx, services)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
