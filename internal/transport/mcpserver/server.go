package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/gemcp/internal/core"
	"github.com/sandevgo/gemcp/internal/gemini"
	"github.com/sandevgo/gemcp/pkg/log"
)

// Server exposes the Gemini capability adapter as MCP tools over stdio.
type Server struct {
	mcp     *server.MCPServer
	adapter *gemini.Client
}

func New(adapter *gemini.Client) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			core.AppName,
			core.AppVersion,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		adapter: adapter,
	}
	s.registerTools()
	return s
}

// Start serves the MCP protocol on stdin/stdout until the stream closes.
func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("serving MCP on stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) Shutdown(ctx context.Context) error {
	// ServeStdio returns when stdin closes; nothing to tear down.
	return nil
}
