// Task 4.1: MCP server lifecycle across the supported transports.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/matiasleandrokruk/attio-mcp/internal/infra/config"
)

// Server runs one MCP server over the configured transport.
type Server struct {
	cfg config.Config
	mcp *mcp.Server
	log zerolog.Logger
}

// New wraps an already-registered MCP server for serving.
func New(cfg config.Config, mcpServer *mcp.Server, log zerolog.Logger) *Server {
	return &Server{cfg: cfg, mcp: mcpServer, log: log}
}

// Run serves until ctx is cancelled or the transport fails.
// Unrecognized transports fall back to SSE with a warning rather than
// refusing to start.
func (s *Server) Run(ctx context.Context) error {
	transport := Normalize(s.cfg.Transport, s.log)

	switch transport {
	case config.TransportStdio:
		s.log.Info().Msg("serving MCP over stdio")
		return s.mcp.Run(ctx, &mcp.StdioTransport{})
	case config.TransportHTTP:
		s.log.Info().Int("port", s.cfg.Port).Str("endpoint", "/mcp").Msg("serving MCP over streamable HTTP")
		return s.serveHTTP(ctx, s.router(transport))
	default:
		s.log.Info().Int("port", s.cfg.Port).Str("endpoint", "/sse").Msg("serving MCP over SSE")
		return s.serveHTTP(ctx, s.router(config.TransportSSE))
	}
}

// serveHTTP runs the HTTP listener and shuts it down when ctx is cancelled.
func (s *Server) serveHTTP(ctx context.Context, handler http.Handler) error {
	httpServer := &http.Server{
		Addr:        fmt.Sprintf(":%d", s.cfg.Port),
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// SSE streams stay open indefinitely, so no write timeout.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		s.log.Info().Msg("server shutdown complete")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}
