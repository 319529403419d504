// Task 4.2: go-chi router around the HTTP-based MCP transports.
package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/matiasleandrokruk/attio-mcp/internal/infra/config"
	"github.com/matiasleandrokruk/attio-mcp/internal/version"
)

// router builds the chi mux for the SSE or streamable-HTTP transport.
func (s *Server) router(transport string) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Landing page for humans poking at the port
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"name":"attio-mcp","version":%q,"transport":%q}`, version.Version, transport) //nolint:errcheck
	})

	// Health check, unauthenticated, used by load balancers and health probes
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","port":%d}`, s.cfg.Port) //nolint:errcheck
	})

	getServer := func(req *http.Request) *mcp.Server { return s.mcp }
	switch transport {
	case config.TransportHTTP:
		r.Handle("/mcp", mcp.NewStreamableHTTPHandler(getServer, nil))
	default:
		r.Handle("/sse", mcp.NewSSEHandler(getServer, nil))
	}

	return r
}

// Normalize maps a configured transport name onto a supported one.
// Anything unrecognized becomes SSE, logged once so operators notice typos.
func Normalize(transport string, log zerolog.Logger) string {
	switch transport {
	case config.TransportStdio, config.TransportSSE, config.TransportHTTP:
		return transport
	default:
		log.Warn().Str("transport", transport).Msg("unrecognized transport, falling back to sse")
		return config.TransportSSE
	}
}
