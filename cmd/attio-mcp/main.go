// attio-mcp - MCP server exposing the Attio CRM API as agent tools.
// Task 1.1: Project Setup - Entry point

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/matiasleandrokruk/attio-mcp/internal/attio"
	"github.com/matiasleandrokruk/attio-mcp/internal/audit"
	"github.com/matiasleandrokruk/attio-mcp/internal/infra/config"
	"github.com/matiasleandrokruk/attio-mcp/internal/infra/eventbus"
	"github.com/matiasleandrokruk/attio-mcp/internal/infra/sqlite"
	"github.com/matiasleandrokruk/attio-mcp/internal/server"
	"github.com/matiasleandrokruk/attio-mcp/internal/tools"
	"github.com/matiasleandrokruk/attio-mcp/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("attio-mcp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(out, version.String()) //nolint:errcheck
		return 0
	}

	if *showHelp {
		printHelp(out)
		return 0
	}

	// Stdout belongs to the stdio transport; everything human-facing
	// goes to stderr.
	log := newLogger(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("configuration error")
		return 1
	}
	log = log.Level(parseLevel(cfg.LogLevel))

	if cfg.APIKey == "" {
		// Tools will answer with a configuration error; still worth a warning.
		log.Warn().Msg("API_KEY is not set, every tool call will fail")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: "attio-mcp", Version: version.Version}, nil)
	toolset := tools.NewToolset(attio.NewClient(cfg.BaseURL, cfg.APIKey))
	tools.Register(mcpServer, toolset)
	log.Info().Int("tools", tools.ToolCount).Str("base_url", cfg.BaseURL).Msg("tools registered")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var bus *eventbus.Bus
	if cfg.AuditDB != "" {
		db, dbErr := sqlite.NewDB(cfg.AuditDB)
		if dbErr != nil {
			log.Error().Err(dbErr).Str("path", cfg.AuditDB).Msg("audit database open failed")
			return 1
		}
		defer db.Close() //nolint:errcheck
		if migErr := sqlite.MigrateUp(db); migErr != nil {
			log.Error().Err(migErr).Msg("audit database migration failed")
			return 1
		}
		bus = eventbus.New()
		writer := audit.NewWriter(bus, audit.NewRecorder(db), log)
		go writer.Run(ctx)
		log.Info().Str("path", cfg.AuditDB).Msg("audit trail enabled")
	}
	mcpServer.AddReceivingMiddleware(audit.Middleware(bus, log))

	if err := server.New(cfg, mcpServer, log).Run(ctx); err != nil {
		log.Error().Err(err).Msg("server exited with error")
		return 1
	}
	return 0
}

// newLogger builds the stderr console logger at the default level.
func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
}

// parseLevel maps LOG_LEVEL onto a zerolog level, defaulting to info.
func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

func printHelp(out io.Writer) {
	helpText := `attio-mcp - MCP server for the Attio CRM API

Usage:
  attio-mcp [options]

Options:
  --version    Show version information
  --help       Show this help message

Environment:
  API_KEY      Attio API key (required for tool calls)
  BASE_URL     Attio API host (default: https://api.attio.com)
  TRANSPORT    stdio | sse | http (default: sse)
  PORT         Listen port for sse/http transports (default: 8080)
  AUDIT_DB     SQLite path for the invocation audit trail (optional)
  LOG_LEVEL    trace | debug | info | warn | error (default: info)

Examples:
  attio-mcp --version
  TRANSPORT=stdio API_KEY=sk-... attio-mcp
  TRANSPORT=http PORT=9090 attio-mcp`
	fmt.Fprintln(out, helpText) //nolint:errcheck
}
