// Task 3.2: MCP receiving middleware that feeds the audit pipeline.
// Expected wiring: server.AddReceivingMiddleware(Middleware(bus, logger)).
package audit

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/matiasleandrokruk/attio-mcp/internal/attio"
	"github.com/matiasleandrokruk/attio-mcp/internal/infra/eventbus"
)

// TopicInvocation carries Invocation payloads from the middleware to the writer.
const TopicInvocation = "audit.invocation"

// Middleware publishes every tools/call as an Invocation event. A nil bus
// disables the trail but keeps the debug log line. Publishing never blocks,
// so a slow or absent writer cannot break a tool call.
func Middleware(bus *eventbus.Bus, log zerolog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if method != "tools/call" {
				return next(ctx, method, req)
			}

			start := time.Now()
			result, err := next(ctx, method, req)
			duration := time.Since(start)

			tool := "unknown"
			if callReq, ok := req.(*mcp.CallToolRequest); ok && callReq.Params != nil {
				tool = callReq.Params.Name
			}
			outcome, errorKind := classify(result, err)

			log.Debug().
				Str("tool", tool).
				Str("outcome", outcome).
				Str("error_kind", errorKind).
				Dur("duration", duration).
				Msg("tool call")

			if bus != nil {
				bus.Publish(TopicInvocation, Invocation{
					Tool:      tool,
					Outcome:   outcome,
					ErrorKind: errorKind,
					Duration:  duration,
					CreatedAt: time.Now().UTC(),
				})
			}

			return result, err
		}
	}
}

// classify maps a tool result onto the audit outcome columns. Tools report
// failures in-band as a tagged result, so the error key matters more than
// the Go error (which the handlers never return).
func classify(result mcp.Result, err error) (outcome, errorKind string) {
	if err != nil {
		return "error", attio.ErrorUnexpected.String()
	}
	callRes, ok := result.(*mcp.CallToolResult)
	if !ok {
		return "success", ""
	}
	// Server-side the structured content still has the handler's own type;
	// it only degrades to a plain map after a JSON round trip.
	var res attio.Result
	switch structured := callRes.StructuredContent.(type) {
	case attio.Result:
		res = structured
	case map[string]any:
		res = attio.Result(structured)
	default:
		return "success", ""
	}
	if !res.IsError() {
		return "success", ""
	}
	return "error", res.Kind().String()
}
