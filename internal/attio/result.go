package attio

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result is the normalized outcome of one API call. Attio payloads are large,
// evolving and not owned by this project, so bodies stay schemaless maps
// instead of fixed structs. A Result either carries the upstream payload
// verbatim or a tagged error under the "error" key — never both.
type Result map[string]any

// Error kinds, used for audit classification and tests. The kind is derived
// from the error message shape, not stored in the Result itself, so the wire
// shape stays identical to what agents already parse.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	ErrorConfiguration
	ErrorValidation
	ErrorUpstreamStatus
	ErrorTransport
	ErrorUnexpected
)

// String returns a stable label for audit rows and logs.
func (k ErrorKind) String() string {
	switch k {
	case ErrorNone:
		return "none"
	case ErrorConfiguration:
		return "configuration"
	case ErrorValidation:
		return "validation"
	case ErrorUpstreamStatus:
		return "upstream_status"
	case ErrorTransport:
		return "transport"
	default:
		return "unexpected"
	}
}

const (
	msgMissingAPIKey = "API_KEY environment variable not set."

	prefixStatus     = "API request failed with status "
	prefixTransport  = "request to "
	prefixUnexpected = "an unexpected error occurred: "
	prefixValidation = "Invalid "
)

// IsError reports whether the result carries an error indicator.
func (r Result) IsError() bool {
	_, ok := r["error"]
	return ok
}

// ErrorMessage returns the error message, or "" for success results.
func (r Result) ErrorMessage() string {
	msg, _ := r["error"].(string)
	return msg
}

// Kind classifies the result into the error taxonomy.
func (r Result) Kind() ErrorKind {
	msg, ok := r["error"].(string)
	if !ok {
		return ErrorNone
	}
	switch {
	case msg == msgMissingAPIKey:
		return ErrorConfiguration
	case strings.HasPrefix(msg, prefixValidation):
		return ErrorValidation
	case strings.HasPrefix(msg, prefixStatus):
		return ErrorUpstreamStatus
	case strings.HasPrefix(msg, prefixTransport):
		return ErrorTransport
	default:
		return ErrorUnexpected
	}
}

// ErrorResult builds a plain tagged error result.
func ErrorResult(msg string) Result {
	return Result{"error": msg}
}

// missingKeyResult is returned before any I/O when no credential is configured.
func missingKeyResult() Result {
	return Result{"error": msgMissingAPIKey}
}

// statusErrorResult maps a non-2xx upstream response. The body is decoded as
// JSON when possible; otherwise the raw text is attached as-is.
func statusErrorResult(status int, body []byte) Result {
	var details any
	if err := json.Unmarshal(body, &details); err != nil {
		details = string(body)
	}
	return Result{
		"error":   fmt.Sprintf("%s%d", prefixStatus, status),
		"details": details,
	}
}

// successResult marks calls that legitimately return no body (204 on DELETE).
func successResult() Result {
	return Result{"status": "success"}
}
