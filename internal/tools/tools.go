// Package tools exposes the Attio v2 REST API as MCP tools. Every tool is a
// thin caller of the attio.Client envelope: resolve the path, optionally wrap
// the payload under "data", issue exactly one call, return the Result as-is.
// Task 2.2: per-entity tool functions.
package tools

import (
	"net/url"
	"strconv"

	"github.com/matiasleandrokruk/attio-mcp/internal/attio"
)

// Toolset binds all tool handlers to one Attio client.
type Toolset struct {
	client *attio.Client
}

// NewToolset creates a Toolset backed by the given client.
func NewToolset(client *attio.Client) *Toolset {
	return &Toolset{client: client}
}

// errInvalidTargetType matches the validation error agents already parse.
const errInvalidTargetType = "Invalid target_type. Must be 'objects' or 'lists'."

// validTargetType accepts exactly the two path discriminators Attio defines
// for attribute endpoints. Checked before any network I/O.
func validTargetType(targetType string) bool {
	return targetType == "objects" || targetType == "lists"
}

// pagination builds limit/offset query params, applying defaults when the
// caller omitted them. Both params are always sent, like the original tools.
func pagination(limit, offset *int, defaultLimit int) url.Values {
	l := defaultLimit
	if limit != nil {
		l = *limit
	}
	o := 0
	if offset != nil {
		o = *offset
	}
	return url.Values{
		"limit":  {strconv.Itoa(l)},
		"offset": {strconv.Itoa(o)},
	}
}

// wrap envelopes entity fields under the "data" key the Attio write
// endpoints expect. Query bodies for list entries are NOT wrapped; that
// asymmetry belongs to the upstream API, not to us.
func wrap(data map[string]any) map[string]any {
	return map[string]any{"data": data}
}

// queryBody builds the {limit, offset, filter?, sorts?} body shared by the
// two query endpoints. filter and sorts are omitted entirely when absent.
func queryBody(limit, offset *int, defaultLimit int, filter map[string]any, sorts []map[string]any) map[string]any {
	l := defaultLimit
	if limit != nil {
		l = *limit
	}
	o := 0
	if offset != nil {
		o = *offset
	}
	body := map[string]any{"limit": l, "offset": o}
	if len(filter) > 0 {
		body["filter"] = filter
	}
	if len(sorts) > 0 {
		body["sorts"] = sorts
	}
	return body
}

// deleted decorates a successful envelope result with the human-readable
// message the delete tools have always returned. Errors pass through untouched.
func deleted(res attio.Result, what, id string) attio.Result {
	if res.IsError() {
		return res
	}
	res["message"] = what + " " + id + " deleted successfully."
	return res
}
