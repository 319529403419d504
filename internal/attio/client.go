// Package attio is the single outbound adapter for the Attio v2 REST API.
// Every tool call funnels through Client.Call: one authenticated HTTP request,
// one normalized Result, no exceptions crossing the tool boundary.
// Task 2.1: API call envelope.
package attio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	mimeJSON          = "application/json"
	headerContentType = "Content-Type"
)

// Client performs authenticated calls against one Attio workspace.
// It holds no per-call state; concurrent use is safe.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client with a 30s default timeout.
// baseURL must not end with a slash (paths always start with one).
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CallRequest describes one outbound API call. Path is already resolved:
// enumerated path segments (e.g. the attribute target type) are validated by
// the caller before the request reaches the envelope.
type CallRequest struct {
	Method string
	Path   string // e.g. "/v2/objects/people/records/query"
	Query  url.Values
	Body   any // marshaled verbatim when non-nil; callers own any {"data": ...} wrapping
}

// Call issues exactly one HTTP request and never returns an error: every
// failure path is converted to a tagged Result. A 204 (or any empty 2xx body)
// is success; the DELETE endpoints answer 204 No Content.
func (c *Client) Call(ctx context.Context, req CallRequest) Result {
	if c.apiKey == "" {
		return missingKeyResult()
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return ErrorResult(fmt.Sprintf("%s%v", prefixUnexpected, err))
		}
		bodyReader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return ErrorResult(fmt.Sprintf("%s%v", prefixUnexpected, err))
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	if req.Body != nil {
		httpReq.Header.Set(headerContentType, mimeJSON)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ErrorResult(fmt.Sprintf("%s%s failed: %v", prefixTransport, fullURL, err))
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrorResult(fmt.Sprintf("%s%s failed: %v", prefixTransport, fullURL, err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusErrorResult(resp.StatusCode, raw)
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return successResult()
	}

	// Attio answers JSON objects throughout its v2 API, but the envelope
	// must not choke if an endpoint ever returns a bare array or scalar:
	// those are passed through under "data" instead of failing the call.
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ErrorResult(fmt.Sprintf("%s%v", prefixUnexpected, err))
	}
	if obj, ok := payload.(map[string]any); ok {
		return Result(obj)
	}
	return Result{"data": payload}
}
