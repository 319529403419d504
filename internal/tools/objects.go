package tools

import (
	"context"
	"net/http"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/attio-mcp/internal/attio"
)

type ListObjectsArgs struct {
	Limit  *int `json:"limit,omitempty" jsonschema:"the maximum number of objects to return, defaults to 50"`
	Offset *int `json:"offset,omitempty" jsonschema:"the number of objects to skip"`
}

// ListObjects lists all objects in the workspace.
func (t *Toolset) ListObjects(ctx context.Context, req *mcp.CallToolRequest, args ListObjectsArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   "/v2/objects",
		Query:  pagination(args.Limit, args.Offset, 50),
	})
	return nil, res, nil
}

type CreateObjectArgs struct {
	ObjectData map[string]any `json:"object_data" jsonschema:"the object's properties, e.g. api_slug, singular_noun and plural_noun"`
}

// CreateObject creates a new object.
func (t *Toolset) CreateObject(ctx context.Context, req *mcp.CallToolRequest, args CreateObjectArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPost,
		Path:   "/v2/objects",
		Body:   wrap(args.ObjectData),
	})
	return nil, res, nil
}

type GetObjectArgs struct {
	ObjectIDOrSlug string `json:"object_id_or_slug" jsonschema:"the ID or slug of the object"`
}

// GetObject retrieves a specific object by its ID or slug.
func (t *Toolset) GetObject(ctx context.Context, req *mcp.CallToolRequest, args GetObjectArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   "/v2/objects/" + url.PathEscape(args.ObjectIDOrSlug),
	})
	return nil, res, nil
}

type UpdateObjectArgs struct {
	ObjectIDOrSlug string         `json:"object_id_or_slug" jsonschema:"the ID or slug of the object to update"`
	ObjectData     map[string]any `json:"object_data" jsonschema:"the object's properties to update"`
}

// UpdateObject updates a specific object.
func (t *Toolset) UpdateObject(ctx context.Context, req *mcp.CallToolRequest, args UpdateObjectArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPatch,
		Path:   "/v2/objects/" + url.PathEscape(args.ObjectIDOrSlug),
		Body:   wrap(args.ObjectData),
	})
	return nil, res, nil
}
