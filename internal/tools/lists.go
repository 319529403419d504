package tools

import (
	"context"
	"net/http"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/attio-mcp/internal/attio"
)

type ListListsArgs struct {
	Limit  *int `json:"limit,omitempty" jsonschema:"the maximum number of lists to return, defaults to 50"`
	Offset *int `json:"offset,omitempty" jsonschema:"the number of lists to skip"`
}

// ListLists retrieves all lists in the workspace.
func (t *Toolset) ListLists(ctx context.Context, req *mcp.CallToolRequest, args ListListsArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   "/v2/lists",
		Query:  pagination(args.Limit, args.Offset, 50),
	})
	return nil, res, nil
}

type CreateListArgs struct {
	ListData map[string]any `json:"list_data" jsonschema:"the data for the new list: name, api_slug, parent_object, workspace_access, workspace_member_access"`
}

// CreateList creates a new list.
func (t *Toolset) CreateList(ctx context.Context, req *mcp.CallToolRequest, args CreateListArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPost,
		Path:   "/v2/lists",
		Body:   wrap(args.ListData),
	})
	return nil, res, nil
}

type GetListArgs struct {
	ListIDOrSlug string `json:"list_id_or_slug" jsonschema:"the ID or slug of the list to retrieve"`
}

// GetList retrieves a specific list by its ID or slug.
func (t *Toolset) GetList(ctx context.Context, req *mcp.CallToolRequest, args GetListArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   "/v2/lists/" + url.PathEscape(args.ListIDOrSlug),
	})
	return nil, res, nil
}

type UpdateListArgs struct {
	ListIDOrSlug string         `json:"list_id_or_slug" jsonschema:"the ID or slug of the list to update"`
	ListData     map[string]any `json:"list_data" jsonschema:"the list properties to update"`
}

// UpdateList updates a specific list.
func (t *Toolset) UpdateList(ctx context.Context, req *mcp.CallToolRequest, args UpdateListArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPatch,
		Path:   "/v2/lists/" + url.PathEscape(args.ListIDOrSlug),
		Body:   wrap(args.ListData),
	})
	return nil, res, nil
}
