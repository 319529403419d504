package tools

import (
	"context"
	"net/http"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/attio-mcp/internal/attio"
)

type ListWorkspaceMembersArgs struct{}

// ListWorkspaceMembers lists all workspace members.
func (t *Toolset) ListWorkspaceMembers(ctx context.Context, req *mcp.CallToolRequest, args ListWorkspaceMembersArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   "/v2/workspace_members",
	})
	return nil, res, nil
}

type GetWorkspaceMemberArgs struct {
	WorkspaceMemberID string `json:"workspace_member_id" jsonschema:"the ID of the workspace member"`
}

// GetWorkspaceMember retrieves a specific workspace member by their ID.
func (t *Toolset) GetWorkspaceMember(ctx context.Context, req *mcp.CallToolRequest, args GetWorkspaceMemberArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   "/v2/workspace_members/" + url.PathEscape(args.WorkspaceMemberID),
	})
	return nil, res, nil
}
