package tools

import (
	"context"
	"net/http"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/attio-mcp/internal/attio"
)

type ListTasksArgs struct{}

// ListTasks lists all tasks in the workspace.
func (t *Toolset) ListTasks(ctx context.Context, req *mcp.CallToolRequest, args ListTasksArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   "/v2/tasks",
	})
	return nil, res, nil
}

type CreateTaskArgs struct {
	TaskData map[string]any `json:"task_data" jsonschema:"the task's properties: content, format, deadline_at, is_completed, linked_records, assignees"`
}

// CreateTask creates a new task.
func (t *Toolset) CreateTask(ctx context.Context, req *mcp.CallToolRequest, args CreateTaskArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPost,
		Path:   "/v2/tasks",
		Body:   wrap(args.TaskData),
	})
	return nil, res, nil
}

type GetTaskArgs struct {
	TaskID string `json:"task_id" jsonschema:"the ID of the task"`
}

// GetTask retrieves a specific task by its ID.
func (t *Toolset) GetTask(ctx context.Context, req *mcp.CallToolRequest, args GetTaskArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   "/v2/tasks/" + url.PathEscape(args.TaskID),
	})
	return nil, res, nil
}

type UpdateTaskArgs struct {
	TaskID   string         `json:"task_id" jsonschema:"the ID of the task to update"`
	TaskData map[string]any `json:"task_data" jsonschema:"the task properties to update"`
}

// UpdateTask updates a specific task.
func (t *Toolset) UpdateTask(ctx context.Context, req *mcp.CallToolRequest, args UpdateTaskArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPatch,
		Path:   "/v2/tasks/" + url.PathEscape(args.TaskID),
		Body:   wrap(args.TaskData),
	})
	return nil, res, nil
}

type DeleteTaskArgs struct {
	TaskID string `json:"task_id" jsonschema:"the ID of the task to delete"`
}

// DeleteTask deletes a specific task by its ID.
func (t *Toolset) DeleteTask(ctx context.Context, req *mcp.CallToolRequest, args DeleteTaskArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodDelete,
		Path:   "/v2/tasks/" + url.PathEscape(args.TaskID),
	})
	return nil, deleted(res, "Task", args.TaskID), nil
}
