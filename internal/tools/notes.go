package tools

import (
	"context"
	"net/http"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/attio-mcp/internal/attio"
)

type ListNotesArgs struct{}

// ListNotes lists all notes in the workspace.
func (t *Toolset) ListNotes(ctx context.Context, req *mcp.CallToolRequest, args ListNotesArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   "/v2/notes",
	})
	return nil, res, nil
}

type CreateNoteArgs struct {
	NoteData map[string]any `json:"note_data" jsonschema:"the note's properties: parent_object, parent_record_id, title, format, content, created_at"`
}

// CreateNote creates a new note.
func (t *Toolset) CreateNote(ctx context.Context, req *mcp.CallToolRequest, args CreateNoteArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPost,
		Path:   "/v2/notes",
		Body:   wrap(args.NoteData),
	})
	return nil, res, nil
}

type GetNoteArgs struct {
	NoteID string `json:"note_id" jsonschema:"the ID of the note"`
}

// GetNote retrieves a specific note by its ID.
func (t *Toolset) GetNote(ctx context.Context, req *mcp.CallToolRequest, args GetNoteArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   "/v2/notes/" + url.PathEscape(args.NoteID),
	})
	return nil, res, nil
}

type DeleteNoteArgs struct {
	NoteID string `json:"note_id" jsonschema:"the ID of the note to delete"`
}

// DeleteNote deletes a specific note by its ID.
func (t *Toolset) DeleteNote(ctx context.Context, req *mcp.CallToolRequest, args DeleteNoteArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodDelete,
		Path:   "/v2/notes/" + url.PathEscape(args.NoteID),
	})
	return nil, deleted(res, "Note", args.NoteID), nil
}
