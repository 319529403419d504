package tools

import (
	"context"
	"net/http"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/attio-mcp/internal/attio"
)

func entryPath(listID, entryID string) string {
	return "/v2/lists/" + url.PathEscape(listID) + "/entries/" + url.PathEscape(entryID)
}

type CreateListEntryArgs struct {
	ListID    string         `json:"list_id" jsonschema:"the ID of the list"`
	EntryData map[string]any `json:"entry_data" jsonschema:"the entry data: parent_record_id, parent_object and entry_values"`
}

// CreateListEntry adds a record to a list.
func (t *Toolset) CreateListEntry(ctx context.Context, req *mcp.CallToolRequest, args CreateListEntryArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPost,
		Path:   "/v2/lists/" + url.PathEscape(args.ListID) + "/entries",
		Body:   wrap(args.EntryData),
	})
	return nil, res, nil
}

type GetListEntryArgs struct {
	ListID  string `json:"list_id" jsonschema:"the ID of the list"`
	EntryID string `json:"entry_id" jsonschema:"the ID of the list entry"`
}

// GetListEntry retrieves a specific list entry.
func (t *Toolset) GetListEntry(ctx context.Context, req *mcp.CallToolRequest, args GetListEntryArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   entryPath(args.ListID, args.EntryID),
	})
	return nil, res, nil
}

type ListEntriesArgs struct {
	ListID         string           `json:"list_id" jsonschema:"the ID or slug of the list to query entries from"`
	FilterCriteria map[string]any   `json:"filter_criteria,omitempty" jsonschema:"filter for the query"`
	Sorts          []map[string]any `json:"sorts,omitempty" jsonschema:"sort order for the query"`
	Limit          *int             `json:"limit,omitempty" jsonschema:"the maximum number of entries to return, defaults to 10"`
	Offset         *int             `json:"offset,omitempty" jsonschema:"the number of entries to skip"`
}

// ListEntries queries entries of a list via the query sub-path. Unlike the
// records query, this endpoint takes the body WITHOUT a "data" wrapper.
func (t *Toolset) ListEntries(ctx context.Context, req *mcp.CallToolRequest, args ListEntriesArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPost,
		Path:   "/v2/lists/" + url.PathEscape(args.ListID) + "/entries/query",
		Body:   queryBody(args.Limit, args.Offset, 10, args.FilterCriteria, args.Sorts),
	})
	return nil, res, nil
}

type UpdateListEntryArgs struct {
	ListID    string         `json:"list_id" jsonschema:"the ID of the list"`
	EntryID   string         `json:"entry_id" jsonschema:"the ID of the list entry to update"`
	EntryData map[string]any `json:"entry_data" jsonschema:"the entry values to set, e.g. {\"entry_values\": {...}}"`
}

// UpdateListEntryOverwrite updates an entry overwriting existing values (PUT).
func (t *Toolset) UpdateListEntryOverwrite(ctx context.Context, req *mcp.CallToolRequest, args UpdateListEntryArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPut,
		Path:   entryPath(args.ListID, args.EntryID),
		Body:   wrap(args.EntryData),
	})
	return nil, res, nil
}

// UpdateListEntryAppend updates an entry appending to multiselect values (PATCH).
func (t *Toolset) UpdateListEntryAppend(ctx context.Context, req *mcp.CallToolRequest, args UpdateListEntryArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPatch,
		Path:   entryPath(args.ListID, args.EntryID),
		Body:   wrap(args.EntryData),
	})
	return nil, res, nil
}

type DeleteListEntryArgs struct {
	ListID  string `json:"list_id" jsonschema:"the ID of the list"`
	EntryID string `json:"entry_id" jsonschema:"the ID of the list entry to delete"`
}

// DeleteListEntry deletes an entry from a list. Attio answers 204 on success.
func (t *Toolset) DeleteListEntry(ctx context.Context, req *mcp.CallToolRequest, args DeleteListEntryArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodDelete,
		Path:   entryPath(args.ListID, args.EntryID),
	})
	return nil, deleted(res, "List entry", args.EntryID), nil
}

type GetListEntryAttributeValuesArgs struct {
	ListID            string `json:"list_id" jsonschema:"the ID of the list"`
	EntryID           string `json:"entry_id" jsonschema:"the ID of the list entry"`
	AttributeIDOrSlug string `json:"attribute_id_or_slug" jsonschema:"the ID or slug of the attribute"`
}

// GetListEntryAttributeValues retrieves the values of one attribute on a list entry.
func (t *Toolset) GetListEntryAttributeValues(ctx context.Context, req *mcp.CallToolRequest, args GetListEntryAttributeValuesArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   entryPath(args.ListID, args.EntryID) + "/attributes/" + url.PathEscape(args.AttributeIDOrSlug) + "/values",
	})
	return nil, res, nil
}
