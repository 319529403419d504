package tools

import (
	"context"
	"net/http"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/attio-mcp/internal/attio"
)

func recordPath(objectIDOrSlug, recordID string) string {
	return "/v2/objects/" + url.PathEscape(objectIDOrSlug) + "/records/" + url.PathEscape(recordID)
}

type ListRecordsArgs struct {
	ObjectIDOrSlug string           `json:"object_id_or_slug" jsonschema:"the ID or slug of the object to query records from"`
	FilterCriteria map[string]any   `json:"filter_criteria,omitempty" jsonschema:"filter for the query, e.g. {\"and\":[{\"attribute\":\"name\",\"condition\":\"eq\",\"value\":\"Test\"}]}"`
	Sorts          []map[string]any `json:"sorts,omitempty" jsonschema:"sort order, e.g. [{\"attribute\":\"created_at\",\"direction\":\"desc\"}]"`
	Limit          *int             `json:"limit,omitempty" jsonschema:"the maximum number of records to return, defaults to 500"`
	Offset         *int             `json:"offset,omitempty" jsonschema:"the number of records to skip"`
}

// ListRecords queries records of an object via the query sub-path. Filters and
// sorts travel in a data-wrapped POST body, not in the query string.
func (t *Toolset) ListRecords(ctx context.Context, req *mcp.CallToolRequest, args ListRecordsArgs) (*mcp.CallToolResult, attio.Result, error) {
	body := queryBody(args.Limit, args.Offset, 500, args.FilterCriteria, args.Sorts)
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPost,
		Path:   "/v2/objects/" + url.PathEscape(args.ObjectIDOrSlug) + "/records/query",
		Body:   wrap(body),
	})
	return nil, res, nil
}

type CreateRecordArgs struct {
	ObjectIDOrSlug string         `json:"object_id_or_slug" jsonschema:"the ID or slug of the object where the record will be created"`
	RecordData     map[string]any `json:"record_data" jsonschema:"the record data, typically {\"values\": {...attribute values...}}"`
}

// CreateRecord creates a new record in a specified object.
func (t *Toolset) CreateRecord(ctx context.Context, req *mcp.CallToolRequest, args CreateRecordArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPost,
		Path:   "/v2/objects/" + url.PathEscape(args.ObjectIDOrSlug) + "/records",
		Body:   wrap(args.RecordData),
	})
	return nil, res, nil
}

type GetRecordArgs struct {
	ObjectIDOrSlug string `json:"object_id_or_slug" jsonschema:"the ID or slug of the object"`
	RecordID       string `json:"record_id" jsonschema:"the ID of the record to retrieve"`
}

// GetRecord retrieves a specific record.
func (t *Toolset) GetRecord(ctx context.Context, req *mcp.CallToolRequest, args GetRecordArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   recordPath(args.ObjectIDOrSlug, args.RecordID),
	})
	return nil, res, nil
}

type UpdateRecordArgs struct {
	ObjectIDOrSlug string         `json:"object_id_or_slug" jsonschema:"the ID or slug of the object"`
	RecordID       string         `json:"record_id" jsonschema:"the ID of the record to update"`
	RecordData     map[string]any `json:"record_data" jsonschema:"the new values, e.g. {\"values\": {\"attribute_id\": \"new_value\"}}"`
}

// UpdateRecordOverwrite updates a record overwriting existing values (PUT).
func (t *Toolset) UpdateRecordOverwrite(ctx context.Context, req *mcp.CallToolRequest, args UpdateRecordArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPut,
		Path:   recordPath(args.ObjectIDOrSlug, args.RecordID),
		Body:   wrap(args.RecordData),
	})
	return nil, res, nil
}

// UpdateRecordAppend updates a record appending to multiselect values (PATCH).
func (t *Toolset) UpdateRecordAppend(ctx context.Context, req *mcp.CallToolRequest, args UpdateRecordArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPatch,
		Path:   recordPath(args.ObjectIDOrSlug, args.RecordID),
		Body:   wrap(args.RecordData),
	})
	return nil, res, nil
}

type DeleteRecordArgs struct {
	ObjectIDOrSlug string `json:"object_id_or_slug" jsonschema:"the ID or slug of the object"`
	RecordID       string `json:"record_id" jsonschema:"the ID of the record to delete"`
}

// DeleteRecord deletes a record. Attio answers 204 No Content on success.
func (t *Toolset) DeleteRecord(ctx context.Context, req *mcp.CallToolRequest, args DeleteRecordArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodDelete,
		Path:   recordPath(args.ObjectIDOrSlug, args.RecordID),
	})
	return nil, deleted(res, "Record", args.RecordID), nil
}

type ListRecordEntriesArgs struct {
	ObjectIDOrSlug string `json:"object_id_or_slug" jsonschema:"the ID or slug of the object"`
	RecordID       string `json:"record_id" jsonschema:"the ID of the record"`
	Limit          *int   `json:"limit,omitempty" jsonschema:"the maximum number of entries to return, defaults to 50"`
	Offset         *int   `json:"offset,omitempty" jsonschema:"the number of entries to skip"`
}

// ListRecordEntries lists all entries, across all lists, for which this
// record is the parent.
func (t *Toolset) ListRecordEntries(ctx context.Context, req *mcp.CallToolRequest, args ListRecordEntriesArgs) (*mcp.CallToolResult, attio.Result, error) {
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   recordPath(args.ObjectIDOrSlug, args.RecordID) + "/entries",
		Query:  pagination(args.Limit, args.Offset, 50),
	})
	return nil, res, nil
}
