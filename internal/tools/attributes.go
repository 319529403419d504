package tools

import (
	"context"
	"net/http"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/attio-mcp/internal/attio"
)

// attributesPath resolves /v2/{target_type}/{target_identifier}/attributes.
// Callers must have validated targetType first.
func attributesPath(targetType, targetIdentifier string) string {
	return "/v2/" + targetType + "/" + url.PathEscape(targetIdentifier) + "/attributes"
}

type ListAttributesArgs struct {
	TargetType       string `json:"target_type" jsonschema:"the type of the target, either 'objects' or 'lists'"`
	TargetIdentifier string `json:"target_identifier" jsonschema:"the ID or slug of the target object or list"`
	Limit            *int   `json:"limit,omitempty" jsonschema:"the maximum number of attributes to return, defaults to 50"`
	Offset           *int   `json:"offset,omitempty" jsonschema:"the number of attributes to skip"`
}

// ListAttributes lists all attributes for a given target (object or list).
func (t *Toolset) ListAttributes(ctx context.Context, req *mcp.CallToolRequest, args ListAttributesArgs) (*mcp.CallToolResult, attio.Result, error) {
	if !validTargetType(args.TargetType) {
		return nil, attio.ErrorResult(errInvalidTargetType), nil
	}
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   attributesPath(args.TargetType, args.TargetIdentifier),
		Query:  pagination(args.Limit, args.Offset, 50),
	})
	return nil, res, nil
}

type CreateAttributeArgs struct {
	TargetType       string         `json:"target_type" jsonschema:"the type of the target, either 'objects' or 'lists'"`
	TargetIdentifier string         `json:"target_identifier" jsonschema:"the ID or slug of the target object or list"`
	AttributeData    map[string]any `json:"attribute_data" jsonschema:"the attribute definition: title, api_slug, type, is_required, etc."`
}

// CreateAttribute creates a new attribute on the target.
func (t *Toolset) CreateAttribute(ctx context.Context, req *mcp.CallToolRequest, args CreateAttributeArgs) (*mcp.CallToolResult, attio.Result, error) {
	if !validTargetType(args.TargetType) {
		return nil, attio.ErrorResult(errInvalidTargetType), nil
	}
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPost,
		Path:   attributesPath(args.TargetType, args.TargetIdentifier),
		Body:   wrap(args.AttributeData),
	})
	return nil, res, nil
}

type GetAttributeArgs struct {
	TargetType        string `json:"target_type" jsonschema:"the type of the target, either 'objects' or 'lists'"`
	TargetIdentifier  string `json:"target_identifier" jsonschema:"the ID or slug of the target object or list"`
	AttributeIDOrSlug string `json:"attribute_id_or_slug" jsonschema:"the ID or slug of the attribute"`
}

// GetAttribute retrieves a specific attribute of the target.
func (t *Toolset) GetAttribute(ctx context.Context, req *mcp.CallToolRequest, args GetAttributeArgs) (*mcp.CallToolResult, attio.Result, error) {
	if !validTargetType(args.TargetType) {
		return nil, attio.ErrorResult(errInvalidTargetType), nil
	}
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   attributesPath(args.TargetType, args.TargetIdentifier) + "/" + url.PathEscape(args.AttributeIDOrSlug),
	})
	return nil, res, nil
}

type UpdateAttributeArgs struct {
	TargetType        string         `json:"target_type" jsonschema:"the type of the target, either 'objects' or 'lists'"`
	TargetIdentifier  string         `json:"target_identifier" jsonschema:"the ID or slug of the target object or list"`
	AttributeIDOrSlug string         `json:"attribute_id_or_slug" jsonschema:"the ID or slug of the attribute to update"`
	AttributeData     map[string]any `json:"attribute_data" jsonschema:"the attribute properties to update"`
}

// UpdateAttribute updates a specific attribute of the target.
func (t *Toolset) UpdateAttribute(ctx context.Context, req *mcp.CallToolRequest, args UpdateAttributeArgs) (*mcp.CallToolResult, attio.Result, error) {
	if !validTargetType(args.TargetType) {
		return nil, attio.ErrorResult(errInvalidTargetType), nil
	}
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPatch,
		Path:   attributesPath(args.TargetType, args.TargetIdentifier) + "/" + url.PathEscape(args.AttributeIDOrSlug),
		Body:   wrap(args.AttributeData),
	})
	return nil, res, nil
}

type ListSelectOptionsArgs struct {
	TargetType        string `json:"target_type" jsonschema:"the type of the target, either 'objects' or 'lists'"`
	TargetIdentifier  string `json:"target_identifier" jsonschema:"the ID or slug of the target object or list"`
	AttributeIDOrSlug string `json:"attribute_id_or_slug" jsonschema:"the ID or slug of the select attribute"`
	Limit             *int   `json:"limit,omitempty" jsonschema:"the maximum number of options to return, defaults to 50"`
	Offset            *int   `json:"offset,omitempty" jsonschema:"the number of options to skip"`
}

// ListSelectOptions lists the options of a select attribute.
func (t *Toolset) ListSelectOptions(ctx context.Context, req *mcp.CallToolRequest, args ListSelectOptionsArgs) (*mcp.CallToolResult, attio.Result, error) {
	if !validTargetType(args.TargetType) {
		return nil, attio.ErrorResult(errInvalidTargetType), nil
	}
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   attributesPath(args.TargetType, args.TargetIdentifier) + "/" + url.PathEscape(args.AttributeIDOrSlug) + "/options",
		Query:  pagination(args.Limit, args.Offset, 50),
	})
	return nil, res, nil
}

type CreateSelectOptionArgs struct {
	TargetType        string         `json:"target_type" jsonschema:"the type of the target, either 'objects' or 'lists'"`
	TargetIdentifier  string         `json:"target_identifier" jsonschema:"the ID or slug of the target object or list"`
	AttributeIDOrSlug string         `json:"attribute_id_or_slug" jsonschema:"the ID or slug of the select attribute"`
	OptionData        map[string]any `json:"option_data" jsonschema:"the option to add, e.g. {\"title\": \"Medium\"}"`
}

// CreateSelectOption adds an option to a select attribute.
func (t *Toolset) CreateSelectOption(ctx context.Context, req *mcp.CallToolRequest, args CreateSelectOptionArgs) (*mcp.CallToolResult, attio.Result, error) {
	if !validTargetType(args.TargetType) {
		return nil, attio.ErrorResult(errInvalidTargetType), nil
	}
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPost,
		Path:   attributesPath(args.TargetType, args.TargetIdentifier) + "/" + url.PathEscape(args.AttributeIDOrSlug) + "/options",
		Body:   wrap(args.OptionData),
	})
	return nil, res, nil
}

type UpdateSelectOptionArgs struct {
	TargetType        string         `json:"target_type" jsonschema:"the type of the target, either 'objects' or 'lists'"`
	TargetIdentifier  string         `json:"target_identifier" jsonschema:"the ID or slug of the target object or list"`
	AttributeIDOrSlug string         `json:"attribute_id_or_slug" jsonschema:"the ID or slug of the select attribute"`
	OptionID          string         `json:"option_id" jsonschema:"the ID of the option to update"`
	OptionData        map[string]any `json:"option_data" jsonschema:"the option properties to update"`
}

// UpdateSelectOption updates an option of a select attribute.
func (t *Toolset) UpdateSelectOption(ctx context.Context, req *mcp.CallToolRequest, args UpdateSelectOptionArgs) (*mcp.CallToolResult, attio.Result, error) {
	if !validTargetType(args.TargetType) {
		return nil, attio.ErrorResult(errInvalidTargetType), nil
	}
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPatch,
		Path:   attributesPath(args.TargetType, args.TargetIdentifier) + "/" + url.PathEscape(args.AttributeIDOrSlug) + "/options/" + url.PathEscape(args.OptionID),
		Body:   wrap(args.OptionData),
	})
	return nil, res, nil
}

type ListStatusesArgs struct {
	TargetType        string `json:"target_type" jsonschema:"the type of the target, either 'objects' or 'lists'"`
	TargetIdentifier  string `json:"target_identifier" jsonschema:"the ID or slug of the target object or list"`
	AttributeIDOrSlug string `json:"attribute_id_or_slug" jsonschema:"the ID or slug of the status attribute"`
	Limit             *int   `json:"limit,omitempty" jsonschema:"the maximum number of statuses to return, defaults to 50"`
	Offset            *int   `json:"offset,omitempty" jsonschema:"the number of statuses to skip"`
}

// ListStatuses lists the statuses of a status attribute.
func (t *Toolset) ListStatuses(ctx context.Context, req *mcp.CallToolRequest, args ListStatusesArgs) (*mcp.CallToolResult, attio.Result, error) {
	if !validTargetType(args.TargetType) {
		return nil, attio.ErrorResult(errInvalidTargetType), nil
	}
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodGet,
		Path:   attributesPath(args.TargetType, args.TargetIdentifier) + "/" + url.PathEscape(args.AttributeIDOrSlug) + "/statuses",
		Query:  pagination(args.Limit, args.Offset, 50),
	})
	return nil, res, nil
}

type CreateStatusArgs struct {
	TargetType        string         `json:"target_type" jsonschema:"the type of the target, either 'objects' or 'lists'"`
	TargetIdentifier  string         `json:"target_identifier" jsonschema:"the ID or slug of the target object or list"`
	AttributeIDOrSlug string         `json:"attribute_id_or_slug" jsonschema:"the ID or slug of the status attribute"`
	StatusData        map[string]any `json:"status_data" jsonschema:"the status to add, e.g. {\"title\": \"In Review\"}"`
}

// CreateStatus adds a status to a status attribute.
func (t *Toolset) CreateStatus(ctx context.Context, req *mcp.CallToolRequest, args CreateStatusArgs) (*mcp.CallToolResult, attio.Result, error) {
	if !validTargetType(args.TargetType) {
		return nil, attio.ErrorResult(errInvalidTargetType), nil
	}
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPost,
		Path:   attributesPath(args.TargetType, args.TargetIdentifier) + "/" + url.PathEscape(args.AttributeIDOrSlug) + "/statuses",
		Body:   wrap(args.StatusData),
	})
	return nil, res, nil
}

type UpdateStatusArgs struct {
	TargetType        string         `json:"target_type" jsonschema:"the type of the target, either 'objects' or 'lists'"`
	TargetIdentifier  string         `json:"target_identifier" jsonschema:"the ID or slug of the target object or list"`
	AttributeIDOrSlug string         `json:"attribute_id_or_slug" jsonschema:"the ID or slug of the status attribute"`
	StatusID          string         `json:"status_id" jsonschema:"the ID of the status to update"`
	StatusData        map[string]any `json:"status_data" jsonschema:"the status properties to update"`
}

// UpdateStatus updates a status of a status attribute.
func (t *Toolset) UpdateStatus(ctx context.Context, req *mcp.CallToolRequest, args UpdateStatusArgs) (*mcp.CallToolResult, attio.Result, error) {
	if !validTargetType(args.TargetType) {
		return nil, attio.ErrorResult(errInvalidTargetType), nil
	}
	res := t.client.Call(ctx, attio.CallRequest{
		Method: http.MethodPatch,
		Path:   attributesPath(args.TargetType, args.TargetIdentifier) + "/" + url.PathEscape(args.AttributeIDOrSlug) + "/statuses/" + url.PathEscape(args.StatusID),
		Body:   wrap(args.StatusData),
	})
	return nil, res, nil
}
