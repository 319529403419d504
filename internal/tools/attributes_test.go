package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/matiasleandrokruk/attio-mcp/internal/attio"
)

func TestAttributes_InvalidTargetTypeNoNetwork(t *testing.T) {
	ts, u := newHarness(t)

	_, res, err := ts.ListAttributes(context.Background(), nil, ListAttributesArgs{
		TargetType:       "workspaces",
		TargetIdentifier: "x",
	})
	if err != nil {
		t.Fatalf("tool returned Go error: %v", err)
	}
	if res.Kind() != attio.ErrorValidation {
		t.Fatalf("Kind() = %v, want ErrorValidation (%v)", res.Kind(), res)
	}
	if res.ErrorMessage() != "Invalid target_type. Must be 'objects' or 'lists'." {
		t.Errorf("unexpected message: %q", res.ErrorMessage())
	}
	if u.hits != 0 {
		t.Errorf("expected zero network calls, got %d", u.hits)
	}
}

func TestAttributes_AllWriteToolsValidateTargetType(t *testing.T) {
	ts, u := newHarness(t)
	ctx := context.Background()

	results := []attio.Result{}
	collect := func(res attio.Result) { results = append(results, res) }

	_, r1, _ := ts.CreateAttribute(ctx, nil, CreateAttributeArgs{TargetType: "bogus"})
	collect(r1)
	_, r2, _ := ts.GetAttribute(ctx, nil, GetAttributeArgs{TargetType: "bogus"})
	collect(r2)
	_, r3, _ := ts.UpdateAttribute(ctx, nil, UpdateAttributeArgs{TargetType: "bogus"})
	collect(r3)
	_, r4, _ := ts.ListSelectOptions(ctx, nil, ListSelectOptionsArgs{TargetType: "bogus"})
	collect(r4)
	_, r5, _ := ts.CreateSelectOption(ctx, nil, CreateSelectOptionArgs{TargetType: "bogus"})
	collect(r5)
	_, r6, _ := ts.UpdateSelectOption(ctx, nil, UpdateSelectOptionArgs{TargetType: "bogus"})
	collect(r6)
	_, r7, _ := ts.ListStatuses(ctx, nil, ListStatusesArgs{TargetType: "bogus"})
	collect(r7)
	_, r8, _ := ts.CreateStatus(ctx, nil, CreateStatusArgs{TargetType: "bogus"})
	collect(r8)
	_, r9, _ := ts.UpdateStatus(ctx, nil, UpdateStatusArgs{TargetType: "bogus"})
	collect(r9)

	for i, res := range results {
		if res.Kind() != attio.ErrorValidation {
			t.Errorf("tool %d: Kind() = %v, want ErrorValidation", i, res.Kind())
		}
	}
	if u.hits != 0 {
		t.Errorf("expected zero network calls, got %d", u.hits)
	}
}

func TestListAttributes_ObjectsTarget(t *testing.T) {
	ts, u := newHarness(t)

	_, _, _ = ts.ListAttributes(context.Background(), nil, ListAttributesArgs{
		TargetType:       "objects",
		TargetIdentifier: "people",
	})
	if u.method != http.MethodGet || u.path != "/v2/objects/people/attributes" {
		t.Errorf("request = %s %s, want GET /v2/objects/people/attributes", u.method, u.path)
	}
	if got := u.query.Get("limit"); got != "50" {
		t.Errorf("limit = %q, want '50'", got)
	}
}

func TestAttributes_ListsTargetPaths(t *testing.T) {
	ts, u := newHarness(t)
	ctx := context.Background()

	_, _, _ = ts.GetAttribute(ctx, nil, GetAttributeArgs{
		TargetType: "lists", TargetIdentifier: "deals", AttributeIDOrSlug: "stage",
	})
	if u.path != "/v2/lists/deals/attributes/stage" {
		t.Errorf("path = %s", u.path)
	}

	_, _, _ = ts.ListSelectOptions(ctx, nil, ListSelectOptionsArgs{
		TargetType: "lists", TargetIdentifier: "deals", AttributeIDOrSlug: "stage",
	})
	if u.path != "/v2/lists/deals/attributes/stage/options" {
		t.Errorf("path = %s", u.path)
	}

	_, _, _ = ts.UpdateSelectOption(ctx, nil, UpdateSelectOptionArgs{
		TargetType: "lists", TargetIdentifier: "deals", AttributeIDOrSlug: "stage", OptionID: "opt1",
		OptionData: map[string]any{"title": "Won"},
	})
	if u.method != http.MethodPatch || u.path != "/v2/lists/deals/attributes/stage/options/opt1" {
		t.Errorf("request = %s %s", u.method, u.path)
	}

	_, _, _ = ts.CreateStatus(ctx, nil, CreateStatusArgs{
		TargetType: "objects", TargetIdentifier: "people", AttributeIDOrSlug: "stage",
		StatusData: map[string]any{"title": "In Review"},
	})
	if u.method != http.MethodPost || u.path != "/v2/objects/people/attributes/stage/statuses" {
		t.Errorf("request = %s %s", u.method, u.path)
	}

	_, _, _ = ts.UpdateStatus(ctx, nil, UpdateStatusArgs{
		TargetType: "objects", TargetIdentifier: "people", AttributeIDOrSlug: "stage", StatusID: "st1",
		StatusData: map[string]any{"title": "Done"},
	})
	if u.path != "/v2/objects/people/attributes/stage/statuses/st1" {
		t.Errorf("path = %s", u.path)
	}
}

func TestCreateAttribute_DataWrap(t *testing.T) {
	ts, u := newHarness(t)

	_, _, _ = ts.CreateAttribute(context.Background(), nil, CreateAttributeArgs{
		TargetType:       "objects",
		TargetIdentifier: "people",
		AttributeData:    map[string]any{"title": "Priority", "type": "select"},
	})
	body := decodeBody(t, u.body)
	if _, ok := body["data"]; !ok {
		t.Errorf("body = %s, want data wrapper", u.body)
	}
}
