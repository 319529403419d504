// Task 2.1 tests: envelope error taxonomy against a fake upstream.
package attio

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"sync/atomic"
	"testing"
)

func TestCall_MissingAPIKeyNoNetwork(t *testing.T) {
	var hits atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "")
	res := c.Call(context.Background(), CallRequest{Method: http.MethodGet, Path: "/v2/objects"})

	if res.Kind() != ErrorConfiguration {
		t.Errorf("Kind() = %v, want ErrorConfiguration", res.Kind())
	}
	if res.ErrorMessage() != "API_KEY environment variable not set." {
		t.Errorf("unexpected error message: %q", res.ErrorMessage())
	}
	if hits.Load() != 0 {
		t.Errorf("expected zero network calls, got %d", hits.Load())
	}
}

func TestCall_SuccessPassthrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q, want 'Bearer sk-test'", got)
		}
		if got := r.URL.Query().Get("limit"); got != "50" {
			t.Errorf("limit query = %q, want '50'", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":[{"id":"obj_1"}]}`) //nolint:errcheck
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "sk-test")
	res := c.Call(context.Background(), CallRequest{
		Method: http.MethodGet,
		Path:   "/v2/objects",
		Query:  url.Values{"limit": {"50"}, "offset": {"0"}},
	})

	if res.IsError() {
		t.Fatalf("unexpected error: %v", res)
	}
	want := Result{"data": []any{map[string]any{"id": "obj_1"}}}
	if !reflect.DeepEqual(res, want) {
		t.Errorf("result = %#v, want %#v", res, want)
	}
}

func TestCall_BodyEcho(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want 'application/json'", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.Copy(w, r.Body) //nolint:errcheck
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "sk-test")
	body := map[string]any{"data": map[string]any{"values": map[string]any{"name": "Acme"}}}
	res := c.Call(context.Background(), CallRequest{Method: http.MethodPost, Path: "/v2/objects/companies/records", Body: body})

	want := Result{"data": map[string]any{"values": map[string]any{"name": "Acme"}}}
	if !reflect.DeepEqual(res, want) {
		t.Errorf("echoed result = %#v, want %#v", res, want)
	}
}

func TestCall_NoContentTypeWithoutBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "" {
			t.Errorf("Content-Type = %q, want empty for body-less request", got)
		}
		io.WriteString(w, `{}`) //nolint:errcheck
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "sk-test")
	res := c.Call(context.Background(), CallRequest{Method: http.MethodGet, Path: "/v2/tasks"})
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res)
	}
}

func TestCall_Status404JSONDetails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"status_code":404,"type":"invalid_request_error","message":"Record not found."}`) //nolint:errcheck
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "sk-test")
	res := c.Call(context.Background(), CallRequest{Method: http.MethodGet, Path: "/v2/objects/people/records/r1"})

	if res.Kind() != ErrorUpstreamStatus {
		t.Fatalf("Kind() = %v, want ErrorUpstreamStatus", res.Kind())
	}
	if res.ErrorMessage() != "API request failed with status 404" {
		t.Errorf("unexpected error message: %q", res.ErrorMessage())
	}
	details, ok := res["details"].(map[string]any)
	if !ok {
		t.Fatalf("details = %#v, want decoded JSON object", res["details"])
	}
	want := map[string]any{"status_code": float64(404), "type": "invalid_request_error", "message": "Record not found."}
	if !reflect.DeepEqual(details, want) {
		t.Errorf("details = %#v, want %#v", details, want)
	}
}

func TestCall_Status500TextDetails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "upstream exploded") //nolint:errcheck
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "sk-test")
	res := c.Call(context.Background(), CallRequest{Method: http.MethodGet, Path: "/v2/notes"})

	if res.Kind() != ErrorUpstreamStatus {
		t.Fatalf("Kind() = %v, want ErrorUpstreamStatus", res.Kind())
	}
	if res["details"] != "upstream exploded" {
		t.Errorf("details = %#v, want raw text", res["details"])
	}
}

func TestCall_DeleteNoContentIsSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "sk-test")
	res := c.Call(context.Background(), CallRequest{Method: http.MethodDelete, Path: "/v2/notes/n1"})

	if res.IsError() {
		t.Fatalf("204 must be success, got %v", res)
	}
	if res["status"] != "success" {
		t.Errorf("result = %#v, want status success", res)
	}
}

func TestCall_EmptyOKBodyIsSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "sk-test")
	res := c.Call(context.Background(), CallRequest{Method: http.MethodDelete, Path: "/v2/tasks/t1"})
	if res["status"] != "success" {
		t.Errorf("result = %#v, want status success", res)
	}
}

func TestCall_NonObjectJSONBodyPassedThrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":"obj_1"},{"id":"obj_2"}]`) //nolint:errcheck
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "sk-test")
	res := c.Call(context.Background(), CallRequest{Method: http.MethodGet, Path: "/v2/objects"})

	if res.IsError() {
		t.Fatalf("top-level array must not be an error, got %v", res)
	}
	want := Result{"data": []any{map[string]any{"id": "obj_1"}, map[string]any{"id": "obj_2"}}}
	if !reflect.DeepEqual(res, want) {
		t.Errorf("result = %#v, want array under data %#v", res, want)
	}
}

func TestCall_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	c := NewClient(ts.URL, "sk-test")
	res := c.Call(context.Background(), CallRequest{Method: http.MethodGet, Path: "/v2/objects"})

	if res.Kind() != ErrorTransport {
		t.Fatalf("Kind() = %v, want ErrorTransport (%v)", res.Kind(), res)
	}
}

func TestResult_KindTable(t *testing.T) {
	cases := []struct {
		name string
		res  Result
		want ErrorKind
	}{
		{"success", Result{"data": "x"}, ErrorNone},
		{"missing key", missingKeyResult(), ErrorConfiguration},
		{"validation", ErrorResult("Invalid target_type. Must be 'objects' or 'lists'."), ErrorValidation},
		{"status", statusErrorResult(404, []byte("{}")), ErrorUpstreamStatus},
		{"transport", ErrorResult("request to http://x failed: dial tcp"), ErrorTransport},
		{"unexpected", ErrorResult("an unexpected error occurred: boom"), ErrorUnexpected},
	}
	for _, tc := range cases {
		if got := tc.res.Kind(); got != tc.want {
			t.Errorf("%s: Kind() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
