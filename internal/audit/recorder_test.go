package audit

import (
	"context"
	"testing"
	"time"

	"github.com/matiasleandrokruk/attio-mcp/internal/infra/sqlite"
)

func newTestRecorder(t *testing.T) *Recorder {
	t.Helper()
	db, err := sqlite.NewDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlite.MigrateUp(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRecorder(db)
}

func TestRecord_FillsDefaults(t *testing.T) {
	rec := newTestRecorder(t)
	ctx := context.Background()

	err := rec.Record(ctx, Invocation{
		Tool:     "list_objects",
		Outcome:  "success",
		Duration: 120 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	count, err := rec.CountByTool(ctx, "list_objects")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestRecord_MultipleRowsPerTool(t *testing.T) {
	rec := newTestRecorder(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := rec.Record(ctx, Invocation{Tool: "get_note", Outcome: "success"}); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	if err := rec.Record(ctx, Invocation{Tool: "delete_note", Outcome: "error", ErrorKind: "upstream_status"}); err != nil {
		t.Fatalf("record error row: %v", err)
	}

	count, err := rec.CountByTool(ctx, "get_note")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("get_note count = %d, want 3", count)
	}
	count, err = rec.CountByTool(ctx, "delete_note")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("delete_note count = %d, want 1", count)
	}
}

func TestRecord_ExplicitIDPreserved(t *testing.T) {
	rec := newTestRecorder(t)
	ctx := context.Background()

	inv := Invocation{ID: "fixed-id", Tool: "get_task", Outcome: "success", CreatedAt: time.Now().UTC()}
	if err := rec.Record(ctx, inv); err != nil {
		t.Fatalf("record: %v", err)
	}
	// Primary key conflict proves the explicit ID was used verbatim.
	if err := rec.Record(ctx, inv); err == nil {
		t.Error("duplicate explicit ID must fail the unique constraint")
	}
}
