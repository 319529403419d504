// Task 3.1 tests: migration runner.
package sqlite

import "testing"

func TestMigrateUp_AppliesAndIsIdempotent(t *testing.T) {
	db, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}

	version, err := MigrationVersion(db)
	if err != nil {
		t.Fatalf("MigrationVersion: %v", err)
	}
	if version < 1 {
		t.Errorf("version = %d, want >= 1", version)
	}

	// Running again must be a no-op.
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second MigrateUp: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count < 1 {
		t.Errorf("schema_migrations count = %d, want >= 1", count)
	}

	// The invocation_log table must exist after migrating.
	if _, err := db.Exec("INSERT INTO invocation_log (id, tool, outcome, duration_ms, created_at) VALUES ('x', 'list_objects', 'success', 3, datetime('now'))"); err != nil {
		t.Errorf("insert into invocation_log: %v", err)
	}
}

func TestMigrationVersion_EmptyDB(t *testing.T) {
	db, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	defer db.Close()

	version, err := MigrationVersion(db)
	if err != nil {
		t.Fatalf("MigrationVersion: %v", err)
	}
	if version != 0 {
		t.Errorf("version = %d, want 0", version)
	}
}
