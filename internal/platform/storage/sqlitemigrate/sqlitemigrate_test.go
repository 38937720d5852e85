package sqlitemigrate

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyCreatesTablesAndRecords(t *testing.T) {
	db := openInMemoryDB(t)

	fsys := fstest.MapFS{
		"0001_accounts.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE accounts(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE accounts;"),
		},
	}

	if err := Apply(db, fsys); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Fatalf("expected 1 migration row, got %d", got)
	}
	if _, err := db.Exec("INSERT INTO accounts(id) VALUES ('a')"); err != nil {
		t.Fatalf("expected accounts table to exist: %v", err)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openInMemoryDB(t)

	fsys := fstest.MapFS{
		"0001_accounts.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE accounts(id TEXT PRIMARY KEY);"),
		},
	}

	if err := Apply(db, fsys); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := Apply(db, fsys); err != nil {
		t.Fatalf("re-apply should be idempotent: %v", err)
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Fatalf("expected single migration row after replay, got %d", got)
	}
}

func TestApplyOrdersFilesLexically(t *testing.T) {
	db := openInMemoryDB(t)

	fsys := fstest.MapFS{
		"0002_index.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE INDEX idx_accounts_id ON accounts(id);"),
		},
		"0001_accounts.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE accounts(id TEXT PRIMARY KEY);"),
		},
	}

	if err := Apply(db, fsys); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 2 {
		t.Fatalf("expected 2 migration rows, got %d", got)
	}
}

func TestExtractUpMigration(t *testing.T) {
	content := "-- +migrate Up\nCREATE TABLE x(id TEXT);\n-- +migrate Down\nDROP TABLE x;"
	got := ExtractUpMigration(content)
	if got != "\nCREATE TABLE x(id TEXT);\n" {
		t.Fatalf("unexpected up section: %q", got)
	}
	if ExtractUpMigration("CREATE TABLE y(id TEXT);") != "CREATE TABLE y(id TEXT);" {
		t.Fatal("expected content without markers to pass through")
	}
}

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close sqlite: %v", err)
		}
	})
	return db
}

func queryInt64(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var value int64
	if err := db.QueryRow(query).Scan(&value); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return value
}
