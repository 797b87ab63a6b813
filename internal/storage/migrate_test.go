package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}

	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	store, err := NewSQLiteStore(db, zerolog.Nop())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	owner, err := store.CreateUser(context.Background(), "roundtrip", "pw")
	if err != nil {
		t.Fatalf("create user after roundtrip failed: %v", err)
	}

	deadline := time.Date(2024, 12, 25, 23, 30, 0, 0, time.UTC)
	id, err := store.InsertTask(context.Background(), Task{
		OwnerID:     owner,
		Title:       "Roundtrip task",
		Priority:    "Medium",
		DeadlineStr: "25/12/2024 11:30 PM",
		Deadline:    deadline,
		Duration:    15,
	})
	if err != nil {
		t.Fatalf("insert after roundtrip failed: %v", err)
	}

	got, err := store.GetTask(context.Background(), owner, id)
	if err != nil {
		t.Fatalf("get after roundtrip failed: %v", err)
	}
	if got.Title != "Roundtrip task" {
		t.Fatalf("unexpected title after roundtrip: %q", got.Title)
	}
}
