package storage

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)
	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("Expected schema version 1, got %d", version)
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	id, err := repo.Create(3, "Lx Ry' GO")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s == nil {
		t.Fatal("Created session should be retrievable")
	}
	if s.Difficulty != 3 {
		t.Errorf("Expected difficulty 3, got %d", s.Difficulty)
	}
	if s.ScrambleText == nil || *s.ScrambleText != "Lx Ry' GO" {
		t.Errorf("Scramble text mismatch: %v", s.ScrambleText)
	}
	if s.EndedAt != nil {
		t.Error("New session should not have an end time")
	}

	if err := repo.Finish(id, 42, true); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	s, err = repo.Get(id)
	if err != nil {
		t.Fatalf("Get after finish failed: %v", err)
	}
	if s.EndedAt == nil || s.DurationMs == nil {
		t.Error("Finished session should have end time and duration")
	}
	if s.MoveCount != 42 || !s.Solved {
		t.Errorf("Finished session should record moves and outcome, got %d/%v", s.MoveCount, s.Solved)
	}
}

func TestSessionGetMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)
	s, err := repo.Get("no-such-id")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s != nil {
		t.Error("Missing session should return nil")
	}
}

func TestSessionGetLast(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	s, err := repo.GetLast()
	if err != nil {
		t.Fatalf("GetLast failed: %v", err)
	}
	if s != nil {
		t.Fatal("Expected nil from an empty database")
	}

	id, err := repo.Create(3, "Lx Ry")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	s, err = repo.GetLast()
	if err != nil {
		t.Fatalf("GetLast failed: %v", err)
	}
	if s == nil || s.SessionID != id {
		t.Errorf("Expected the session just created, got %+v", s)
	}
}

func TestSessionListAndDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := repo.Create(0, "")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		ids = append(ids, id)
	}

	sessions, err := repo.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(sessions))
	}

	if err := repo.Delete(ids[0]); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	sessions, err = repo.List(10)
	if err != nil {
		t.Fatalf("List after delete failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("Expected 2 sessions after delete, got %d", len(sessions))
	}
}
