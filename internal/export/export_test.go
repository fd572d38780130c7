package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"focusflow/internal/store"
)

func sampleSessions() []store.StudySession {
	ts := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return []store.StudySession{
		{ID: 1, Minutes: 25, Type: store.SessionWork, Timestamp: ts},
		{ID: 2, Minutes: 5, Type: store.SessionShortBreak, Timestamp: ts.Add(25 * time.Minute)},
		{ID: 3, Minutes: 25, Type: store.SessionWork, Timestamp: ts.Add(time.Hour)},
	}
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.csv")
	if err := ToCSV(sampleSessions(), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 { // header + 3 sessions
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" {
		t.Fatalf("missing header: %v", rows[0])
	}
	if rows[1][1] != store.SessionWork || rows[1][2] != "25" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
}

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	if err := ToJSON(sampleSessions(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var out jsonExport
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 3 {
		t.Fatalf("expected count 3, got %d", out.Count)
	}
	if out.WorkMinutes != 50 {
		t.Fatalf("expected 50 work minutes, got %d", out.WorkMinutes)
	}
	if len(out.Sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(out.Sessions))
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := ToCSV(nil, path); err != nil {
		t.Fatal(err)
	}
	f, _ := os.Open(path)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
