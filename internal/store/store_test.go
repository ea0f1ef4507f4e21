package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSessionSaveAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// Nothing stored yet.
	rows, err := repo.ListByStudent(ctx, "mia", "ms-garcia")
	if err != nil {
		t.Fatalf("list (empty): %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no sessions, got %d", len(rows))
	}

	err = repo.Save(ctx, SessionData{
		SessionID:    "11111111-1111-1111-1111-111111111111",
		StudentID:    "mia",
		ConductedBy:  "ms-garcia",
		Battery:      "core",
		OverallScore: 75,
		Verdicts: []VerdictData{
			{QuestionID: "q1", RawAnswer: "saw", ResponseSecs: 3.2, Correct: false, ErrorType: "reversal", ErrorDetail: "Reversed was as saw"},
			{QuestionID: "q2", RawAnswer: "elephant", ResponseSecs: 5.1, Correct: true},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rows, err = repo.ListByStudent(ctx, "mia", "ms-garcia")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 session, got %d", len(rows))
	}

	row := rows[0]
	if row.OverallScore != 75 {
		t.Errorf("overall score = %v, want 75", row.OverallScore)
	}
	if len(row.Verdicts) != 2 {
		t.Fatalf("verdicts = %d, want 2", len(row.Verdicts))
	}
	if row.Verdicts[0].ErrorType != "reversal" {
		t.Errorf("verdict[0].ErrorType = %q, want %q", row.Verdicts[0].ErrorType, "reversal")
	}
	if !row.Verdicts[1].Correct {
		t.Error("verdict[1] should be correct")
	}
	if row.Sequence == 0 {
		t.Error("expected a non-zero sequence")
	}
}

func TestSessionListFiltersByStudentAndAdministrator(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	saves := []SessionData{
		{SessionID: "a", StudentID: "mia", ConductedBy: "ms-garcia", OverallScore: 60},
		{SessionID: "b", StudentID: "mia", ConductedBy: "mr-chen", OverallScore: 70},
		{SessionID: "c", StudentID: "leo", ConductedBy: "ms-garcia", OverallScore: 80},
	}
	for _, data := range saves {
		if err := repo.Save(ctx, data); err != nil {
			t.Fatalf("save %s: %v", data.SessionID, err)
		}
	}

	rows, err := repo.ListByStudent(ctx, "mia", "ms-garcia")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 session, got %d", len(rows))
	}
	if rows[0].SessionID != "a" {
		t.Errorf("session id = %q, want %q", rows[0].SessionID, "a")
	}

	// Empty administrator matches all of a student's sessions.
	rows, err = repo.ListByStudent(ctx, "mia", "")
	if err != nil {
		t.Fatalf("list any: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(rows))
	}
}

func TestSessionScoresOrdered(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	for i, score := range []float64{60, 75, 90} {
		err := repo.Save(ctx, SessionData{
			SessionID:    string(rune('a' + i)),
			StudentID:    "mia",
			ConductedBy:  "ms-garcia",
			OverallScore: score,
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	scores, err := repo.Scores(ctx, "mia", "ms-garcia")
	if err != nil {
		t.Fatalf("scores: %v", err)
	}
	want := []float64{60, 75, 90}
	if len(scores) != len(want) {
		t.Fatalf("scores = %v, want %v", scores, want)
	}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("scores[%d] = %v, want %v", i, scores[i], want[i])
		}
	}
}

func TestSessionDeleteAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, SessionData{
			SessionID:   string(rune('a' + i)),
			StudentID:   "mia",
			ConductedBy: "ms-garcia",
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	n, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted = %d, want 3", n)
	}

	rows, err := repo.ListByStudent(ctx, "mia", "ms-garcia")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected empty store, got %d sessions", len(rows))
	}
}

func TestAppendAndQueryTranscriptions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []TranscriptionEventData{
		{Provider: "openai", Model: "whisper-1", AudioBytes: 2048, TextLen: 12, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "whisper-1", AudioBytes: 4096, LatencyMs: 120, Success: false, ErrorMessage: "rate limited"},
		{Provider: "gemini", Model: "gemini-2.0-flash", AudioBytes: 1024, TextLen: 8, LatencyMs: 500, Success: true},
	}
	for i, data := range events {
		if err := repo.AppendTranscription(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryTranscriptions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}

	// Newest first.
	if records[0].Provider != "gemini" {
		t.Errorf("records[0].Provider = %q, want %q", records[0].Provider, "gemini")
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", records[0].Sequence, records[1].Sequence)
	}

	limited, err := repo.QueryTranscriptions(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited records = %d, want 1", len(limited))
	}
}

func TestTranscriptionUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []TranscriptionEventData{
		{Provider: "openai", Model: "whisper-1", AudioBytes: 100, LatencyMs: 200, Success: true},
		{Provider: "openai", Model: "whisper-1", AudioBytes: 300, LatencyMs: 400, Success: false, ErrorMessage: "boom"},
		{Provider: "gemini", Model: "gemini-2.0-flash", AudioBytes: 50, LatencyMs: 100, Success: true},
	}
	for i, data := range events {
		if err := repo.AppendTranscription(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.TranscriptionUsage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage pairs = %d, want 2", len(usage))
	}

	var whisper *TranscriptionUsage
	for i := range usage {
		if usage[i].Model == "whisper-1" {
			whisper = &usage[i]
		}
	}
	if whisper == nil {
		t.Fatal("missing whisper-1 usage")
	}
	if whisper.Calls != 2 {
		t.Errorf("calls = %d, want 2", whisper.Calls)
	}
	if whisper.Failures != 1 {
		t.Errorf("failures = %d, want 1", whisper.Failures)
	}
	if whisper.AudioBytes != 400 {
		t.Errorf("audio bytes = %d, want 400", whisper.AudioBytes)
	}
	if whisper.AvgLatency != 300 {
		t.Errorf("avg latency = %d, want 300", whisper.AvgLatency)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"session_records", "transcription_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
