package store

import (
	"context"
	"testing"
	"time"

	"github.com/thinkle/sbgsync/internal/grading"
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

func TestGradingConfigSeed(t *testing.T) {
	s := openTestStore(t)
	repo := s.GradingConfigRepo()
	ctx := context.Background()

	if err := repo.Seed(ctx, grading.DefaultSymbols(), grading.DefaultLevels(), grading.DefaultFallbacks()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	levels, err := repo.Levels(ctx)
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	if len(levels) != 3 {
		t.Fatalf("got %d levels, want 3", len(levels))
	}
	// Position ordering must survive the round trip.
	if levels[0].ShortCode != "B" || levels[2].ShortCode != "M" {
		t.Errorf("level order = %q..%q, want B..M", levels[0].ShortCode, levels[2].ShortCode)
	}

	fb, err := repo.Fallbacks(ctx)
	if err != nil {
		t.Fatalf("fallbacks: %v", err)
	}
	if fb.NoneCorrectScore != 0 || fb.SomeCorrectScore != 1 {
		t.Errorf("fallbacks = %+v, want 0/1", fb)
	}

	// Seeding again must not duplicate.
	if err := repo.Seed(ctx, grading.DefaultSymbols(), grading.DefaultLevels(), grading.DefaultFallbacks()); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	symbols, err := repo.Symbols(ctx)
	if err != nil {
		t.Fatalf("symbols: %v", err)
	}
	if len(symbols) != len(grading.DefaultSymbols()) {
		t.Errorf("got %d symbols after re-seed, want %d", len(symbols), len(grading.DefaultSymbols()))
	}
}

func TestEnsureRowsIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.GradebookRepo()
	ctx := context.Background()

	for _, email := range []string{"ada@school.org", "bob@school.org"} {
		if err := repo.AddStudent(ctx, Student{Email: email}); err != nil {
			t.Fatalf("add student: %v", err)
		}
	}
	for _, sk := range []Skill{
		{Unit: "Unit 1", Number: "1.1", Descriptor: "Solve linear equations"},
		{Unit: "Unit 1", Number: "1.2", Descriptor: "Graph linear equations"},
		{Unit: "Unit 2", Number: "2.1", Descriptor: "Factor quadratics"},
	} {
		if err := repo.AddSkill(ctx, sk); err != nil {
			t.Fatalf("add skill: %v", err)
		}
	}

	created, err := repo.EnsureRows(ctx)
	if err != nil {
		t.Fatalf("ensure rows: %v", err)
	}
	if created != 6 {
		t.Errorf("created = %d, want 6", created)
	}

	// Second pass creates nothing.
	created, err = repo.EnsureRows(ctx)
	if err != nil {
		t.Fatalf("ensure rows again: %v", err)
	}
	if created != 0 {
		t.Errorf("created on second pass = %d, want 0", created)
	}

	// Adding a student afterwards only fills the new gap.
	if err := repo.AddStudent(ctx, Student{Email: "cat@school.org"}); err != nil {
		t.Fatalf("add student: %v", err)
	}
	created, err = repo.EnsureRows(ctx)
	if err != nil {
		t.Fatalf("ensure rows after add: %v", err)
	}
	if created != 3 {
		t.Errorf("created after new student = %d, want 3", created)
	}
}

func TestAddStudentDuplicate(t *testing.T) {
	s := openTestStore(t)
	repo := s.GradebookRepo()
	ctx := context.Background()

	if err := repo.AddStudent(ctx, Student{Email: "ada@school.org"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.AddStudent(ctx, Student{Email: "ada@school.org"}); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	students, err := repo.Students(ctx)
	if err != nil {
		t.Fatalf("students: %v", err)
	}
	if len(students) != 1 {
		t.Errorf("got %d students, want 1", len(students))
	}
}

func TestRecordAttempt(t *testing.T) {
	s := openTestStore(t)
	repo := s.GradebookRepo()
	ctx := context.Background()

	if err := repo.AddStudent(ctx, Student{Email: "ada@school.org"}); err != nil {
		t.Fatalf("add student: %v", err)
	}
	if err := repo.AddSkill(ctx, Skill{Unit: "Unit 1", Number: "1.1", Descriptor: "Solve"}); err != nil {
		t.Fatalf("add skill: %v", err)
	}
	if _, err := repo.EnsureRows(ctx); err != nil {
		t.Fatalf("ensure rows: %v", err)
	}

	rows, err := repo.Rows(ctx)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	id := rows[0].ID
	for _, mark := range []string{"X", "1", "1"} {
		if err := repo.RecordAttempt(ctx, id, "B", mark); err != nil {
			t.Fatalf("record attempt: %v", err)
		}
	}
	if err := repo.RecordAttempt(ctx, id, "M", "1"); err != nil {
		t.Fatalf("record attempt: %v", err)
	}

	rows, err = repo.RowsForStudent(ctx, "ada@school.org")
	if err != nil {
		t.Fatalf("rows for student: %v", err)
	}
	got := rows[0].Attempts
	if len(got["B"]) != 3 || got["B"][0] != "X" || got["B"][2] != "1" {
		t.Errorf("B attempts = %v, want [X 1 1]", got["B"])
	}
	if len(got["M"]) != 1 {
		t.Errorf("M attempts = %v, want [1]", got["M"])
	}
}

func TestAssignmentUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssignmentRepo()
	ctx := context.Background()

	a := Assignment{
		ClassID:  "class-1",
		Unit:     "Unit 1",
		Skill:    "1.1 Solve",
		Title:    "U1-1.1",
		MinValue: 0,
		MaxValue: 4,
	}
	created, err := repo.Upsert(ctx, a)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if !created {
		t.Error("first upsert should create")
	}

	a.Title = "U1-1.1 revised"
	created, err = repo.Upsert(ctx, a)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if created {
		t.Error("second upsert should update, not create")
	}

	found, err := repo.Find(ctx, "class-1", "Unit 1", "1.1 Solve")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.Title != "U1-1.1 revised" {
		t.Fatalf("find = %+v, want revised title", found)
	}

	missing, err := repo.Find(ctx, "class-1", "Unit 9", "nope")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if missing != nil {
		t.Errorf("find missing = %+v, want nil", missing)
	}
}

func TestAssignmentPendingAndMarkCreated(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssignmentRepo()
	ctx := context.Background()

	for _, skill := range []string{"1.1", "1.2"} {
		_, err := repo.Upsert(ctx, Assignment{
			ClassID: "class-1", Unit: "Unit 1", Skill: skill, Title: "t" + skill, MaxValue: 4,
		})
		if err != nil {
			t.Fatalf("upsert %s: %v", skill, err)
		}
	}

	pending, err := repo.Pending(ctx, "class-1")
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}

	err = repo.MarkCreated(ctx, pending[0].ID, "class-1_Unit_1_1DOT1_Habc", map[string]any{"title": "t1.1"})
	if err != nil {
		t.Fatalf("mark created: %v", err)
	}

	pending, err = repo.Pending(ctx, "class-1")
	if err != nil {
		t.Fatalf("pending after mark: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("pending after mark = %d, want 1", len(pending))
	}
}

func TestLedgerPutGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	entry, err := repo.Get(ctx, "stu-1", "asg-1")
	if err != nil {
		t.Fatalf("get empty: %v", err)
	}
	if entry != nil {
		t.Fatal("expected nil entry before any sync")
	}

	now := time.Now().UTC().Truncate(time.Second)
	if err := repo.Put(ctx, SyncedGrade{StudentID: "stu-1", AssignmentID: "asg-1", Score: "3", Comment: "1.1 Solve: 3", SyncedAt: now}); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Re-posting replaces in place rather than growing the ledger.
	if err := repo.Put(ctx, SyncedGrade{StudentID: "stu-1", AssignmentID: "asg-1", Score: "4", Comment: "1.1 Solve: 4", SyncedAt: now.Add(time.Minute)}); err != nil {
		t.Fatalf("re-put: %v", err)
	}

	entry, err = repo.Get(ctx, "stu-1", "asg-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if entry == nil || entry.Score != "4" {
		t.Fatalf("entry = %+v, want score 4", entry)
	}
	if entry.Comment != "1.1 Solve: 4" {
		t.Errorf("entry comment = %q", entry.Comment)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ledger size = %d, want 1", len(all))
	}
}

func TestReplaceRoster(t *testing.T) {
	s := openTestStore(t)
	repo := s.ClassRepo()
	ctx := context.Background()

	if err := repo.SaveClass(ctx, ClassConfig{ClassID: "class-1", ClassTitle: "Algebra 1", Active: true}); err != nil {
		t.Fatalf("save class: %v", err)
	}

	first := []RosterStudent{
		{SourcedID: "stu-1", Email: "ada@school.org", GivenName: "Ada", FamilyName: "L"},
		{SourcedID: "stu-2", Email: "bob@school.org", GivenName: "Bob", FamilyName: "K"},
	}
	if err := repo.ReplaceRoster(ctx, "class-1", first); err != nil {
		t.Fatalf("replace roster: %v", err)
	}

	// A refresh with a smaller roster drops the missing enrollment.
	second := []RosterStudent{
		{SourcedID: "stu-2", Email: "bob@school.org", GivenName: "Bob", FamilyName: "K"},
	}
	if err := repo.ReplaceRoster(ctx, "class-1", second); err != nil {
		t.Fatalf("replace roster again: %v", err)
	}

	roster, err := repo.Roster(ctx, "class-1")
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	if len(roster) != 1 || roster[0].SourcedID != "stu-2" {
		t.Fatalf("roster = %+v, want only stu-2", roster)
	}

	hit, err := repo.RosterByEmail(ctx, "bob@school.org")
	if err != nil {
		t.Fatalf("roster by email: %v", err)
	}
	if hit == nil || hit.SourcedID != "stu-2" {
		t.Fatalf("roster by email = %+v, want stu-2", hit)
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

func TestAppendAPICall(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAPICall(ctx, APICallData{
		RunID:     "run-1",
		Method:    "PUT",
		Endpoint:  "/lineItems/abc",
		Status:    201,
		LatencyMs: 120,
		Success:   true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := s.Client().APILogEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("events = %d, want 1", n)
	}
}
