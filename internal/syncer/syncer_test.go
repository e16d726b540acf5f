package syncer

import (
	"context"
	"strings"
	"testing"

	"github.com/thinkle/sbgsync/internal/grading"
	"github.com/thinkle/sbgsync/internal/oneroster"
	"github.com/thinkle/sbgsync/internal/registry"
	"github.com/thinkle/sbgsync/internal/snapshot"
	"github.com/thinkle/sbgsync/internal/store"
)

// memLedger is an in-memory LedgerRepo.
type memLedger struct {
	entries map[string]store.SyncedGrade
	puts    int
}

func newMemLedger() *memLedger {
	return &memLedger{entries: map[string]store.SyncedGrade{}}
}

func (m *memLedger) Get(ctx context.Context, studentID, assignmentID string) (*store.SyncedGrade, error) {
	if e, ok := m.entries[studentID+"_"+assignmentID]; ok {
		return &e, nil
	}
	return nil, nil
}

func (m *memLedger) Put(ctx context.Context, g store.SyncedGrade) error {
	m.puts++
	m.entries[g.StudentID+"_"+g.AssignmentID] = g
	return nil
}

func (m *memLedger) All(ctx context.Context) ([]store.SyncedGrade, error) {
	var out []store.SyncedGrade
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out, nil
}

// memClassRepo serves one class and roster.
type memClassRepo struct {
	class  store.ClassConfig
	roster []store.RosterStudent
}

func (m *memClassRepo) SaveClass(ctx context.Context, c store.ClassConfig) error { return nil }
func (m *memClassRepo) Class(ctx context.Context, classID string) (*store.ClassConfig, error) {
	c := m.class
	return &c, nil
}
func (m *memClassRepo) Classes(ctx context.Context) ([]store.ClassConfig, error) {
	return []store.ClassConfig{m.class}, nil
}
func (m *memClassRepo) ReplaceRoster(ctx context.Context, classID string, students []store.RosterStudent) error {
	m.roster = students
	return nil
}
func (m *memClassRepo) Roster(ctx context.Context, classID string) ([]store.RosterStudent, error) {
	return m.roster, nil
}
func (m *memClassRepo) RosterByEmail(ctx context.Context, email string) (*store.RosterStudent, error) {
	for _, s := range m.roster {
		if s.Email == email {
			r := s
			return &r, nil
		}
	}
	return nil, nil
}

// memAssignments serves fixed assignment rows.
type memAssignments struct {
	rows []store.Assignment
}

func (m *memAssignments) Upsert(ctx context.Context, a store.Assignment) (bool, error) {
	return false, nil
}
func (m *memAssignments) Find(ctx context.Context, classID, unit, skill string) (*store.Assignment, error) {
	return nil, nil
}
func (m *memAssignments) All(ctx context.Context, classID string) ([]store.Assignment, error) {
	return m.rows, nil
}
func (m *memAssignments) Pending(ctx context.Context, classID string) ([]store.Assignment, error) {
	return nil, nil
}
func (m *memAssignments) MarkCreated(ctx context.Context, id int, externalID string, payload map[string]any) error {
	return nil
}

// countingAPI records result posts.
type countingAPI struct {
	teacher   *oneroster.User
	classes   []oneroster.Class
	lineItems map[string]*oneroster.LineItem
	results   []oneroster.Result
	failNext  bool
}

func (c *countingAPI) TeacherByEmail(ctx context.Context, email string) (*oneroster.User, error) {
	return c.teacher, nil
}
func (c *countingAPI) ClassesForTeacher(ctx context.Context, teacherID string) ([]oneroster.Class, error) {
	return c.classes, nil
}
func (c *countingAPI) StudentsForClass(ctx context.Context, classID string) ([]oneroster.User, error) {
	return nil, nil
}
func (c *countingAPI) LineItemsForClass(ctx context.Context, classID string) ([]oneroster.LineItem, error) {
	return nil, nil
}
func (c *countingAPI) LineItem(ctx context.Context, id string) (*oneroster.LineItem, error) {
	if li, ok := c.lineItems[id]; ok {
		return li, nil
	}
	return nil, &oneroster.APIError{Method: "GET", Endpoint: "/lineItems/" + id, Status: 404, Body: "not found"}
}
func (c *countingAPI) Categories(ctx context.Context, filter string) ([]oneroster.Category, error) {
	return nil, nil
}
func (c *countingAPI) GradingPeriods(ctx context.Context) ([]oneroster.GradingPeriod, error) {
	return nil, nil
}
func (c *countingAPI) PutLineItem(ctx context.Context, li oneroster.LineItem) error { return nil }
func (c *countingAPI) PutResult(ctx context.Context, r oneroster.Result) error {
	if c.failNext {
		c.failNext = false
		return &oneroster.APIError{Method: "PUT", Endpoint: "/results/" + r.SourcedID, Status: 500, Body: "boom"}
	}
	c.results = append(c.results, r)
	return nil
}

var testClass = store.ClassConfig{ClassID: "class-1", CategoryID: "cat-1"}

func newTestSyncer(t *testing.T) (*Syncer, *countingAPI, *memLedger) {
	t.Helper()
	api := &countingAPI{
		teacher: &oneroster.User{SourcedID: "t-1", Email: "t@school.org"},
		classes: []oneroster.Class{{SourcedID: "class-1"}},
		lineItems: map[string]*oneroster.LineItem{
			"li-solve": {SourcedID: "li-solve", Class: oneroster.Ref{SourcedID: "class-1"}},
			"li-graph": {SourcedID: "li-graph", Class: oneroster.Ref{SourcedID: "class-1"}},
			"li-avg":   {SourcedID: "li-avg", Class: oneroster.Ref{SourcedID: "class-1"}},
		},
	}
	gate := oneroster.NewAccessGate(api, "t@school.org")
	ledger := newMemLedger()

	s := New(api, gate, ledger, testClass)
	classes := &memClassRepo{
		class: testClass,
		roster: []store.RosterStudent{
			{ClassID: "class-1", SourcedID: "stu-1", Email: "ada@school.org"},
		},
	}
	assignments := &memAssignments{rows: []store.Assignment{
		{ClassID: "class-1", Unit: "Unit 1", Skill: "1.1 Solve", ExternalID: "li-solve", Title: "U1-1.1"},
		{ClassID: "class-1", Unit: "Unit 1", Skill: "1.2 Graph", ExternalID: "li-graph", Title: "U1-1.2"},
		{ClassID: "class-1", Unit: "Unit 1", Skill: registry.UnitAverageSkill, ExternalID: "li-avg", Title: "U1-Avg"},
	}}
	if err := s.Load(context.Background(), classes, assignments); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s, api, ledger
}

func TestMaybeSyncIdempotent(t *testing.T) {
	s, api, ledger := newTestSyncer(t)
	ctx := context.Background()

	synced, err := s.MaybeSync(ctx, "ada@school.org", "Unit 1", "1.1 Solve", 3, "")
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if !synced {
		t.Fatal("first call should post")
	}

	// Identical score: no second remote call.
	synced, err = s.MaybeSync(ctx, "ada@school.org", "Unit 1", "1.1 Solve", 3, "")
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if synced {
		t.Fatal("second call should be a no-op")
	}
	if len(api.results) != 1 {
		t.Fatalf("remote calls = %d, want 1", len(api.results))
	}
	if ledger.puts != 1 {
		t.Fatalf("ledger puts = %d, want 1", ledger.puts)
	}

	// Changed score: posts again and replaces the ledger row.
	synced, err = s.MaybeSync(ctx, "ada@school.org", "Unit 1", "1.1 Solve", 4, "")
	if err != nil {
		t.Fatalf("third sync: %v", err)
	}
	if !synced || len(api.results) != 2 {
		t.Fatalf("changed score should post: synced=%v calls=%d", synced, len(api.results))
	}
	if len(ledger.entries) != 1 {
		t.Fatalf("ledger rows = %d, want 1", len(ledger.entries))
	}
}

func TestMaybeSyncCommentChange(t *testing.T) {
	s, api, ledger := newTestSyncer(t)
	ctx := context.Background()

	// A unit average where the mean holds steady while the per-skill
	// breakdown shifts: one skill up, one down.
	if _, err := s.MaybeSync(ctx, "ada@school.org", "Unit 1", registry.UnitAverageSkill, 3, "1.1 Solve: 2\n1.2 Graph: 4"); err != nil {
		t.Fatalf("first sync: %v", err)
	}

	synced, err := s.MaybeSync(ctx, "ada@school.org", "Unit 1", registry.UnitAverageSkill, 3, "1.1 Solve: 4\n1.2 Graph: 2")
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if !synced || len(api.results) != 2 {
		t.Fatalf("changed comment should post: synced=%v calls=%d", synced, len(api.results))
	}
	if got := api.results[1].Comment; got != "1.1 Solve: 4\n1.2 Graph: 2" {
		t.Errorf("posted comment = %q", got)
	}
	entry := ledger.entries["stu-1_li-avg"]
	if entry.Comment != "1.1 Solve: 4\n1.2 Graph: 2" {
		t.Errorf("ledger comment = %q", entry.Comment)
	}

	// Same score and comment again: no third call.
	synced, err = s.MaybeSync(ctx, "ada@school.org", "Unit 1", registry.UnitAverageSkill, 3, "1.1 Solve: 4\n1.2 Graph: 2")
	if err != nil {
		t.Fatalf("third sync: %v", err)
	}
	if synced || len(api.results) != 2 {
		t.Fatalf("unchanged grade should be a no-op: synced=%v calls=%d", synced, len(api.results))
	}
}

func TestMaybeSyncResultShape(t *testing.T) {
	s, api, _ := newTestSyncer(t)

	if _, err := s.MaybeSync(context.Background(), "ada@school.org", "Unit 1", "1.1 Solve", 2.5, "good progress"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	r := api.results[0]
	if !strings.HasPrefix(r.SourcedID, "li-solve_stu-1_") {
		t.Errorf("result id = %q, want assignment and student prefix", r.SourcedID)
	}
	if r.LineItem.SourcedID != "li-solve" || r.Student.SourcedID != "stu-1" {
		t.Errorf("refs = %+v", r)
	}
	if r.Score != 2.5 || r.Comment != "good progress" {
		t.Errorf("score/comment = %v/%q", r.Score, r.Comment)
	}
}

func TestMaybeSyncUnresolved(t *testing.T) {
	s, api, _ := newTestSyncer(t)
	ctx := context.Background()

	if _, err := s.MaybeSync(ctx, "ghost@school.org", "Unit 1", "1.1 Solve", 3, ""); err == nil {
		t.Fatal("unknown student should fail")
	}
	if _, err := s.MaybeSync(ctx, "ada@school.org", "Unit 9", "9.9 Nope", 3, ""); err == nil {
		t.Fatal("unknown assignment should fail")
	}
	if len(api.results) != 0 {
		t.Fatalf("remote calls = %d, want 0 for unresolved rows", len(api.results))
	}
}

func testSnapshot() *snapshot.Snapshot {
	symbols := grading.NewSymbolTable(grading.DefaultSymbols())
	levels := grading.DefaultLevels()
	fb := grading.DefaultFallbacks()
	rows := []store.GradeRow{
		{StudentEmail: "ada@school.org", Unit: "Unit 1", SkillNumber: "1.1", Descriptor: "Solve",
			Attempts: map[string][]string{"B": {"1", "1"}}},
		{StudentEmail: "ada@school.org", Unit: "Unit 1", SkillNumber: "1.2", Descriptor: "Graph",
			Attempts: map[string][]string{"M": {"1", "1"}}},
		{StudentEmail: "ada@school.org", Unit: "Unit 1", SkillNumber: "1.3", Descriptor: "Factor",
			Attempts: map[string][]string{}},
	}

	snap := &snapshot.Snapshot{Symbols: symbols, Levels: levels, Fallbacks: fb}
	for _, r := range rows {
		snap.Rows = append(snap.Rows, snapshot.Row{
			StudentEmail: r.StudentEmail,
			Unit:         r.Unit,
			SkillNumber:  r.SkillNumber,
			Descriptor:   r.Descriptor,
			Attempts:     r.Attempts,
			Grade:        grading.Evaluate(r.Attempts, symbols, levels, fb),
		})
	}
	return snap
}

func TestSyncSkills(t *testing.T) {
	s, api, _ := newTestSyncer(t)

	sum := s.SyncSkills(context.Background(), testSnapshot())
	// Two graded rows post; the ungraded row is not attempted. There
	// is no registered assignment for 1.3 anyway, but ungraded short-
	// circuits first.
	if sum.Attempted != 2 || sum.Synced != 2 || len(sum.Errors) != 0 {
		t.Fatalf("summary = %+v, want 2 attempted 2 synced", sum)
	}
	if len(api.results) != 2 {
		t.Fatalf("remote calls = %d, want 2", len(api.results))
	}

	// Re-running the whole batch is a no-op.
	sum = s.SyncSkills(context.Background(), testSnapshot())
	if sum.Synced != 0 || sum.Skipped != 2 || len(api.results) != 2 {
		t.Fatalf("second run = %+v with %d calls, want all skipped", sum, len(api.results))
	}
}

func TestSyncSkillsFailForward(t *testing.T) {
	s, api, _ := newTestSyncer(t)
	api.failNext = true

	sum := s.SyncSkills(context.Background(), testSnapshot())
	if len(sum.Errors) != 1 || sum.Synced != 1 {
		t.Fatalf("summary = %+v, want 1 error 1 synced", sum)
	}
	// The failed row was not ledgered, so a retry posts it.
	sum = s.SyncSkills(context.Background(), testSnapshot())
	if sum.Synced != 1 || sum.Skipped != 1 {
		t.Fatalf("retry = %+v, want the failed row synced", sum)
	}
}

func TestSyncUnitAverages(t *testing.T) {
	s, api, _ := newTestSyncer(t)

	sum := s.SyncUnitAverages(context.Background(), testSnapshot())
	if sum.Attempted != 1 || sum.Synced != 1 {
		t.Fatalf("summary = %+v, want 1 synced average", sum)
	}

	r := api.results[0]
	if r.LineItem.SourcedID != "li-avg" {
		t.Errorf("average posted to %q, want li-avg", r.LineItem.SourcedID)
	}
	if r.Score != 3 {
		t.Errorf("average score = %v, want 3", r.Score)
	}
	if !strings.Contains(r.Comment, "1.1 Solve: 2") || !strings.Contains(r.Comment, "1.3 Factor: -") {
		t.Errorf("breakdown comment = %q", r.Comment)
	}
}
