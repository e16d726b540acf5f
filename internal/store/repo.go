package store

import (
	"context"
	"time"

	"github.com/thinkle/sbgsync/internal/grading"
)

// Student is a gradebook roster entry.
type Student struct {
	ID        int
	Email     string
	FirstName string
	LastName  string
}

// Skill is a gradable learning target within a unit.
type Skill struct {
	ID         int
	Unit       string
	Number     string
	Descriptor string
}

// GradeRow holds one student's attempts for one skill, keyed by level
// short code.
type GradeRow struct {
	ID           int
	StudentEmail string
	Unit         string
	SkillNumber  string
	Descriptor   string
	Attempts     map[string][]string
}

// Assignment is a registry row tying a unit/skill pair to its SIS line
// item. ExternalID is empty while the row is only staged locally.
type Assignment struct {
	ID         int
	ClassID    string
	Unit       string
	Skill      string
	ExternalID string
	Title      string
	Category   string
	DueDate    time.Time
	MinValue   float64
	MaxValue   float64
	CreatedAt  time.Time
	Payload    map[string]any
}

// SyncedGrade is one ledger entry: the last score and comment posted
// to the SIS for a student on an assignment.
type SyncedGrade struct {
	ID           int
	StudentID    string
	AssignmentID string
	Score        string
	Comment      string
	SyncedAt     time.Time
}

// ClassConfig is one linked SIS class section and its grading defaults.
type ClassConfig struct {
	ID              int
	ClassID         string
	ClassTitle      string
	CourseID        string
	CategoryID      string
	CategoryTitle   string
	GradingPeriodID string
	Active          bool
}

// RosterStudent is a mirrored SIS enrollment.
type RosterStudent struct {
	ID         int
	ClassID    string
	SourcedID  string
	Email      string
	GivenName  string
	FamilyName string
}

// APICallData captures one SIS API call for the audit log.
type APICallData struct {
	RunID        string
	Method       string
	Endpoint     string
	Status       int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// GradingConfigRepo manages the symbol and level tables and fallback
// scores that drive mastery evaluation.
type GradingConfigRepo interface {
	// Seed installs the given configuration wherever the current one
	// is empty. Existing symbols and levels are left alone.
	Seed(ctx context.Context, symbols []grading.Symbol, levels []grading.Level, fb grading.Fallbacks) error

	Symbols(ctx context.Context) ([]grading.Symbol, error)
	Levels(ctx context.Context) ([]grading.Level, error)
	Fallbacks(ctx context.Context) (grading.Fallbacks, error)
}

// GradebookRepo manages students, skills, and the attempt grid.
type GradebookRepo interface {
	AddStudent(ctx context.Context, s Student) error
	Students(ctx context.Context) ([]Student, error)

	AddSkill(ctx context.Context, sk Skill) error
	Skills(ctx context.Context) ([]Skill, error)

	// EnsureRows creates a grade row for every student/skill pair that
	// doesn't have one yet, and returns how many were created.
	EnsureRows(ctx context.Context) (int, error)

	Rows(ctx context.Context) ([]GradeRow, error)
	RowsForStudent(ctx context.Context, email string) ([]GradeRow, error)

	// RecordAttempt appends a normalized mark to the row's attempt
	// list for the given level.
	RecordAttempt(ctx context.Context, rowID int, levelCode, mark string) error
}

// AssignmentRepo manages the assignment registry.
type AssignmentRepo interface {
	// Upsert inserts or refreshes the row keyed by (class, unit, skill)
	// and reports whether a new row was created.
	Upsert(ctx context.Context, a Assignment) (created bool, err error)

	// Find returns the row for a class/unit/skill triple, or nil.
	Find(ctx context.Context, classID, unit, skill string) (*Assignment, error)

	All(ctx context.Context, classID string) ([]Assignment, error)

	// Pending returns staged rows that have no SIS line item yet.
	Pending(ctx context.Context, classID string) ([]Assignment, error)

	// MarkCreated records the SIS identifier and payload after the
	// line item exists remotely.
	MarkCreated(ctx context.Context, id int, externalID string, payload map[string]any) error
}

// LedgerRepo manages the grade sync ledger.
type LedgerRepo interface {
	// Get returns the ledger entry for a student/assignment pair, or
	// nil if the grade has never been synced.
	Get(ctx context.Context, studentID, assignmentID string) (*SyncedGrade, error)

	// Put records a successful post, replacing any earlier entry for
	// the same pair.
	Put(ctx context.Context, g SyncedGrade) error

	All(ctx context.Context) ([]SyncedGrade, error)
}

// ClassRepo manages linked class sections and their roster mirrors.
type ClassRepo interface {
	SaveClass(ctx context.Context, c ClassConfig) error
	Class(ctx context.Context, classID string) (*ClassConfig, error)
	Classes(ctx context.Context) ([]ClassConfig, error)

	// ReplaceRoster swaps the mirrored enrollments for a class.
	ReplaceRoster(ctx context.Context, classID string, students []RosterStudent) error
	Roster(ctx context.Context, classID string) ([]RosterStudent, error)

	// RosterByEmail looks a student up across all mirrored rosters.
	RosterByEmail(ctx context.Context, email string) (*RosterStudent, error)
}

// EventRepo provides append access to the API audit log.
type EventRepo interface {
	AppendAPICall(ctx context.Context, data APICallData) error
}
