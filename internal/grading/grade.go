package grading

import "strconv"

// GradeKind distinguishes a real level score from the fallback and
// ungraded sentinels.
type GradeKind string

const (
	// GradeUngraded means no attempt cell on the row is filled.
	GradeUngraded GradeKind = "ungraded"
	// GradeNoneCorrect means attempts exist but none counted toward mastery.
	GradeNoneCorrect GradeKind = "none-correct"
	// GradeSomeCorrect means some attempts counted but no streak threshold was met.
	GradeSomeCorrect GradeKind = "some-correct"
	// GradeLevel means a level's streak threshold was met; Score is that level's score.
	GradeLevel GradeKind = "level"
)

// Grade is the outcome of evaluating one student-skill row.
type Grade struct {
	Kind  GradeKind
	Score float64
}

// Numeric returns the grade's numeric value. Ungraded rows have none;
// the fallback sentinels carry their configured scores and do count in
// averages, exactly like the 0/1 cells they produce in the gradebook.
func (g Grade) Numeric() (float64, bool) {
	if g.Kind == GradeUngraded {
		return 0, false
	}
	return g.Score, true
}

// Display renders the grade the way the gradebook shows it: "-" for
// ungraded rows, the numeric score otherwise.
func (g Grade) Display() string {
	if g.Kind == GradeUngraded {
		return "-"
	}
	return strconv.FormatFloat(g.Score, 'f', -1, 64)
}

func ungraded() Grade { return Grade{Kind: GradeUngraded} }

func noneCorrect(fb Fallbacks) Grade {
	return Grade{Kind: GradeNoneCorrect, Score: fb.NoneCorrectScore}
}

func someCorrect(fb Fallbacks) Grade {
	return Grade{Kind: GradeSomeCorrect, Score: fb.SomeCorrectScore}
}

func levelScore(score float64) Grade {
	return Grade{Kind: GradeLevel, Score: score}
}
