package grading

import "testing"

// demoSymbols is the richer symbol set teachers actually configure:
// plain and annotated successes plus a range of miss markers.
func demoSymbols() *SymbolTable {
	return NewSymbolTable([]Symbol{
		{Character: "1", Mastery: true, Glyph: "✅"},
		{Character: "1o", Mastery: true, Glyph: "🟢"},
		{Character: "1s", Mastery: true, Glyph: "🟡"},
		{Character: "X", Mastery: false, Glyph: "❌"},
		{Character: "Xo", Mastery: false, Glyph: "⭕"},
		{Character: "Xs", Mastery: false, Glyph: "🔸"},
		{Character: "P", Mastery: false, Glyph: "🅿️"},
		{Character: "G", Mastery: false, Glyph: "🌀"},
		{Character: "H", Mastery: false, Glyph: "🤝"},
		{Character: "N", Mastery: false, Glyph: "⬜"},
	})
}

func TestStreak(t *testing.T) {
	tests := []struct {
		bits string
		want int
	}{
		{"", 0},
		{"0", 0},
		{"1", 1},
		{"0110", 2},
		{"011101", 3},
		{"11011", 2},
		{"111", 3},
		{"010101", 1},
	}
	for _, tt := range tests {
		if got := Streak(tt.bits); got != tt.want {
			t.Errorf("Streak(%q) = %d, want %d", tt.bits, got, tt.want)
		}
	}
}

func TestBitstringSkipsBlanks(t *testing.T) {
	symbols := demoSymbols()
	// A blank mid-sequence is excluded, not treated as a failure, so
	// the two successes around it still form a streak of two.
	bits := Bitstring([]string{"1", "", "1", "X"}, symbols)
	if bits != "110" {
		t.Fatalf("Bitstring = %q, want %q", bits, "110")
	}
	if got := Streak(bits); got != 2 {
		t.Fatalf("Streak = %d, want 2", got)
	}
}

func TestBitstringUnknownSymbol(t *testing.T) {
	symbols := demoSymbols()
	if bits := Bitstring([]string{"1", "??", "1"}, symbols); bits != "101" {
		t.Fatalf("Bitstring = %q, want %q", bits, "101")
	}
}

func TestEvaluate(t *testing.T) {
	symbols := demoSymbols()
	levels := DefaultLevels() // B:2→2, I:2→3, M:2→4
	fb := DefaultFallbacks()

	tests := []struct {
		name     string
		attempts map[string][]string
		want     Grade
	}{
		{
			name:     "no attempts anywhere",
			attempts: map[string][]string{"B": {"", "", ""}, "I": {}, "M": nil},
			want:     Grade{Kind: GradeUngraded},
		},
		{
			name:     "all misses",
			attempts: map[string][]string{"B": {"X", "X", "X", "X", "X"}},
			want:     Grade{Kind: GradeNoneCorrect, Score: 0},
		},
		{
			name:     "mixed miss markers",
			attempts: map[string][]string{"B": {"X", "P", "G", "H", "N"}},
			want:     Grade{Kind: GradeNoneCorrect, Score: 0},
		},
		{
			name:     "isolated successes only",
			attempts: map[string][]string{"B": {"X", "1", "X", "1o", "X"}},
			want:     Grade{Kind: GradeSomeCorrect, Score: 1},
		},
		{
			name: "successes scattered across levels without a streak",
			attempts: map[string][]string{
				"B": {"1s", "X", "1", "X", "1o"},
				"I": {"X", "1", "X", "1o", "X"},
			},
			want: Grade{Kind: GradeSomeCorrect, Score: 1},
		},
		{
			name:     "basic streak",
			attempts: map[string][]string{"B": {"X", "X", "1", "1", "X"}},
			want:     Grade{Kind: GradeLevel, Score: 2},
		},
		{
			name: "basic streak but intermediate misses",
			attempts: map[string][]string{
				"B": {"1o", "1s", "1", "1", "X"},
				"I": {"X", "1", "X", "1", "X"},
			},
			want: Grade{Kind: GradeLevel, Score: 2},
		},
		{
			name: "streak at both basic and intermediate",
			attempts: map[string][]string{
				"B": {"1", "1", "X", "1", "X"},
				"I": {"1", "1", "X", "1", "X"},
			},
			want: Grade{Kind: GradeLevel, Score: 3},
		},
		{
			name: "mastery streak wins over lower levels",
			attempts: map[string][]string{
				"B": {"1", "1", "1", "1", "1"},
				"I": {"1", "1", "1", "1", "1"},
				"M": {"1", "1", "1", "1", "1"},
			},
			want: Grade{Kind: GradeLevel, Score: 4},
		},
		{
			name: "mastery streak with empty basic row",
			attempts: map[string][]string{
				"B": {"", "", "", "", ""},
				"I": {"1", "X", "G", "1s", "X"},
				"M": {"H", "G", "P", "1o", "1s"},
			},
			want: Grade{Kind: GradeLevel, Score: 4},
		},
		{
			name: "blanks inside mastery row do not break the streak",
			attempts: map[string][]string{
				"M": {"1", "", "1", "X"},
			},
			want: Grade{Kind: GradeLevel, Score: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.attempts, symbols, levels, fb)
			if got != tt.want {
				t.Errorf("Evaluate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Appending further successes to an already-qualifying bitstring never
// lowers the streak.
func TestStreakMonotonic(t *testing.T) {
	bits := "11"
	prev := Streak(bits)
	for i := 0; i < 20; i++ {
		bits += "1"
		cur := Streak(bits)
		if cur < prev {
			t.Fatalf("streak decreased from %d to %d at %q", prev, cur, bits)
		}
		prev = cur
	}
}

func TestHighestLevelWins(t *testing.T) {
	symbols := NewSymbolTable([]Symbol{{Character: "1", Mastery: true, Glyph: "✅"}})
	levels := []Level{
		{Name: "Basic", ShortCode: "B", RequiredStreak: 2, Score: 2},
		{Name: "Intermediate", ShortCode: "I", RequiredStreak: 2, Score: 3},
		{Name: "Mastery", ShortCode: "M", RequiredStreak: 2, Score: 4},
	}
	got := Evaluate(map[string][]string{
		"B": {"1", "1"},
		"M": {"1", "1"},
	}, symbols, levels, DefaultFallbacks())
	if got.Kind != GradeLevel || got.Score != 4 {
		t.Fatalf("Evaluate = %+v, want mastery score 4", got)
	}
}

func TestGradeDisplay(t *testing.T) {
	tests := []struct {
		grade Grade
		want  string
	}{
		{Grade{Kind: GradeUngraded}, "-"},
		{Grade{Kind: GradeNoneCorrect, Score: 0}, "0"},
		{Grade{Kind: GradeSomeCorrect, Score: 1}, "1"},
		{Grade{Kind: GradeLevel, Score: 3.5}, "3.5"},
	}
	for _, tt := range tests {
		if got := tt.grade.Display(); got != tt.want {
			t.Errorf("Display(%+v) = %q, want %q", tt.grade, got, tt.want)
		}
	}
}

func TestNormalizeAttempt(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{" 1 ", "1"},
		{"0", "N"},
		{"1o", "1o"},
		{"1S", "1s"},
		{"pc", "PC"},
		{"xo", "XO"},
		{"h", "H"},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeAttempt(tt.raw); got != tt.want {
			t.Errorf("NormalizeAttempt(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
