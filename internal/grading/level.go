package grading

// Level is one proficiency tier. Levels are an ordered list: a higher
// index is a higher level, and order decides priority when more than
// one level's streak threshold is met.
type Level struct {
	Name            string
	ShortCode       string
	RequiredStreak  int
	Score           float64
	DefaultAttempts int
}

// Fallbacks holds the configured scores used when attempts exist but
// no level's streak threshold is met.
type Fallbacks struct {
	NoneCorrectScore float64
	SomeCorrectScore float64
}

// DefaultLevels mirrors the seed configuration: three tiers, each
// requiring a streak of two, scored 2-4, five attempt slots apiece.
func DefaultLevels() []Level {
	return []Level{
		{Name: "Basic", ShortCode: "B", RequiredStreak: 2, Score: 2, DefaultAttempts: 5},
		{Name: "Intermediate", ShortCode: "I", RequiredStreak: 2, Score: 3, DefaultAttempts: 5},
		{Name: "Mastery", ShortCode: "M", RequiredStreak: 2, Score: 4, DefaultAttempts: 5},
	}
}

// DefaultFallbacks returns the seed fallback scores.
func DefaultFallbacks() Fallbacks {
	return Fallbacks{NoneCorrectScore: 0, SomeCorrectScore: 1}
}

// DefaultSymbols returns the seed symbol table: plain and annotated
// successes ("1", "1o" orally, "1s" with support) plus the miss
// markers teachers type in practice.
func DefaultSymbols() []Symbol {
	return []Symbol{
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
	}
}
