package grading

import "strings"

// Bitstring maps one level's attempts to mastery bits in attempt order.
// Blank cells are excluded entirely rather than treated as failures, so
// a skipped attempt never breaks a streak.
func Bitstring(attempts []string, symbols *SymbolTable) string {
	var b strings.Builder
	for _, a := range attempts {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		b.WriteByte(symbols.MasteryBit(a))
	}
	return b.String()
}

// Streak returns the length of the longest run of consecutive '1's in
// a bitstring. An empty bitstring has no streak.
func Streak(bits string) int {
	best := 0
	for _, run := range strings.Split(bits, "0") {
		if len(run) > best {
			best = len(run)
		}
	}
	return best
}

// GlyphString renders one level's attempts as display glyphs, with "-"
// standing in for characters missing from the symbol table.
func GlyphString(attempts []string, symbols *SymbolTable) string {
	var b strings.Builder
	for _, a := range attempts {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		b.WriteString(symbols.Glyph(a))
	}
	return b.String()
}

// Evaluate derives the mastery grade for one student-skill row.
//
// Each level's filled attempts become a bitstring via the symbol table
// (unknown symbols count as non-mastery). A level qualifies when its
// longest run of 1s reaches its required streak; the highest
// qualifying level's score wins. With no qualifying level the grade
// falls back to NoneCorrect (no 1s anywhere) or SomeCorrect, and a row
// with no filled attempts at all is Ungraded.
func Evaluate(attemptsByLevel map[string][]string, symbols *SymbolTable, levels []Level, fb Fallbacks) Grade {
	anyFilled := false
	anyMastery := false
	streaks := make([]int, len(levels))

	for i, lvl := range levels {
		bits := Bitstring(attemptsByLevel[lvl.ShortCode], symbols)
		if bits != "" {
			anyFilled = true
		}
		if strings.Contains(bits, "1") {
			anyMastery = true
		}
		streaks[i] = Streak(bits)
	}

	if !anyFilled {
		return ungraded()
	}

	// Highest level first.
	for i := len(levels) - 1; i >= 0; i-- {
		if streaks[i] >= levels[i].RequiredStreak && levels[i].RequiredStreak > 0 {
			return levelScore(levels[i].Score)
		}
	}

	if !anyMastery {
		return noneCorrect(fb)
	}
	return someCorrect(fb)
}
