package grading

import "strings"

// Symbol maps one typed attempt character to its mastery bit and the
// glyph used when displaying the attempt to students.
type Symbol struct {
	Character string
	Mastery   bool
	Glyph     string
}

// SymbolTable is the immutable per-run lookup from attempt characters
// to symbols. Unknown characters count as non-mastery, not as errors:
// teachers type freely and validation is warn-only at entry time.
type SymbolTable struct {
	byChar map[string]Symbol
}

// NewSymbolTable builds a table from the configured symbols. Later
// duplicates of the same character are ignored.
func NewSymbolTable(symbols []Symbol) *SymbolTable {
	t := &SymbolTable{byChar: make(map[string]Symbol, len(symbols))}
	for _, s := range symbols {
		if s.Character == "" {
			continue
		}
		if _, ok := t.byChar[s.Character]; ok {
			continue
		}
		t.byChar[s.Character] = s
	}
	return t
}

// MasteryBit returns '1' if the character counts toward mastery,
// otherwise '0' (including for unknown characters).
func (t *SymbolTable) MasteryBit(char string) byte {
	if s, ok := t.byChar[char]; ok && s.Mastery {
		return '1'
	}
	return '0'
}

// Glyph returns the display glyph for a character, or "-" when the
// character is not configured.
func (t *SymbolTable) Glyph(char string) string {
	if s, ok := t.byChar[char]; ok && s.Glyph != "" {
		return s.Glyph
	}
	return "-"
}

// Known reports whether the character is in the table.
func (t *SymbolTable) Known(char string) bool {
	_, ok := t.byChar[char]
	return ok
}

// Symbols returns the configured symbols in unspecified order.
func (t *SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(t.byChar))
	for _, s := range t.byChar {
		out = append(out, s)
	}
	return out
}

// NormalizeAttempt cleans up a typed attempt the way teachers expect:
// whitespace trimmed, "0" aliased to "N", a leading "1" keeps its
// optional lowercase suffix, anything else is uppercased.
func NormalizeAttempt(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if s == "0" {
		return "N"
	}
	if s[0] == '1' && len(s) <= 2 {
		if len(s) == 1 {
			return "1"
		}
		c := s[1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return "1" + strings.ToLower(s[1:])
		}
	}
	return strings.ToUpper(s)
}
