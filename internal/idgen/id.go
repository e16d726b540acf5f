// Package idgen builds deterministic SIS identifiers and display titles
// for assignments. The same class, unit, and skill always produce the
// same identifier, so re-running creation is idempotent.
package idgen

import (
	"strconv"
	"strings"
)

// Sanitization caps for the unit and skill components of an identifier.
const (
	unitCap  = 40
	skillCap = 60

	// Identifiers longer than this get rebuilt with tighter caps, and
	// as a last resort collapse to a pure hash form.
	idCap = 200
)

// Hash returns a compact base-36 digest of s. The rolling hash is
// forced through signed 32-bit wraparound so the result is stable
// across platforms.
func Hash(s string) string {
	var h int32
	for _, c := range s {
		h = (h << 5) - h + c
	}
	// Absolute value in int64: negating math.MinInt32 in int32 stays
	// negative and would leak a "-" into the identifier.
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}

// Sanitize rewrites s into the identifier-safe charset. Whitespace
// becomes underscores and punctuation becomes spelled-out tokens so
// that distinct inputs stay distinct. Results longer than maxLen are
// truncated with a hash suffix to preserve uniqueness.
func Sanitize(s string, maxLen int) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			b.WriteByte('_')
		case c == '.':
			b.WriteString("DOT")
		case c == ':':
			b.WriteString("COLON")
		case c == '-':
			b.WriteString("DASH")
		case c == '/':
			b.WriteString("SLASH")
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_':
			b.WriteRune(c)
		default:
			b.WriteByte('X')
		}
	}
	clean := collapseUnderscores(b.String())
	clean = strings.Trim(clean, "_")
	if len(clean) > maxLen {
		h := Hash(s)
		if len(h) > 6 {
			h = h[:6]
		}
		clean = clean[:maxLen-7] + "_" + h
	}
	return clean
}

func collapseUnderscores(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prev := false
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			if prev {
				continue
			}
			prev = true
		} else {
			prev = false
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// BuildAssignmentID derives the canonical identifier for a class, unit
// and skill. The identifier embeds sanitized unit and skill names plus
// a hash of the raw pair, and degrades to shorter forms when the
// combination would exceed the length cap.
func BuildAssignmentID(classID, unit, skill string) string {
	h := Hash(unit + "|||" + skill)
	id := classID + "_" + Sanitize(unit, unitCap) + "_" + Sanitize(skill, skillCap) + "_H" + h
	if len(id) <= idCap {
		return id
	}

	// Tighter caps with a longer hash to compensate for the lost text.
	longHash := Hash(unit + "|||" + skill + classID)
	if len(longHash) > 12 {
		longHash = longHash[:12]
	}
	id = classID + "_" + Sanitize(unit, 20) + "_" + Sanitize(skill, 30) + "_H" + longHash
	if len(id) <= idCap {
		return id
	}

	// Pathological class ids: keep only the hash.
	return classID + "_AUTO_" + Hash(classID+"_"+unit+"|||"+skill)
}

// BuildResultID derives the identifier for a score posted for one
// student on one assignment. The timestamp suffix keeps re-posts
// distinct on the SIS side.
func BuildResultID(assignmentID, studentID string, unixMillis int64) string {
	return assignmentID + "_" + studentID + "_" + strconv.FormatInt(unixMillis, 10)
}
