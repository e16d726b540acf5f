package idgen

import (
	"fmt"
	"strings"
	"testing"
)

func TestHashStable(t *testing.T) {
	tests := []struct {
		in string
	}{
		{""},
		{"a"},
		{"Unit 1|||Skill 2"},
		{"Geometry"},
	}
	for _, tt := range tests {
		first := Hash(tt.in)
		for i := 0; i < 3; i++ {
			if got := Hash(tt.in); got != first {
				t.Fatalf("Hash(%q) unstable: %q then %q", tt.in, first, got)
			}
		}
	}
}

func TestHashCharset(t *testing.T) {
	for _, in := range []string{"", "negative forcing input ÿþ", strings.Repeat("z", 300)} {
		h := Hash(in)
		for _, c := range h {
			if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'z')) {
				t.Fatalf("Hash(%q) = %q contains %q", in, h, c)
			}
		}
	}
}

func TestHashInt32Minimum(t *testing.T) {
	// "alxexlnb" rolls to exactly the int32 minimum, whose negation
	// overflows in 32 bits. The absolute value must be taken in 64
	// bits so the digest is 2^31, not a "-"-prefixed string.
	if got := Hash("alxexlnb"); got != "zik0zk" {
		t.Fatalf("Hash(alxexlnb) = %q, want %q", got, "zik0zk")
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Unit 1", "Unit_1"},
		{"a.b", "aDOTb"},
		{"3:2", "3COLON2"},
		{"two-part", "twoDASHpart"},
		{"a/b", "aSLASHb"},
		{"café", "cafX"},
		{"  spaced   out  ", "spaced_out"},
		{"__already__", "already"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in, 50); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeTruncates(t *testing.T) {
	long := strings.Repeat("abc ", 40)
	got := Sanitize(long, 50)
	if len(got) > 50 {
		t.Fatalf("Sanitize result %d chars, want <= 50", len(got))
	}
	// Distinct long inputs must stay distinct through the hash suffix.
	other := Sanitize(long+"tail", 50)
	if got == other {
		t.Fatalf("distinct inputs collapsed to %q", got)
	}
}

func TestBuildAssignmentIDDeterministic(t *testing.T) {
	a := BuildAssignmentID("math-7", "Unit 3: Fractions", "3.2 Compare fractions")
	b := BuildAssignmentID("math-7", "Unit 3: Fractions", "3.2 Compare fractions")
	if a != b {
		t.Fatalf("ids differ: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "math-7_") {
		t.Errorf("id %q missing class prefix", a)
	}
	if !strings.Contains(a, "_H") {
		t.Errorf("id %q missing hash segment", a)
	}
}

func TestBuildAssignmentIDDistinguishesPairs(t *testing.T) {
	// Sanitization alone would collapse these; the embedded hash of the
	// raw pair keeps them apart.
	a := BuildAssignmentID("c1", "Unit A", "Skill.B")
	b := BuildAssignmentID("c1", "Unit A", "Skill:B")
	if a == b {
		t.Fatalf("pairs collapsed to %q", a)
	}
}

func TestBuildAssignmentIDAdversarial(t *testing.T) {
	unit := strings.Repeat("Ratios & Rates / Proportions: part-1. ", 14) // ~500 chars of punctuation
	skill := strings.Repeat("Solve: multi-step / real-world. ", 16)
	id := BuildAssignmentID("class-xyz", unit, skill)
	if len(id) > 200 {
		t.Fatalf("id is %d chars, want <= 200: %q", len(id), id)
	}
	for _, v := range CriticalViolations(ValidateID(id)) {
		t.Errorf("unexpected critical violation: %s", v)
	}
	if id != BuildAssignmentID("class-xyz", unit, skill) {
		t.Fatal("adversarial id not deterministic")
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		id           string
		wantCritical int
		wantTotal    int
	}{
		{"good_id-1.2", 0, 0},
		{"has space", 1, 1},
		{"_leading", 0, 1},
		{strings.Repeat("a", 300), 0, 1},
		// Over 500 trips both length checks: the 255 warning and the
		// 500 critical.
		{strings.Repeat("a", 501), 1, 2},
		{"", 1, 1},
	}
	for _, tt := range tests {
		vs := ValidateID(tt.id)
		if len(vs) != tt.wantTotal {
			t.Errorf("ValidateID(%.20q) = %d findings, want %d", tt.id, len(vs), tt.wantTotal)
		}
		if got := len(CriticalViolations(vs)); got != tt.wantCritical {
			t.Errorf("ValidateID(%.20q) = %d critical, want %d", tt.id, got, tt.wantCritical)
		}
	}
}

func TestBuildTitleShortPair(t *testing.T) {
	if got := BuildTitle("U1", "S2", ""); got != "U1-S2" {
		t.Fatalf("BuildTitle = %q", got)
	}
	if got := BuildTitle("U1", "S2", "Solve equations"); got != "U1-S2: Solve equations" {
		t.Fatalf("BuildTitle = %q", got)
	}
}

func TestBuildTitleTruncatedUnit(t *testing.T) {
	// Long unit, short skill: only the unit is squeezed and the
	// descriptor is dropped so the prefix stays readable.
	got := BuildTitle("Unit 3 Fractions", "3.2", "Compare fractions")
	if got != "Unit 3-3.2" {
		t.Fatalf("BuildTitle = %q, want %q", got, "Unit 3-3.2")
	}
	if len(got) > 10 {
		t.Fatalf("title %q longer than 10 chars", got)
	}
}

func TestBuildTitleHashPrefixKeepsFullText(t *testing.T) {
	got := BuildTitle("Unit 3 Fractions", "Compare and order", "Compare fractions with unlike denominators")
	if !strings.HasPrefix(got, "[") || got[9] != ']' {
		t.Fatalf("BuildTitle = %q, want 10-char hash prefix", got)
	}
	if !strings.Contains(got, "Unit 3 Fractions-Compare and order: Compare fractions") {
		t.Fatalf("BuildTitle = %q, full text missing", got)
	}
}

func TestBuildTitleHashPrefixUnique(t *testing.T) {
	seen := make(map[string]string)
	for i := 0; i < 10000; i++ {
		unit := fmt.Sprintf("chapter %d ratios and proportional reasoning", i)
		skill := fmt.Sprintf("objective %d multi step equations", i*7)
		title := BuildTitle(unit, skill, "")
		if !strings.HasPrefix(title, "[") {
			t.Fatalf("title %q for pair %d not hash-prefixed", title, i)
		}
		prefix := title[:10]
		key := unit + "|||" + skill
		if prev, ok := seen[prefix]; ok && prev != key {
			t.Fatalf("prefix %q shared by %q and %q", prefix, prev, key)
		}
		seen[prefix] = key
	}
}
