package idgen

import (
	"fmt"
	"regexp"
)

// Severity classifies a validation finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityCritical
)

func (s Severity) String() string {
	if s == SeverityCritical {
		return "critical"
	}
	return "warning"
}

// Violation is one finding from ValidateID.
type Violation struct {
	Severity Severity
	Message  string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Severity, v.Message)
}

var idCharsetRe = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)

// ValidateID checks an assignment identifier against SIS constraints.
// Critical findings mean the identifier will be rejected; warnings
// mean it is likely to be truncated or displayed badly.
func ValidateID(id string) []Violation {
	var out []Violation
	// Both length findings apply to an id over 500: the warning and
	// the critical are independent checks.
	if len(id) > 255 {
		out = append(out, Violation{SeverityWarning, fmt.Sprintf("identifier is %d characters, may be truncated beyond 255", len(id))})
	}
	if len(id) > 500 {
		out = append(out, Violation{SeverityCritical, fmt.Sprintf("identifier is %d characters, over the hard limit of 500", len(id))})
	}
	if id == "" {
		out = append(out, Violation{SeverityCritical, "identifier is empty"})
		return out
	}
	if !idCharsetRe.MatchString(id) {
		out = append(out, Violation{SeverityCritical, "identifier contains characters outside [a-zA-Z0-9_-.]"})
	}
	if id[0] == '_' || id[len(id)-1] == '_' {
		out = append(out, Violation{SeverityWarning, "identifier starts or ends with an underscore"})
	}
	return out
}

// CriticalViolations filters findings down to the ones that block use.
func CriticalViolations(vs []Violation) []Violation {
	var out []Violation
	for _, v := range vs {
		if v.Severity == SeverityCritical {
			out = append(out, v)
		}
	}
	return out
}
