package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var subjectLineRe = regexp.MustCompile(`(?im)^subject:[ \t]*(.+)$`)

const maxDerivedSubjectLen = 50

// DeriveSubject extracts a display subject from generated email text:
// an explicit "Subject:" line when present, otherwise the first
// non-empty line. Long subjects are truncated with an ellipsis. Returns
// DefaultSubject when the text has no usable line.
func DeriveSubject(text string) string {
	if m := subjectLineRe.FindStringSubmatch(text); m != nil {
		if s := strings.TrimSpace(m[1]); s != "" {
			return truncateSubject(s)
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return truncateSubject(line)
		}
	}
	return DefaultSubject
}

func truncateSubject(s string) string {
	if utf8.RuneCountInString(s) <= maxDerivedSubjectLen {
		return s
	}
	return string([]rune(s)[:maxDerivedSubjectLen]) + "..."
}
