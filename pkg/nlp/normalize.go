package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}+#]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// Normalize lowercases a string and collapses everything that is not a
// letter, digit, '+' or '#' into single spaces. '+' and '#' are kept so
// skill names like "c++" and "c#" survive normalization.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeSkill normalizes a skill name (possibly a multi-word phrase).
func NormalizeSkill(skill string) string {
	return Normalize(skill)
}

// ContainsPhrase reports whether a normalized phrase occurs in normalized
// text as whole words. "rest api" matches "... rest api ..." but not
// "... rest apis ...".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}
