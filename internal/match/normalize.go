package match

import (
	"strings"
	"unicode"
)

// NormalizeName case-folds s and collapses separator runs into single spaces.
func NormalizeName(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	pendingSpace := false

	for _, r := range s {
		if isSeparator(r) {
			pendingSpace = result.Len() > 0

			continue
		}

		if pendingSpace {
			result.WriteRune(' ')

			pendingSpace = false
		}

		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// isSeparator returns true if the rune is a common name separator.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '_' || r == '/'
}

// ContainsName reports whether fullName contains both firstName and lastName.
// Empty parts always match; an entirely empty incoming name never does.
func ContainsName(fullName, firstName, lastName string) bool {
	first := NormalizeName(firstName)
	last := NormalizeName(lastName)

	if first == "" && last == "" {
		return false
	}

	full := NormalizeName(fullName)

	return strings.Contains(full, first) && strings.Contains(full, last)
}
