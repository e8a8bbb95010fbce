package common

import "strings"

// FirstNonEmpty returns the first argument that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}

// JoinNonEmpty joins the non-blank values with sep.
func JoinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))

	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, sep)
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange(lo, value, hi int) bool {
	return lo <= value && value <= hi
}
