package meta

import (
	"strings"
	"time"
)

// Agent-facing formats of the canonical booking.
const (
	AgentDateFormat = "DDMMYYYY"
	AgentTimeFormat = "HHmm"
)

// Longer tokens first so YYYY wins over YY.
var tokenReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"DD", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
)

// Layout converts a moment-style format into a Go time layout.
func Layout(format string) string {
	return tokenReplacer.Replace(format)
}

var (
	AgentDateLayout = Layout(AgentDateFormat)
	AgentTimeLayout = Layout(AgentTimeFormat)
)

// Reformat parses value with the from layout and renders it with the to layout.
// The input is returned unchanged when it does not parse.
func Reformat(value, from, to string) (string, bool) {
	if value == "" {
		return "", true
	}

	t, err := time.Parse(from, value)
	if err != nil {
		return value, false
	}

	return t.Format(to), true
}
