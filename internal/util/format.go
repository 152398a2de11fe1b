package util //nolint:revive // package name util hosts shared formatting helpers used across handlers

import "strings"

// FormatUSPhone formats a US phone number progressively as digits arrive.
// Non-digit characters are stripped and input is truncated to 10 digits:
// "5551234567" -> "(555) 123-4567", "555" -> "(555", "" -> "".
func FormatUSPhone(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 10 {
				break
			}
		}
	}
	d := b.String()

	switch {
	case d == "":
		return ""
	case len(d) <= 3:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
}
