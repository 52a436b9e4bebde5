package utils

import "strings"

// NormalizePhone strips whitespace and prefixes the Indian country code
// when the number is given bare, matching the legacy client behaviour.
func NormalizePhone(s string) string {
	s = strings.TrimSpace(s)
	for _, cut := range []string{" ", "\t", "-"} {
		s = strings.ReplaceAll(s, cut, "")
	}
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "+") {
		return s
	}
	if strings.HasPrefix(s, "91") && len(s) == 12 {
		return "+" + s
	}
	return "+91" + s
}
