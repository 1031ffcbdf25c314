package helper

import "strings"

func StringPtr(s string) *string {
	return &s
}

// SplitAndTrim splits a comma separated list and drops empty entries.
func SplitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
