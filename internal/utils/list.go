package utils

import "strings"

// ParseList splits a comma or newline separated form value, dropping blanks.
// An input with no entries yields nil.
func ParseList(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	var entries []string
	for _, field := range fields {
		if entry := strings.TrimSpace(field); entry != "" {
			entries = append(entries, entry)
		}
	}

	return entries
}

func FormatList(items []string, sep string) string {
	return strings.Join(items, sep)
}
