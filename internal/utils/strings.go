package utils

import (
	"strings"
	"unicode"
)

// CamelToSnake converts an exported Go field name like "DateIssue"
// to its snake_case JSON counterpart "date_issue".
func CamelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
