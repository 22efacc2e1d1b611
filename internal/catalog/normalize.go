// Package catalog turns third-party phone data (spreadsheets, the GSMArena
// API and Smartprix product pages) into entities.Phone records.
package catalog

import (
	"strings"
	"unicode"
)

// PhoneID derives a stable id from brand and name, e.g. "apple-iphone-15".
func PhoneID(brand, name string) string {
	full := strings.ToLower(strings.TrimSpace(name))
	b := strings.ToLower(strings.TrimSpace(brand))
	if b != "" && !strings.HasPrefix(full, b) {
		full = b + " " + full
	}

	var sb strings.Builder
	dash := false
	for _, r := range full {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
