package services

import (
	"strings"
	"unicode"
)

// GenerateSlug derives a URL-safe slug candidate from a title. Lowercase
// letters, digits and hyphens are kept, whitespace and hyphen runs collapse
// to a single hyphen, everything else is dropped. The result matches
// [a-z0-9-]* with no leading or trailing hyphen, and may be empty when the
// title has no eligible characters.
func GenerateSlug(title string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingHyphen = true
		}
	}

	return b.String()
}
