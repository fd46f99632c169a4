// Package slug derives URL- and filename-safe identifiers from titles.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize converts text to a slug: lowercase, every run of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed. Returns "" for input with no alphanumerics.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Uniquify returns base unchanged if it is not taken, otherwise the first
// of base-2, base-3, ... that is free. The check is advisory only: nothing
// is reserved, so a concurrent writer can still claim the slug before the
// exclusive-create write.
func Uniquify(base string, taken map[string]bool) string {
	if !taken[base] {
		return base
	}
	for suffix := 2; ; suffix++ {
		candidate := fmt.Sprintf("%s-%d", base, suffix)
		if !taken[candidate] {
			return candidate
		}
	}
}
