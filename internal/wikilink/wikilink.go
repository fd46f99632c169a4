// Package wikilink rewrites [[Target]] and [[Target|display]] references
// into site-relative markdown links against a known slug set.
package wikilink

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quillkit/quill/internal/slug"
)

var linkRe = regexp.MustCompile(`\[\[([^\]|]+)(?:\|([^\]]+))?\]\]`)

// Resolve replaces every wikilink in body. Targets whose normalized slug is
// in known become markdown links under prefix ("/write/" gives
// "[label](/write/the-slug/)"); unknown or empty targets degrade to their
// display text. Unresolved targets are returned so the caller can warn —
// they are an author notice, not an error.
func Resolve(body string, known map[string]bool, prefix string) (string, []string) {
	var unresolved []string
	out := linkRe.ReplaceAllStringFunc(body, func(match string) string {
		m := linkRe.FindStringSubmatch(match)
		target := strings.TrimSpace(m[1])
		text := target
		if m[2] != "" {
			text = strings.TrimSpace(m[2])
		}
		s := slug.Normalize(target)
		if s == "" {
			return text
		}
		if known[s] {
			return fmt.Sprintf("[%s](%s%s/)", text, prefix, s)
		}
		unresolved = append(unresolved, target)
		return text
	})
	return out, unresolved
}
