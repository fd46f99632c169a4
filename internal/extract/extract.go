// Package extract derives frontmatter candidates (title, description) from
// raw markdown bodies using line-oriented heuristics. The classification is
// intentionally approximate: it is tuned for bare notes coming out of an
// editor, not for arbitrary markdown.
package extract

import (
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

var (
	headingRe        = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	headingLineRe    = regexp.MustCompile(`(?m)^#\s+.+\n*`)
	frontmatterRe    = regexp.MustCompile(`(?s)^---.*?---\n*`)
	hasFrontmatterRe = regexp.MustCompile(`^---[ \t]*\n`)
	numberedListRe   = regexp.MustCompile(`^\d+\.\s`)
	wordStartRe      = regexp.MustCompile(`\b\w`)
)

// DescriptionLimit is the schema cap on description length in characters.
const DescriptionLimit = 200

// Title returns the text of the first level-1 heading anywhere in body,
// trimmed. When no heading exists, it derives a fallback from the filename:
// extension stripped, hyphens and underscores as spaces, each word
// capitalized.
func Title(body, filename string) string {
	if m := headingRe.FindStringSubmatch(body); m != nil {
		return strings.TrimSpace(m[1])
	}
	name := strings.TrimSuffix(filename, ".md")
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return wordStartRe.ReplaceAllStringFunc(name, strings.ToUpper)
}

// Description collects the first contiguous paragraph of body: leading
// frontmatter and the first level-1 heading are stripped, then lines are
// scanned until a paragraph has been gathered and a blank or structural
// line ends it. Headings, code fences, list items, table rows, blockquotes,
// and images never contribute. Results longer than 200 characters are cut
// to 197 plus "...".
func Description(body string) string {
	text := StripFrontmatter(body)
	text = strings.TrimSpace(headingRe.ReplaceAllString(text, ""))

	var paragraph []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(paragraph) > 0 {
				break
			}
			continue
		}
		if structural(trimmed) {
			if len(paragraph) > 0 {
				break
			}
			continue
		}
		paragraph = append(paragraph, trimmed)
	}

	joined := strings.Join(paragraph, " ")
	runes := []rune(joined)
	if len(runes) <= DescriptionLimit {
		return joined
	}
	return string(runes[:DescriptionLimit-3]) + "..."
}

// structural reports whether a trimmed line is a markdown construct that
// cannot be part of a description paragraph.
func structural(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "```") ||
		strings.HasPrefix(trimmed, "- ") ||
		strings.HasPrefix(trimmed, "|") ||
		strings.HasPrefix(trimmed, ">") ||
		strings.HasPrefix(trimmed, "![") ||
		numberedListRe.MatchString(trimmed)
}

// HasFrontmatter reports whether content opens with a frontmatter delimiter.
func HasFrontmatter(content string) bool {
	return hasFrontmatterRe.MatchString(content)
}

// StripFrontmatter removes a leading frontmatter block, including the
// delimiters and any blank lines after the closing one. Content without a
// block is returned unchanged.
func StripFrontmatter(content string) string {
	return frontmatterRe.ReplaceAllString(content, "")
}

// Existing holds the fields of a frontmatter block that ingestion is about
// to discard, so the operator can see what they are giving up.
type Existing struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	PubDate     string   `yaml:"pubDate"`
	Tags        []string `yaml:"tags"`
	Draft       bool     `yaml:"draft"`
}

// ParseExisting decodes the frontmatter block at the start of content.
// Returns false when no block is present or it fails to parse; a malformed
// block is still stripped and discarded downstream, so parse failures are
// not errors here.
func ParseExisting(content string) (Existing, bool) {
	if !HasFrontmatter(content) {
		return Existing{}, false
	}
	var existing Existing
	if _, err := frontmatter.Parse(strings.NewReader(content), &existing); err != nil {
		return Existing{}, false
	}
	return existing, true
}

// StripHeading removes the body's first level-1 heading, and blank lines
// immediately after it, when the heading text equals title after trimming.
// A heading that differs from the title (an override) is left alone.
func StripHeading(body, title string) string {
	m := headingRe.FindStringSubmatch(body)
	if m == nil || strings.TrimSpace(m[1]) != strings.TrimSpace(title) {
		return strings.TrimSpace(body)
	}
	loc := headingLineRe.FindStringIndex(body)
	return strings.TrimSpace(body[:loc[0]] + body[loc[1]:])
}
