// Package post models a writing-collection document and renders it to the
// frontmatter+body form the site's content schema consumes.
package post

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/quillkit/quill/internal/extract"
	"github.com/quillkit/quill/internal/taxonomy"
)

// TitleLimit and DescriptionLimit mirror the content-collection schema.
const (
	TitleLimit = 100
	MinTags    = 1
	MaxTags    = 4
)

// Post is the metadata block of a document under construction. PubDate is
// a bare ISO date (YYYY-MM-DD).
type Post struct {
	Title       string
	Description string
	PubDate     string
	Tags        []string
	Draft       bool
}

// Validate checks the schema contract: the pipeline must never emit a
// document that fails this.
func (p Post) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.By(notBlank), validation.RuneLength(0, TitleLimit)),
		validation.Field(&p.Description, validation.RuneLength(0, extract.DescriptionLimit)),
		validation.Field(&p.PubDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&p.Tags, validation.Required, validation.Length(MinTags, MaxTags), validation.By(tagsInTaxonomy)),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

func tagsInTaxonomy(value interface{}) error {
	tags, _ := value.([]string)
	for _, tag := range tags {
		if !taxonomy.IsValid(tag) {
			return fmt.Errorf("unknown tag %q", tag)
		}
	}
	return nil
}

// escaper rewrites a string for embedding in double-quoted YAML. A single
// pass means an introduced backslash is never re-escaped.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeString escapes str for a double-quoted YAML scalar and drops any
// remaining C0 control characters.
func EscapeString(str string) string {
	escaped := escaper.Replace(str)
	return strings.Map(func(r rune) rune {
		if r < 0x20 {
			return -1
		}
		return r
	}, escaped)
}

// Render produces the final document bytes: a ----delimited frontmatter
// block with fields in fixed order (draft omitted entirely when false),
// one blank line, the trimmed body, and a single trailing newline.
//
// The body's first level-1 heading is removed when it repeats the title;
// an overridden title leaves the heading in place.
func (p Post) Render(body string) []byte {
	quoted := make([]string, len(p.Tags))
	for i, tag := range p.Tags {
		quoted[i] = fmt.Sprintf("%q", tag)
	}

	lines := []string{
		"---",
		fmt.Sprintf("title: \"%s\"", EscapeString(p.Title)),
		fmt.Sprintf("description: \"%s\"", EscapeString(p.Description)),
		fmt.Sprintf("pubDate: %s", p.PubDate),
		fmt.Sprintf("tags: [%s]", strings.Join(quoted, ", ")),
	}
	if p.Draft {
		lines = append(lines, "draft: true")
	}
	lines = append(lines, "---", "")

	out := strings.Join(lines, "\n")
	clean := extract.StripHeading(body, p.Title)
	if clean == "" {
		return []byte(out + "\n")
	}
	return []byte(out + "\n" + clean + "\n")
}
