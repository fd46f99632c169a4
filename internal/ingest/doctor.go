package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/quillkit/quill/internal/extract"
	"github.com/quillkit/quill/internal/post"
	"github.com/quillkit/quill/internal/site"
	"github.com/quillkit/quill/internal/slug"
)

// Doctor walks the content tree and checks every document against the
// contract the pipeline promises to uphold: parseable frontmatter, title
// and description caps, 1-4 taxonomy tags, a valid pubDate, and a filename
// that is a well-formed slug.
func Doctor(s *site.Site) ([]site.Issue, error) {
	root := s.ContentPath()
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("content directory missing at %s: %w", root, err)
	}

	var issues []site.Issue
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		rel, _ := filepath.Rel(root, path)
		issues = append(issues, checkDocument(path, rel, d.Name())...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	return issues, nil
}

func checkDocument(path, rel, name string) []site.Issue {
	var issues []site.Issue
	warn := func(msg string) {
		issues = append(issues, site.Issue{Severity: "warning", Path: rel, Message: msg})
	}
	fail := func(msg string) {
		issues = append(issues, site.Issue{Severity: "error", Path: rel, Message: msg})
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		fail(fmt.Sprintf("unreadable: %v", err))
		return issues
	}
	content := string(raw)

	if !extract.HasFrontmatter(content) {
		fail("missing frontmatter block")
		return issues
	}
	existing, ok := extract.ParseExisting(content)
	if !ok {
		fail("frontmatter does not parse")
		return issues
	}

	doc := post.Post{
		Title:       existing.Title,
		Description: existing.Description,
		PubDate:     existing.PubDate,
		Tags:        existing.Tags,
		Draft:       existing.Draft,
	}
	if err := doc.Validate(); err != nil {
		fail(err.Error())
	}

	stem := name[:len(name)-len(".md")]
	if normalized := slug.Normalize(stem); normalized != stem {
		warn(fmt.Sprintf("filename %q is not a well-formed slug (want %q)", stem, normalized))
	}
	return issues
}
