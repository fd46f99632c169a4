// Package ingest sequences the content pipeline: extraction, wikilink
// resolution, tag suggestion, slug assignment, frontmatter synthesis, and
// the collision-safe write into the content tree.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quillkit/quill/internal/extract"
	"github.com/quillkit/quill/internal/post"
	"github.com/quillkit/quill/internal/prompt"
	"github.com/quillkit/quill/internal/registry"
	"github.com/quillkit/quill/internal/site"
	"github.com/quillkit/quill/internal/slug"
	"github.com/quillkit/quill/internal/taxonomy"
	"github.com/quillkit/quill/internal/ui"
	"github.com/quillkit/quill/internal/wikilink"
)

// ErrAborted is returned when the operator declines a confirmation. It is
// a deliberate no-op: nothing was written and the process exits zero.
var ErrAborted = errors.New("aborted by user")

// CollisionError reports a hard collision at write time: the target path
// already existed when the exclusive create ran. Distinct from the advisory
// uniqueness check, which cannot reserve a slug.
type CollisionError struct {
	Path string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("file already exists: %s", e.Path)
}

// Result describes a completed ingestion.
type Result struct {
	Slug string
	Path string
	Tags []string
}

// Pipeline wires the pipeline's collaborators. Now is overridable so tests
// can pin the target year/month directory.
type Pipeline struct {
	Site *site.Site
	Ask  prompt.Asker
	Now  func() time.Time
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// dateParts returns the current UTC date as ISO string, year, and
// zero-padded month.
func (p *Pipeline) dateParts() (iso, year, month string) {
	t := p.now().UTC()
	return t.Format("2006-01-02"), t.Format("2006"), t.Format("01")
}

// targetPath is <content-root>/<year>/<month>/<slug>.md for the current
// UTC date.
func (p *Pipeline) targetPath(s string) string {
	_, year, month := p.dateParts()
	return filepath.Join(p.Site.ContentPath(), year, month, s+".md")
}

// writeExclusive creates path with an exclusive-create open so a concurrent
// writer can never be clobbered. The document is complete in memory before
// this runs; no partial file is ever left behind.
func writeExclusive(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return &CollisionError{Path: path}
		}
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Ingest pulls a bare markdown file into the writing collection. Quick
// mode takes every default and marks the post a draft; interactive mode
// prompts for each field.
func (p *Pipeline) Ingest(path string, quick bool) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	content := string(raw)
	filename := filepath.Base(path)

	taken := registry.Collect(p.Site.ContentPath())

	body := extract.StripFrontmatter(content)
	body, unresolved := wikilink.Resolve(body, taken, p.Site.Config.LinkPrefix)
	for _, target := range unresolved {
		ui.Logger.Warn("Unresolved wikilink rendered as plain text", "target", target)
	}

	title := extract.Title(body, filename)

	if quick {
		return p.ingestQuick(content, body, title, filename, taken)
	}
	return p.ingestInteractive(content, body, title, taken)
}

func (p *Pipeline) ingestQuick(content, body, title, filename string, taken registry.Registry) (*Result, error) {
	if extract.HasFrontmatter(content) {
		ui.Warning("stripping existing frontmatter in quick mode")
	}

	tags := taxonomy.Suggest(body)
	if len(tags) > post.MaxTags {
		tags = tags[:post.MaxTags]
	}
	if len(tags) == 0 {
		tags = []string{p.Site.Config.DefaultTag}
	}

	base := slug.Normalize(title)
	if base == "" {
		base = slug.Normalize(strings.TrimSuffix(filename, ".md"))
	}
	if base == "" {
		base = "untitled"
	}
	s := slug.Uniquify(base, taken)

	iso, _, _ := p.dateParts()
	doc := post.Post{
		Title:       title,
		Description: extract.Description(body),
		PubDate:     iso,
		Tags:        tags,
		Draft:       true,
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("extracted metadata violates the content schema: %w", err)
	}

	target := p.targetPath(s)
	if err := writeExclusive(target, doc.Render(body)); err != nil {
		return nil, err
	}
	return &Result{Slug: s, Path: target, Tags: tags}, nil
}

func (p *Pipeline) ingestInteractive(content, body, extracted string, taken registry.Registry) (*Result, error) {
	if extract.HasFrontmatter(content) {
		ui.Info("File already has frontmatter. Ingest is meant for bare markdown files.")
		if existing, ok := extract.ParseExisting(content); ok && existing.Title != "" {
			ui.Detail("Discarding:", fmt.Sprintf("title %q, tags %v", existing.Title, existing.Tags))
		}
		proceed, err := p.Ask.Confirm("Strip existing frontmatter and re-generate?", false)
		if err != nil {
			return nil, askErr(err)
		}
		if !proceed {
			return nil, ErrAborted
		}
	}

	title, err := p.Ask.Text(prompt.TextOptions{
		Prompt:   "Title:",
		Default:  extracted,
		Validate: validateTitle,
	})
	if err != nil {
		return nil, askErr(err)
	}

	description, err := p.Ask.Text(prompt.TextOptions{
		Prompt:   "Description:",
		Default:  extract.Description(body),
		Validate: validateDescription,
	})
	if err != nil {
		return nil, askErr(err)
	}

	suggested := taxonomy.Suggest(body)
	if len(suggested) > 0 {
		ui.Info("Suggested tags based on content: " + strings.Join(suggested, ", "))
	}
	tags, err := p.Ask.MultiSelect(prompt.MultiSelectOptions{
		Prompt:   "Select tags (1-4):",
		Choices:  tagChoices(suggested),
		Validate: validateTagCount,
	})
	if err != nil {
		return nil, askErr(err)
	}

	s, err := p.chooseSlug(title, taken)
	if err != nil {
		return nil, askErr(err)
	}

	draft, err := p.Ask.Confirm("Create as draft?", true)
	if err != nil {
		return nil, askErr(err)
	}

	iso, _, _ := p.dateParts()
	doc := post.Post{
		Title:       title,
		Description: description,
		PubDate:     iso,
		Tags:        tags,
		Draft:       draft,
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	output := doc.Render(body)
	target := p.targetPath(s)

	preview(output)
	ok, err := p.Ask.Confirm(fmt.Sprintf("Write to %s?", target), true)
	if err != nil {
		return nil, askErr(err)
	}
	if !ok {
		return nil, ErrAborted
	}

	if err := writeExclusive(target, output); err != nil {
		return nil, err
	}
	return &Result{Slug: s, Path: target, Tags: tags}, nil
}

// chooseSlug derives the slug from the title and only prompts when the
// derivation is empty or collides. The prompt validates live against the
// registry snapshot.
func (p *Pipeline) chooseSlug(title string, taken registry.Registry) (string, error) {
	base := slug.Normalize(title)
	if base != "" && !taken.Has(base) {
		return base, nil
	}

	message := "Title produced empty slug. Enter slug:"
	def := ""
	if base != "" {
		message = fmt.Sprintf("Slug %q exists. Enter new slug:", base)
		def = slug.Uniquify(base, taken)
	}
	choice, err := p.Ask.Text(prompt.TextOptions{
		Prompt:  message,
		Default: def,
		Validate: func(v string) error {
			normalized := slug.Normalize(strings.TrimSpace(v))
			if normalized == "" {
				return errors.New("slug required")
			}
			if taken.Has(normalized) {
				return fmt.Errorf("slug %q already exists", normalized)
			}
			return nil
		},
	})
	if err != nil {
		return "", err
	}
	return slug.Normalize(strings.TrimSpace(choice)), nil
}

// previewLines caps how much of the document the confirmation preview
// shows.
const previewLines = 15

func preview(output []byte) {
	ui.SectionHeader("Preview")
	lines := strings.Split(string(output), "\n")
	shown := lines
	if len(shown) > previewLines {
		shown = shown[:previewLines]
	}
	for _, line := range shown {
		ui.Info("  " + line)
	}
	if len(lines) > previewLines {
		ui.Info("  ...")
	}
}

// tagChoices builds the grouped multi-select rows: one separator per
// category, suggestions pre-checked.
func tagChoices(suggested []string) []prompt.Choice {
	isSuggested := make(map[string]bool, len(suggested))
	for _, tag := range suggested {
		isSuggested[tag] = true
	}

	var choices []prompt.Choice
	for _, category := range taxonomy.Categories {
		choices = append(choices, prompt.Choice{Label: fmt.Sprintf("── %s ──", category.Name)})
		for _, tag := range category.Tags {
			label := tag
			if isSuggested[tag] {
				label = tag + " (suggested)"
			}
			choices = append(choices, prompt.Choice{
				Label:   label,
				Value:   tag,
				Checked: isSuggested[tag],
			})
		}
	}
	return choices
}

func validateTitle(v string) error {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" || len([]rune(trimmed)) > post.TitleLimit {
		return fmt.Errorf("title required (max %d chars)", post.TitleLimit)
	}
	return nil
}

func validateDescription(v string) error {
	if len([]rune(v)) > extract.DescriptionLimit {
		return fmt.Errorf("max %d characters", extract.DescriptionLimit)
	}
	return nil
}

func validateTagCount(selected []string) error {
	if len(selected) < post.MinTags {
		return errors.New("select at least 1 tag")
	}
	if len(selected) > post.MaxTags {
		return fmt.Errorf("maximum %d tags", post.MaxTags)
	}
	return nil
}

// askErr passes prompt cancellation through as an operator abort.
func askErr(err error) error {
	if errors.Is(err, prompt.ErrCancelled) {
		return ErrAborted
	}
	return err
}
