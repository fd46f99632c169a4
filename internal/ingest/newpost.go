package ingest

import (
	"os"
	"os/exec"
	"strings"

	"github.com/quillkit/quill/internal/post"
	"github.com/quillkit/quill/internal/prompt"
	"github.com/quillkit/quill/internal/registry"
	"github.com/quillkit/quill/internal/ui"
)

// NewPost scaffolds an empty post. A title given on the command line skips
// the title prompt but still gets validated; everything else is prompted.
func (p *Pipeline) NewPost(cliTitle string) (*Result, error) {
	title := strings.TrimSpace(cliTitle)
	if title != "" {
		if err := validateTitle(title); err != nil {
			return nil, err
		}
	} else {
		var err error
		title, err = p.Ask.Text(prompt.TextOptions{
			Prompt:   "Post title:",
			Validate: validateTitle,
		})
		if err != nil {
			return nil, askErr(err)
		}
	}

	taken := registry.Collect(p.Site.ContentPath())
	s, err := p.chooseSlug(title, taken)
	if err != nil {
		return nil, askErr(err)
	}

	tags, err := p.Ask.MultiSelect(prompt.MultiSelectOptions{
		Prompt:   "Select tags (1-4):",
		Choices:  tagChoices(nil),
		Validate: validateTagCount,
	})
	if err != nil {
		return nil, askErr(err)
	}

	description, err := p.Ask.Text(prompt.TextOptions{
		Prompt:   "Description (optional, max 200 chars):",
		Validate: validateDescription,
	})
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

	target := p.targetPath(s)
	if err := writeExclusive(target, doc.Render("")); err != nil {
		return nil, err
	}

	p.launchEditor(target)
	return &Result{Slug: s, Path: target, Tags: tags}, nil
}

// launchEditor opens the configured editor on path. Failures are warnings:
// the file is already written, the operator just has to open it themselves.
// Editor values with arguments ("code --wait") are split on whitespace;
// quoted paths with spaces are not supported.
func (p *Pipeline) launchEditor(path string) {
	editor := strings.TrimSpace(p.Site.Config.Editor)
	if editor == "" {
		return
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		ui.Logger.Warn("Could not open editor", "editor", parts[0], "err", err)
	}
}
