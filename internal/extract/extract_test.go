package extract

import (
	"strings"
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		filename string
		expected string
	}{
		{"heading at start", "# My Title\n\nBody text.", "x.md", "My Title"},
		{"heading mid-file", "intro line\n\n# Real Title\n\nmore", "x.md", "Real Title"},
		{"heading trimmed", "#   Spaced Out   \n", "x.md", "Spaced Out"},
		{"level-2 ignored", "## Not A Title\n\ntext", "some-file.md", "Some File"},
		{"fallback from filename", "just text", "my-great-post.md", "My Great Post"},
		{"fallback underscores", "text", "notes_from_today.md", "Notes From Today"},
		{"fallback no extension", "text", "plain", "Plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.body, tt.filename); got != tt.expected {
				t.Errorf("Title(%q, %q) = %q, want %q", tt.body, tt.filename, got, tt.expected)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			"single paragraph",
			"Hello world. This is a test.",
			"Hello world. This is a test.",
		},
		{
			"skips heading",
			"# Title\n\nFirst paragraph here.\n\nSecond paragraph.",
			"First paragraph here.",
		},
		{
			"joins wrapped lines",
			"Line one\nline two\nline three\n\nnext para",
			"Line one line two line three",
		},
		{
			"skips frontmatter",
			"---\ntitle: old\n---\n\nActual opening paragraph.",
			"Actual opening paragraph.",
		},
		{
			"skips leading list",
			"- item one\n- item two\n\nReal paragraph after list.",
			"Real paragraph after list.",
		},
		{
			"skips leading image and quote",
			"![alt](img.png)\n> quoted\n\nThe paragraph.",
			"The paragraph.",
		},
		{
			"stops at structural line",
			"Opening sentence.\n```\ncode\n```",
			"Opening sentence.",
		},
		{
			"stops at numbered list",
			"Intro text.\n1. first step",
			"Intro text.",
		},
		{
			"skips leading numbered list",
			"1. step one\n2. step two\n\nSummary paragraph.",
			"Summary paragraph.",
		},
		{
			"table rows ignored",
			"| a | b |\n| - | - |\n\nProse starts here.",
			"Prose starts here.",
		},
		{
			"empty body",
			"",
			"",
		},
		{
			"only structure",
			"# Title\n\n- a\n- b\n",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Description(tt.body); got != tt.expected {
				t.Errorf("Description() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDescription_Truncation(t *testing.T) {
	long := strings.Repeat("x", 250)
	got := Description(long)
	if len(got) != 200 {
		t.Fatalf("expected 200 chars, got %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got[190:])
	}
	if got[:197] != long[:197] {
		t.Errorf("first 197 characters should be preserved verbatim")
	}
}

func TestDescription_ExactLimitNotTruncated(t *testing.T) {
	exact := strings.Repeat("y", 200)
	if got := Description(exact); got != exact {
		t.Errorf("200-char paragraph should pass through untouched, got %d chars", len(got))
	}
}

func TestHasFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"delimited block", "---\ntitle: x\n---\nbody", true},
		{"delimiter with trailing spaces", "---  \ntitle: x\n---\n", true},
		{"no block", "# Just a heading\n", false},
		{"dashes mid-file", "text\n---\nmore", false},
		{"horizontal rule with text after", "--- not frontmatter\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasFrontmatter(tt.content); got != tt.expected {
				t.Errorf("HasFrontmatter(%q) = %v, want %v", tt.content, got, tt.expected)
			}
		})
	}
}

func TestStripFrontmatter(t *testing.T) {
	content := "---\ntitle: \"Old\"\ntags: [\"a\"]\n---\n\n# Heading\n\nBody."
	got := StripFrontmatter(content)
	if got != "# Heading\n\nBody." {
		t.Errorf("StripFrontmatter = %q", got)
	}

	plain := "# Heading\n\nBody."
	if StripFrontmatter(plain) != plain {
		t.Error("content without frontmatter should be unchanged")
	}
}

func TestParseExisting(t *testing.T) {
	content := "---\ntitle: \"Old Title\"\ndescription: \"Old desc\"\ntags: [\"docker\", \"linux\"]\ndraft: true\n---\n\nBody."
	existing, ok := ParseExisting(content)
	if !ok {
		t.Fatal("expected frontmatter to parse")
	}
	if existing.Title != "Old Title" {
		t.Errorf("Title = %q", existing.Title)
	}
	if len(existing.Tags) != 2 || existing.Tags[0] != "docker" {
		t.Errorf("Tags = %v", existing.Tags)
	}
	if !existing.Draft {
		t.Error("Draft should be true")
	}

	if _, ok := ParseExisting("# No frontmatter\n"); ok {
		t.Error("expected ok=false without frontmatter")
	}
}

func TestStripHeading(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		title    string
		expected string
	}{
		{
			"matching heading removed",
			"# My Title\n\nBody text here.",
			"My Title",
			"Body text here.",
		},
		{
			"differing heading kept",
			"# Original Heading\n\nBody text.",
			"Overridden Title",
			"# Original Heading\n\nBody text.",
		},
		{
			"no heading",
			"Just body text.",
			"My Title",
			"Just body text.",
		},
		{
			"removed exactly once",
			"# Dup\n\n# Dup\n\nBody.",
			"Dup",
			"# Dup\n\nBody.",
		},
		{
			"mid-file heading removed",
			"intro\n\n# My Title\n\nBody.",
			"My Title",
			"intro\n\nBody.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHeading(tt.body, tt.title); got != tt.expected {
				t.Errorf("StripHeading = %q, want %q", got, tt.expected)
			}
		})
	}
}
