package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillkit/quill/internal/extract"
	"github.com/quillkit/quill/internal/ingest"
	"github.com/quillkit/quill/internal/prompt"
	"github.com/quillkit/quill/internal/registry"
	"github.com/quillkit/quill/internal/site"
	"github.com/quillkit/quill/internal/taxonomy"
	"github.com/quillkit/quill/internal/ui"
)

// Set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func buildVersion() string {
	if commit == "none" {
		return version
	}
	return fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

func main() {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "quill",
		Short: "quill — content tooling for the writing collection",
		Long:  "A local CLI that turns bare markdown notes into well-formed posts: frontmatter synthesis, tag suggestion, slug management, and wikilink resolution.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.Init(noColor)
		},
		SilenceUsage: true,
	}

	rootCmd.Version = buildVersion()
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "content", Title: "Content Commands:"},
		&cobra.Group{ID: "site", Title: "Site Commands:"},
	)

	ingestC := ingestCmd()
	ingestC.GroupID = "content"
	newPostC := newPostCmd()
	newPostC.GroupID = "content"
	previewC := previewCmd()
	previewC.GroupID = "content"
	tagsC := tagsCmd()
	tagsC.GroupID = "content"

	initC := initCmd()
	initC.GroupID = "site"
	doctorC := doctorCmd()
	doctorC.GroupID = "site"
	configC := configCmd()
	configC.GroupID = "site"

	rootCmd.AddCommand(ingestC)
	rootCmd.AddCommand(newPostC)
	rootCmd.AddCommand(previewC)
	rootCmd.AddCommand(tagsC)
	rootCmd.AddCommand(initC)
	rootCmd.AddCommand(doctorC)
	rootCmd.AddCommand(configC)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSite() (*site.Site, error) {
	root, err := site.Root(".")
	if err != nil {
		return nil, err
	}
	return site.Load(root)
}

func newPipeline() (*ingest.Pipeline, error) {
	s, err := loadSite()
	if err != nil {
		return nil, err
	}
	return &ingest.Pipeline{Site: s, Ask: prompt.Terminal{}}, nil
}

func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Initialize a site root for quill",
		Long:    "Create quill.yaml and the content directory in the current directory. Run this once at the root of the site checkout.",
		Example: "  quill init\n  quill init --force",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			s, err := site.Init(cwd, force)
			if err != nil {
				return err
			}
			ui.Success("quill initialized")
			ui.Detail("Root:   ", s.Root)
			ui.Detail("Content:", s.ContentPath())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Reinitialize even if quill.yaml already exists")
	return cmd
}

func ingestCmd() *cobra.Command {
	var quick bool
	cmd := &cobra.Command{
		Use:     "ingest <path>",
		Short:   "Ingest a bare markdown file into the writing collection",
		Long:    "Read a markdown file, derive frontmatter (title, description, tags, slug), rewrite wikilinks against existing posts, and write the result into <content-root>/<year>/<month>/<slug>.md without overwriting anything.",
		Example: "  quill ingest ~/notes/drafts/some-note.md\n  quill ingest --quick ~/notes/drafts/some-note.md",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPipeline()
			if err != nil {
				return err
			}
			result, err := p.Ingest(args[0], quick)
			if errors.Is(err, ingest.ErrAborted) {
				ui.Info("Aborted.")
				return nil
			}
			if err != nil {
				return err
			}
			ui.Success("Ingested: " + result.Slug)
			ui.Detail("Path:", result.Path)
			ui.Detail("Tags:", strings.Join(result.Tags, ", "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&quick, "quick", false, "Skip all prompts: extracted defaults, first 4 suggested tags, draft status")
	return cmd
}

func newPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "new-post [title words...]",
		Short:   "Scaffold an empty post with valid frontmatter",
		Example: "  quill new-post\n  quill new-post My Great Title",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPipeline()
			if err != nil {
				return err
			}
			result, err := p.NewPost(strings.Join(args, " "))
			if errors.Is(err, ingest.ErrAborted) {
				ui.Info("Aborted.")
				return nil
			}
			if err != nil {
				return err
			}
			ui.Success("Created: " + result.Path)
			return nil
		},
	}
}

func previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "preview <path-or-slug>",
		Short:   "Render a post's metadata and body in the terminal",
		Example: "  quill preview my-great-title\n  quill preview src/content/writing/2026/08/my-great-title.md",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSite()
			if err != nil {
				return err
			}
			path, err := resolvePost(s, args[0])
			if err != nil {
				return err
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("cannot read %s: %w", path, err)
			}
			content := string(raw)
			if existing, ok := extract.ParseExisting(content); ok {
				ui.KeyValue("Title:      ", existing.Title)
				ui.KeyValue("Description:", existing.Description)
				ui.KeyValue("Published:  ", existing.PubDate)
				ui.KeyValue("Tags:       ", strings.Join(existing.Tags, ", "))
				if existing.Draft {
					ui.Warning("draft")
				}
			}
			ui.RenderMarkdown(extract.StripFrontmatter(content))
			return nil
		},
	}
}

// resolvePost accepts a literal path or a slug to look up in the content
// tree.
func resolvePost(s *site.Site, arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}
	var found string
	root := s.ContentPath()
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() && d.Name() == arg+".md" {
			found = path
		}
		return nil
	})
	if found == "" {
		return "", fmt.Errorf("no post found for %q", arg)
	}
	return found, nil
}

func tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the tag taxonomy and its suggestion keywords",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, category := range taxonomy.Categories {
				for _, tag := range category.Tags {
					rows = append(rows, []string{
						category.Name,
						tag,
						strings.Join(taxonomy.KeywordsFor(tag), ", "),
					})
				}
			}
			ui.Table([]string{"CATEGORY", "TAG", "KEYWORDS"}, rows)
			return nil
		},
	}
}

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Validate every post against the content schema",
		Long:  "Walk the content tree and check each document: parseable frontmatter, title/description caps, 1-4 taxonomy tags, a valid pubDate, and slug-shaped filenames. Exits non-zero if any errors are found.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSite()
			if err != nil {
				return err
			}
			reg := registry.Collect(s.ContentPath())
			ui.Info(fmt.Sprintf("Scanning %d posts under %s", len(reg), s.ContentPath()))

			issues, err := ingest.Doctor(s)
			if err != nil {
				return err
			}
			if len(reg) == 0 {
				ui.EmptyState("No posts yet. Nothing to check.")
				return nil
			}
			if len(issues) == 0 {
				ui.Success("All posts satisfy the content schema")
				return nil
			}
			hadError := false
			for _, issue := range issues {
				msg := fmt.Sprintf("%s: %s", issue.Path, issue.Message)
				if issue.Severity == "error" {
					hadError = true
					ui.Error(msg)
				} else {
					ui.Warning(msg)
				}
			}
			if hadError {
				return fmt.Errorf("%d issue(s) found", len(issues))
			}
			return nil
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read or change quill.yaml settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a config value (content_dir, link_prefix, default_tag, editor)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSite()
			if err != nil {
				return err
			}
			value, err := s.GetConfigValue(args[0])
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value and persist it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSite()
			if err != nil {
				return err
			}
			if err := s.SetConfigValue(args[0], args[1]); err != nil {
				return err
			}
			ui.Success(fmt.Sprintf("%s = %s", args[0], args[1]))
			return nil
		},
	})
	return cmd
}
