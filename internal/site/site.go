// Package site locates the site root and loads quill configuration:
// quill.yaml at the root, overridden by QUILL_* environment variables and
// an optional .env file.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/quillkit/quill/internal/taxonomy"
)

// ConfigName is the marker file identifying a site root.
const ConfigName = "quill.yaml"

// Config holds quill settings. Environment variables win over quill.yaml.
type Config struct {
	// ContentDir is the writing collection root, relative to the site
	// root unless absolute.
	ContentDir string `yaml:"content_dir" env:"QUILL_CONTENT_DIR"`
	// LinkPrefix is the canonical URL prefix wikilinks resolve under.
	LinkPrefix string `yaml:"link_prefix" env:"QUILL_LINK_PREFIX"`
	// DefaultTag is assigned when quick-mode ingestion matches nothing.
	DefaultTag string `yaml:"default_tag" env:"QUILL_DEFAULT_TAG"`
	// Editor is launched on newly scaffolded posts. QUILL_EDITOR wins,
	// then the config value, then $EDITOR as a fallback.
	Editor string `yaml:"editor,omitempty" env:"QUILL_EDITOR"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ContentDir: filepath.Join("src", "content", "writing"),
		LinkPrefix: "/write/",
		DefaultTag: taxonomy.DefaultTag,
	}
}

// Site is a loaded site root.
type Site struct {
	Root   string
	Config Config
}

// Issue is a doctor finding.
type Issue struct {
	Severity string // "warning" or "error"
	Path     string
	Message  string
}

// Root walks upward from dir looking for quill.yaml and returns the
// directory containing it.
func Root(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for d := abs; ; d = filepath.Dir(d) {
		if _, err := os.Stat(filepath.Join(d, ConfigName)); err == nil {
			return d, nil
		}
		if filepath.Dir(d) == d {
			return "", fmt.Errorf("no %s found in %s or any parent — run 'quill init' at the site root", ConfigName, abs)
		}
	}
}

// Init creates quill.yaml and the content directory at root.
func Init(root string, force bool) (*Site, error) {
	cfgPath := filepath.Join(root, ConfigName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return nil, fmt.Errorf("%s already exists at %s (use --force to overwrite)", ConfigName, root)
	}

	cfg := DefaultConfig()
	s := &Site{Root: root, Config: cfg}
	if err := os.MkdirAll(s.ContentPath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create content directory: %w", err)
	}
	if err := s.SaveConfig(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads quill.yaml at root and applies env overrides. Missing config
// fields are filled from defaults.
func Load(root string) (*Site, error) {
	loadDotenv(root)

	cfg := DefaultConfig()
	data, err := os.ReadFile(filepath.Join(root, ConfigName))
	if err != nil {
		return nil, fmt.Errorf("cannot read %s at %s: %w", ConfigName, root, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigName, err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("invalid environment overrides: %w", err)
	}
	if cfg.Editor == "" {
		cfg.Editor = os.Getenv("EDITOR")
	}
	return &Site{Root: root, Config: cfg}, nil
}

// loadDotenv loads root/.env when present, warning when other users can
// read it.
func loadDotenv(root string) {
	path := filepath.Join(root, ".env")
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if runtime.GOOS != "windows" {
		if mode := info.Mode().Perm(); mode&0o077 != 0 {
			fmt.Fprintf(os.Stderr, "warning: %s has insecure permissions %04o; recommended 0600\n", path, mode)
		}
	}
	_ = godotenv.Load(path)
}

// ContentPath returns the absolute writing-collection root.
func (s *Site) ContentPath() string {
	if filepath.IsAbs(s.Config.ContentDir) {
		return s.Config.ContentDir
	}
	return filepath.Join(s.Root, s.Config.ContentDir)
}

// SaveConfig writes the current config to quill.yaml.
func (s *Site) SaveConfig() error {
	data, err := yaml.Marshal(s.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.Root, ConfigName), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GetConfigValue reads a config value by key.
func (s *Site) GetConfigValue(key string) (string, error) {
	switch key {
	case "content_dir":
		return s.Config.ContentDir, nil
	case "link_prefix":
		return s.Config.LinkPrefix, nil
	case "default_tag":
		return s.Config.DefaultTag, nil
	case "editor":
		return s.Config.Editor, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// SetConfigValue sets a config value by key and persists it.
func (s *Site) SetConfigValue(key, value string) error {
	switch key {
	case "content_dir":
		s.Config.ContentDir = value
	case "link_prefix":
		s.Config.LinkPrefix = value
	case "default_tag":
		if !taxonomy.IsValid(value) {
			return fmt.Errorf("%q is not a valid tag", value)
		}
		s.Config.DefaultTag = value
	case "editor":
		s.Config.Editor = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return s.SaveConfig()
}
