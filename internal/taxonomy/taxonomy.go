// Package taxonomy defines the closed tag taxonomy for the writing
// collection and the keyword rules used to suggest tags from content.
//
// This is the single source of truth: the CLI prompts, the ingestion
// pipeline, and doctor validation all import these tables.
package taxonomy

import (
	"regexp"
	"strings"
)

// Category groups related tags for display in the multi-select prompt.
type Category struct {
	Name string
	Tags []string
}

// Categories is the full taxonomy, in display order.
var Categories = []Category{
	{"Tech & Homelab", []string{"homelab", "docker", "linux", "networking", "automation", "web-dev"}},
	{"Movement & Training", []string{"bjj", "movement", "training"}},
	{"Productivity & Life", []string{"adhd", "productivity", "pkm"}},
	{"Meta & Essays", []string{"essay", "tutorial", "til", "meta"}},
}

// DefaultTag is assigned when quick-mode ingestion matches no keywords.
const DefaultTag = "meta"

// keywordRule maps a lowercase keyword or phrase to exactly one tag.
type keywordRule struct {
	Keyword string
	Tag     string
}

// keywordRules drive content-based tag suggestion. Multiple keywords may
// map to the same tag; a keyword never maps to more than one.
var keywordRules = []keywordRule{
	// Tech & Homelab
	{"self-host", "homelab"},
	{"selfhost", "homelab"},
	{"proxmox", "homelab"},
	{"server", "homelab"},
	{"nas", "homelab"},
	{"truenas", "homelab"},
	{"unraid", "homelab"},
	{"container", "docker"},
	{"docker", "docker"},
	{"docker compose", "docker"},
	{"dockerfile", "docker"},
	{"compose", "docker"},
	{"ubuntu", "linux"},
	{"debian", "linux"},
	{"bash", "linux"},
	{"terminal", "linux"},
	{"cli", "linux"},
	{"systemd", "linux"},
	{"dns", "networking"},
	{"vpn", "networking"},
	{"wireguard", "networking"},
	{"tailscale", "networking"},
	{"firewall", "networking"},
	{"vlan", "networking"},
	{"ci/cd", "automation"},
	{"github actions", "automation"},
	{"cron", "automation"},
	{"script", "automation"},
	{"pipeline", "automation"},
	{"astro", "web-dev"},
	{"svelte", "web-dev"},
	{"tailwind", "web-dev"},
	{"typescript", "web-dev"},
	{"frontend", "web-dev"},
	{"css", "web-dev"},
	{"react", "web-dev"},
	// Movement & Training
	{"jiu-jitsu", "bjj"},
	{"jiu jitsu", "bjj"},
	{"grappling", "bjj"},
	{"submission", "bjj"},
	{"guard", "bjj"},
	{"mobility", "movement"},
	{"stretching", "movement"},
	{"flexibility", "movement"},
	{"movement practice", "movement"},
	{"training programming", "training"},
	{"workout programming", "training"},
	{"periodisation", "training"},
	{"strength", "training"},
	{"conditioning", "training"},
	// Productivity & Life
	{"attention deficit", "adhd"},
	{"neurodivergent", "adhd"},
	{"executive function", "adhd"},
	{"workflow", "productivity"},
	{"time management", "productivity"},
	{"habits", "productivity"},
	{"systems", "productivity"},
	{"obsidian", "pkm"},
	{"second brain", "pkm"},
	{"knowledge management", "pkm"},
	{"zettelkasten", "pkm"},
	{"note-taking", "pkm"},
	// Meta & Essays
	{"this site", "meta"},
	{"behind the scenes", "meta"},
	{"changelog", "meta"},
	{"opinion", "essay"},
	{"argument", "essay"},
	{"step by step", "tutorial"},
	{"how to", "tutorial"},
	{"guide", "tutorial"},
	{"walkthrough", "tutorial"},
	{"today i learned", "til"},
	{"quick tip", "til"},
	{"snippet", "til"},
}

// keywordPatterns holds one compiled whole-word pattern per rule, built at
// init so Suggest never recompiles.
var keywordPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(keywordRules))
	for i, rule := range keywordRules {
		// Keywords must match as whole words/phrases, never inside a
		// larger word, and literally even when they contain regex
		// metacharacters (e.g. "ci/cd").
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(rule.Keyword) + `\b`)
	}
	return patterns
}()

// validTags is the flat set derived from Categories.
var validTags = func() map[string]bool {
	set := make(map[string]bool)
	for _, c := range Categories {
		for _, t := range c.Tags {
			set[t] = true
		}
	}
	return set
}()

// AllTags returns every valid tag in taxonomy order.
func AllTags() []string {
	var tags []string
	for _, c := range Categories {
		tags = append(tags, c.Tags...)
	}
	return tags
}

// IsValid reports whether tag is a member of the taxonomy.
func IsValid(tag string) bool {
	return validTags[tag]
}

// Suggest returns tags whose keywords appear in text as whole words or
// phrases, case-insensitively. Each tag appears at most once, in order of
// first keyword match. Consumers should treat the result as unordered;
// order only matters for display priority (quick mode takes the first 4).
func Suggest(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var suggested []string
	for i, rule := range keywordRules {
		if seen[rule.Tag] {
			continue
		}
		if keywordPatterns[i].MatchString(lower) {
			seen[rule.Tag] = true
			suggested = append(suggested, rule.Tag)
		}
	}
	return suggested
}

// KeywordsFor returns the keywords that map to tag, for display in
// `quill tags`.
func KeywordsFor(tag string) []string {
	var keywords []string
	for _, rule := range keywordRules {
		if rule.Tag == tag {
			keywords = append(keywords, rule.Keyword)
		}
	}
	return keywords
}
