package taxonomy

import (
	"testing"
)

func TestSuggest_WholeWordMatching(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			"standalone keyword",
			"I set up Docker on my machine.",
			[]string{"docker"},
		},
		{
			"substring does not match",
			"Everything is dockerized now.",
			nil,
		},
		{
			"compound with trailing word",
			"A dockerfile for the build.",
			[]string{"docker"},
		},
		{
			"phrase keyword",
			"Using docker compose for the stack.",
			[]string{"docker"},
		},
		{
			"phrase with metacharacters",
			"Our ci/cd setup runs nightly.",
			[]string{"automation"},
		},
		{
			"case insensitive",
			"TAILSCALE and WireGuard both work.",
			[]string{"networking"},
		},
		{
			"multiple keywords one tag",
			"container images and a dockerfile",
			[]string{"docker"},
		},
		{
			"multiple tags",
			"Docker and Tailscale setup.",
			[]string{"docker", "networking"},
		},
		{
			"no matches",
			"Nothing relevant in here.",
			nil,
		},
		{
			"hyphenated keyword",
			"I decided to self-host my photos.",
			[]string{"homelab"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.text)
			if len(got) != len(tt.expected) {
				t.Fatalf("Suggest(%q) = %v, want %v", tt.text, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Suggest(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSuggest_NoDuplicateTags(t *testing.T) {
	text := "docker compose, a dockerfile, and another container"
	got := Suggest(text)
	seen := map[string]bool{}
	for _, tag := range got {
		if seen[tag] {
			t.Errorf("Suggest returned duplicate tag %q in %v", tag, got)
		}
		seen[tag] = true
	}
}

func TestSuggest_OnlyValidTags(t *testing.T) {
	text := "docker tailscale obsidian grappling astro cron habits guide snippet opinion server ubuntu"
	for _, tag := range Suggest(text) {
		if !IsValid(tag) {
			t.Errorf("Suggest returned tag %q outside the taxonomy", tag)
		}
	}
}

func TestAllTags_MatchesCategories(t *testing.T) {
	all := AllTags()
	if len(all) != 16 {
		t.Errorf("expected 16 tags in taxonomy, got %d", len(all))
	}
	for _, tag := range all {
		if !IsValid(tag) {
			t.Errorf("AllTags contains %q but IsValid rejects it", tag)
		}
	}
	if !IsValid(DefaultTag) {
		t.Errorf("DefaultTag %q is not in the taxonomy", DefaultTag)
	}
}

func TestKeywordRules_TargetsAreValid(t *testing.T) {
	for _, rule := range keywordRules {
		if !IsValid(rule.Tag) {
			t.Errorf("keyword %q maps to unknown tag %q", rule.Keyword, rule.Tag)
		}
	}
}

func TestKeywordRules_NoKeywordMapsTwice(t *testing.T) {
	seen := map[string]string{}
	for _, rule := range keywordRules {
		if prev, ok := seen[rule.Keyword]; ok && prev != rule.Tag {
			t.Errorf("keyword %q maps to both %q and %q", rule.Keyword, prev, rule.Tag)
		}
		seen[rule.Keyword] = rule.Tag
	}
}

func TestKeywordsFor(t *testing.T) {
	keywords := KeywordsFor("pkm")
	if len(keywords) == 0 {
		t.Fatal("expected keywords for pkm")
	}
	found := false
	for _, k := range keywords {
		if k == "zettelkasten" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected zettelkasten among pkm keywords, got %v", keywords)
	}
}
