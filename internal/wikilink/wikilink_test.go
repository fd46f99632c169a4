package wikilink

import (
	"testing"
)

func TestResolve(t *testing.T) {
	known := map[string]bool{
		"hello-world": true,
		"second-post": true,
	}

	tests := []struct {
		name       string
		body       string
		expected   string
		unresolved int
	}{
		{
			"known target",
			"See [[Hello World]] for details.",
			"See [Hello World](/write/hello-world/) for details.",
			0,
		},
		{
			"known target with display text",
			"See [[Hello World|hi]] there.",
			"See [hi](/write/hello-world/) there.",
			0,
		},
		{
			"unknown target degrades to text",
			"See [[Nowhere]] instead.",
			"See Nowhere instead.",
			1,
		},
		{
			"unknown with display text",
			"See [[Nowhere|over there]].",
			"See over there.",
			1,
		},
		{
			"empty slug degrades silently",
			"Weird [[!!!]] reference.",
			"Weird !!! reference.",
			0,
		},
		{
			"multiple links",
			"[[Hello World]] and [[Second Post|the sequel]] and [[Missing]].",
			"[Hello World](/write/hello-world/) and [the sequel](/write/second-post/) and Missing.",
			1,
		},
		{
			"target whitespace trimmed",
			"[[ Hello World ]] linked.",
			"[Hello World](/write/hello-world/) linked.",
			0,
		},
		{
			"no links",
			"Plain text with [regular](/link/) markdown.",
			"Plain text with [regular](/link/) markdown.",
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unresolved := Resolve(tt.body, known, "/write/")
			if got != tt.expected {
				t.Errorf("Resolve = %q, want %q", got, tt.expected)
			}
			if len(unresolved) != tt.unresolved {
				t.Errorf("unresolved = %v, want %d entries", unresolved, tt.unresolved)
			}
		})
	}
}

func TestResolve_ReportsUnresolvedTarget(t *testing.T) {
	_, unresolved := Resolve("[[Ghost Page]]", map[string]bool{}, "/write/")
	if len(unresolved) != 1 || unresolved[0] != "Ghost Page" {
		t.Errorf("expected [Ghost Page], got %v", unresolved)
	}
}
