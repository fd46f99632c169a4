// Package registry snapshots the set of slugs already present under the
// content root. The snapshot is taken once per invocation and never
// refreshed; uniqueness checks against it are advisory.
package registry

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Registry is the set of taken slugs, keyed by filename stem.
type Registry map[string]bool

// Collect walks root recursively and records the stem of every .md file.
// A missing root yields an empty registry: a fresh site has no posts yet.
func Collect(root string) Registry {
	reg := make(Registry)
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		lower := strings.ToLower(name)
		if strings.HasSuffix(lower, ".md") {
			reg[name[:len(name)-len(".md")]] = true
		}
		return nil
	})
	return reg
}

// Has reports whether s is taken.
func (r Registry) Has(s string) bool { return r[s] }
