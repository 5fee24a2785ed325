package static

import (
	"sort"
	"strings"

	radix "github.com/armon/go-radix"
)

// Filter decides whether a request path belongs to the dynamic pipeline or
// to static content. A path is static when it starts with any configured
// prefix. The check is a plain string prefix, so "/static" also covers
// "/static-v2/app.js".
//
// Filter is immutable after construction and safe for concurrent use.
type Filter struct {
	tree *radix.Tree
}

// NewFilter returns a filter for the given prefixes. Empty prefixes are
// ignored. A filter without prefixes allows every path.
func NewFilter(prefixes ...string) *Filter {
	tree := radix.New()
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tree.Insert(p, struct{}{})
	}
	return &Filter{tree: tree}
}

// Allow reports whether path should go through routing. It returns false
// when path starts with one of the static prefixes.
func (f *Filter) Allow(path string) bool {
	if f == nil || f.tree.Len() == 0 {
		return true
	}
	_, _, found := f.tree.LongestPrefix(path)
	return !found
}

// Match returns the longest static prefix of path.
func (f *Filter) Match(path string) (string, bool) {
	if f == nil {
		return "", false
	}
	prefix, _, found := f.tree.LongestPrefix(path)
	return prefix, found
}

// Prefixes returns the configured prefixes in lexical order.
func (f *Filter) Prefixes() []string {
	if f == nil {
		return nil
	}
	out := make([]string, 0, f.tree.Len())
	f.tree.Walk(func(s string, _ any) bool {
		out = append(out, s)
		return false
	})
	sort.Strings(out)
	return out
}

// Len returns the number of distinct prefixes.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return f.tree.Len()
}
