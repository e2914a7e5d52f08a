// Package skillset provides the normalized skill token set used by every
// set operation in the engine. Tokens are lower-cased and trimmed before
// any comparison; equality and subset tests are only defined on
// normalized tokens.
package skillset

import (
	"sort"
	"strings"
)

type Set map[string]struct{}

// NormalizeToken lower-cases, trims, and collapses inner whitespace.
func NormalizeToken(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}

func New(tokens ...string) Set {
	return FromSlice(tokens)
}

func FromSlice(tokens []string) Set {
	out := make(Set, len(tokens))
	for _, t := range tokens {
		t = NormalizeToken(t)
		if t == "" {
			continue
		}
		out[t] = struct{}{}
	}
	return out
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Contains(token string) bool {
	_, ok := s[NormalizeToken(token)]
	return ok
}

// SubsetOf reports whether every token of s is present in other.
// The empty set is a subset of everything.
func (s Set) SubsetOf(other Set) bool {
	if len(s) > len(other) {
		return false
	}
	for t := range s {
		if _, ok := other[t]; !ok {
			return false
		}
	}
	return true
}

func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set)
	for t := range small {
		if _, ok := large[t]; ok {
			out[t] = struct{}{}
		}
	}
	return out
}

// Diff returns the tokens of s that are not in other.
func (s Set) Diff(other Set) Set {
	out := make(Set)
	for t := range s {
		if _, ok := other[t]; !ok {
			out[t] = struct{}{}
		}
	}
	return out
}

// Sorted returns the tokens in ascending order. Deterministic output
// everywhere in the engine starts here.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (s Set) Clone() Set {
	out := make(Set, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}
